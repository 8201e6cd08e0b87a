package repository

import (
	"path/filepath"
	"testing"

	"github.com/saradorri/gamestore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepositoryMissingFile(t *testing.T) {
	repo := NewSessionRepository(filepath.Join(t.TempDir(), "current_user.txt"))

	_, err := repo.CurrentUserID()
	require.Error(t, err)

	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeMissingActiveUser, appErr.Code)
}

func TestSessionRepositorySetAndGet(t *testing.T) {
	repo := NewSessionRepository(filepath.Join(t.TempDir(), "current_user.txt"))

	require.NoError(t, repo.SetCurrentUserID(7))
	id, err := repo.CurrentUserID()
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	// Selecting again overwrites the pointer.
	require.NoError(t, repo.SetCurrentUserID(42))
	id, err = repo.CurrentUserID()
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}
