package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/saradorri/gamestore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseRepositoryMissingFile(t *testing.T) {
	repo := NewPurchaseRepository(filepath.Join(t.TempDir(), "purchases.txt"))

	purchases, err := repo.LoadAll()
	assert.NoError(t, err)
	assert.Empty(t, purchases)
}

func TestPurchaseRepositoryRoundTrip(t *testing.T) {
	repo := NewPurchaseRepository(filepath.Join(t.TempDir(), "purchases.txt"))

	in := []domain.Purchase{
		{UserID: 7, OwnedGames: []int{3, 1, 2}},
		{UserID: 42, OwnedGames: []int{5}},
	}
	require.NoError(t, repo.SaveAll(in))

	out, err := repo.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestPurchaseRepositorySaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "purchases.txt")
	repo := NewPurchaseRepository(path)

	require.NoError(t, repo.SaveAll([]domain.Purchase{
		{UserID: 7, OwnedGames: []int{1, 2, 3}},
		{UserID: 9},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "7 1 2 3\n9\n", string(data))
}

func TestPurchaseRepositoryEmptyRecordSurvivesRoundTrip(t *testing.T) {
	repo := NewPurchaseRepository(filepath.Join(t.TempDir(), "purchases.txt"))

	require.NoError(t, repo.SaveAll([]domain.Purchase{{UserID: 9}}))

	out, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 9, out[0].UserID)
	assert.Empty(t, out[0].OwnedGames)
}
