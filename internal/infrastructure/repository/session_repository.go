package repository

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/saradorri/gamestore/internal/domain"
)

// SessionRepository implements domain.SessionRepository over the
// active-user pointer file: a single integer, written fresh on every
// user selection.
type SessionRepository struct {
	path string
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(path string) domain.SessionRepository {
	return &SessionRepository{path: path}
}

// CurrentUserID reads the active-user pointer. A missing file means no
// user has been selected yet.
func (r *SessionRepository) CurrentUserID() (int, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, domain.NewAppError(domain.ErrCodeMissingActiveUser, "Please enter ID first using enter_id.", nil)
		}
		return 0, domain.NewAppError(domain.ErrCodeStoreRead, "Failed to read active user", err)
	}
	id, _ := strconv.Atoi(strings.TrimSpace(string(data)))
	return id, nil
}

// SetCurrentUserID persists the active-user pointer.
func (r *SessionRepository) SetCurrentUserID(id int) error {
	if err := writeFile(r.path, strconv.Itoa(id)); err != nil {
		return domain.NewAppError(domain.ErrCodeStoreWrite, "Failed to write active user", err)
	}
	return nil
}

// writeFile overwrites path with contents, creating the parent directory
// when needed. No temp file or rename: a crash mid-write corrupts the
// file, which the storage contract accepts.
func writeFile(path, contents string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(contents), 0o644)
}
