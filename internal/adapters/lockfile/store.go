package lockfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/pinenv/internal/core/domain"
	"go.trai.ch/pinenv/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockStore = (*Store)(nil)

// Store implements ports.LockStore on the local filesystem.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Read parses the lock file at path.
func (s *Store) Read(path string) (*domain.Lockfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is resolved from the project
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrMissingLock, path), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrLockReadFailed, err.Error()), "path", path)
	}

	lf, err := Decode(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse lock file"), "path", path)
	}
	return lf, nil
}

// Write replaces the lock file at path.
// The content goes to a temporary file in the same directory which is then
// renamed over path, so readers see either the old or the new lock.
func (s *Store) Write(path string, lock *domain.Lockfile) (err error) {
	fail := func(cause error) error {
		return zerr.With(zerr.Wrap(domain.ErrLockWriteFailed, cause.Error()), "path", path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fail(err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(Encode(lock)); err != nil {
		_ = tmp.Close()
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		return fail(err)
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return fail(err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fail(err)
	}
	return nil
}
