package ports

import "go.trai.ch/pinenv/internal/core/domain"

// LockStore reads and writes lock files.
//
//go:generate go run go.uber.org/mock/mockgen -source=lock_store.go -destination=mocks/mock_lock_store.go -package=mocks
type LockStore interface {
	// Read parses the lock file at path.
	// It fails with domain.ErrMissingLock when the file does not exist.
	Read(path string) (*domain.Lockfile, error)

	// Write replaces the lock file at path. Readers never observe a partial file.
	Write(path string, lock *domain.Lockfile) error
}
