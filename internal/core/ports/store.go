package ports

import "go.trai.ch/pinenv/internal/core/domain"

// InstallStateStore remembers what was last installed into each virtualenv.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type InstallStateStore interface {
	// Get retrieves the install record for a virtualenv.
	// Returns nil, nil if not found.
	Get(envName string) (*domain.InstallRecord, error)

	// Put stores the install record.
	Put(record domain.InstallRecord) error

	// Delete forgets the install record for a virtualenv. Missing records are ignored.
	Delete(envName string) error
}

// InstallStateStoreOpener opens the install record store of a project directory.
// Stores live inside a project, so they are opened once the project is known.
type InstallStateStoreOpener func(project string) (InstallStateStore, error)
