package ports

import (
	"context"

	"go.trai.ch/pinenv/internal/core/domain"
)

// EnvironmentManager owns the lifecycle of a project virtualenv.
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type EnvironmentManager interface {
	// Ensure creates the virtualenv unless it already exists.
	Ensure(ctx context.Context, paths domain.Paths, info domain.InterpreterInfo, settings domain.ProjectSettings) error

	// Exists reports whether the virtualenv directory is present.
	Exists(paths domain.Paths) bool

	// Expect fails with domain.ErrMissingEnvironment when the virtualenv is absent.
	Expect(paths domain.Paths) error

	// Clean removes the virtualenv. It is a no-op when the virtualenv is absent.
	Clean(paths domain.Paths) error

	// BinDir returns the directory holding the virtualenv executables.
	BinDir(paths domain.Paths) string

	// ResolveBinary returns the path of an executable inside the virtualenv.
	// It fails with domain.ErrBinaryNotFound when the file does not exist.
	ResolveBinary(paths domain.Paths, name string) (string, error)
}
