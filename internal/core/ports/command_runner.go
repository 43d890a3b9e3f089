// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/pinenv/internal/core/domain"
)

// CommandRunner launches child processes. It is the only way the application
// starts a process.
//
//go:generate go run go.uber.org/mock/mockgen -source=command_runner.go -destination=mocks/mock_command_runner.go -package=mocks
type CommandRunner interface {
	// Run executes the command with its output streamed to the console and
	// blocks until it exits.
	//
	// A non-zero exit fails with domain.ErrExternalCommandFailed carrying the
	// exit code, see domain.ExitCode.
	Run(ctx context.Context, cmd domain.Command) error

	// Output executes the command and returns its captured stdout.
	Output(ctx context.Context, cmd domain.Command) (string, error)
}
