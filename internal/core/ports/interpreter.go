package ports

import (
	"context"

	"go.trai.ch/pinenv/internal/core/domain"
)

// InterpreterProbe queries a python interpreter for its version and platform.
//
//go:generate go run go.uber.org/mock/mockgen -source=interpreter.go -destination=mocks/mock_interpreter.go -package=mocks
type InterpreterProbe interface {
	Probe(ctx context.Context, python string) (domain.InterpreterInfo, error)
}
