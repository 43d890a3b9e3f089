package python

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinenv/internal/adapters/shell"
	"go.trai.ch/pinenv/internal/core/ports"
)

// NodeID is the unique identifier for the interpreter probe Graft node.
const NodeID graft.ID = "adapter.python_probe"

func init() {
	graft.Register(graft.Node[ports.InterpreterProbe]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.InterpreterProbe, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewProbe(runner), nil
		},
	})
}
