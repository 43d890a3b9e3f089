package pip

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinenv/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pinenv/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pinenv/internal/adapters/venv"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pinenv/internal/core/ports"
)

// NodeID is the unique identifier for the pip Graft node.
const NodeID graft.ID = "engine.pip"

func init() {
	graft.Register(graft.Node[*Pip]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			venv.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Pip, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}

			env, err := graft.Dep[ports.EnvironmentManager](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(runner, env, log), nil
		},
	})
}
