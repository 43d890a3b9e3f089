package venv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinenv/internal/adapters/logger"
	"go.trai.ch/pinenv/internal/adapters/shell"
	"go.trai.ch/pinenv/internal/core/ports"
)

// NodeID is the unique identifier for the environment manager Graft node.
const NodeID graft.ID = "adapter.venv"

func init() {
	graft.Register(graft.Node[ports.EnvironmentManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.EnvironmentManager, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(runner, log), nil
		},
	})
}
