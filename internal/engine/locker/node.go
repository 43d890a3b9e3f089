package locker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinenv/internal/adapters/lockfile" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pinenv/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pinenv/internal/adapters/venv"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pinenv/internal/build"
	"go.trai.ch/pinenv/internal/core/ports"
	"go.trai.ch/pinenv/internal/engine/pip"
)

// NodeID is the unique identifier for the locker Graft node.
const NodeID graft.ID = "engine.locker"

func init() {
	graft.Register(graft.Node[*Locker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			venv.NodeID,
			pip.NodeID,
			lockfile.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Locker, error) {
			env, err := graft.Dep[ports.EnvironmentManager](ctx)
			if err != nil {
				return nil, err
			}

			installer, err := graft.Dep[*pip.Pip](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.LockStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(env, installer, store, log, build.Version), nil
		},
	})
}
