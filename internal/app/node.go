package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinenv/internal/adapters/cas"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pinenv/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/pinenv/internal/adapters/dotenv" //nolint:depguard // Wired in app layer
	"go.trai.ch/pinenv/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/pinenv/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/pinenv/internal/adapters/python" //nolint:depguard // Wired in app layer
	"go.trai.ch/pinenv/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"go.trai.ch/pinenv/internal/adapters/venv"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pinenv/internal/core/ports"
	"go.trai.ch/pinenv/internal/engine/locker"
	"go.trai.ch/pinenv/internal/engine/pip"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			python.NodeID,
			venv.NodeID,
			shell.NodeID,
			pip.NodeID,
			locker.NodeID,
			fs.DigesterNodeID,
			cas.NodeID,
			dotenv.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	probe, err := graft.Dep[ports.InterpreterProbe](ctx)
	if err != nil {
		return nil, err
	}

	env, err := graft.Dep[ports.EnvironmentManager](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.CommandRunner](ctx)
	if err != nil {
		return nil, err
	}

	installer, err := graft.Dep[*pip.Pip](ctx)
	if err != nil {
		return nil, err
	}

	lck, err := graft.Dep[*locker.Locker](ctx)
	if err != nil {
		return nil, err
	}

	digester, err := graft.Dep[ports.Digester](ctx)
	if err != nil {
		return nil, err
	}

	openStore, err := graft.Dep[ports.InstallStateStoreOpener](ctx)
	if err != nil {
		return nil, err
	}

	envFiles, err := graft.Dep[ports.EnvFileLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, probe, env, runner, installer, lck, digester, openStore, envFiles, log), nil
}
