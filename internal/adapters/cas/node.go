package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinenv/internal/core/ports"
)

// NodeID is the unique identifier for the install record store Graft node.
const NodeID graft.ID = "adapter.install_state_store"

func init() {
	graft.Register(graft.Node[ports.InstallStateStoreOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InstallStateStoreOpener, error) {
			return func(project string) (ports.InstallStateStore, error) {
				return Open(project)
			}, nil
		},
	})
}
