package dotenv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinenv/internal/core/ports"
)

// NodeID is the unique identifier for the env file loader Graft node.
const NodeID graft.ID = "adapter.dotenv"

func init() {
	graft.Register(graft.Node[ports.EnvFileLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EnvFileLoader, error) {
			return NewLoader(), nil
		},
	})
}
