package resolve

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/strata/internal/core/ports"
)

// NodeID is the unique identifier for the resolver provider Graft node.
const NodeID graft.ID = "adapter.resolve"

func init() {
	graft.Register(graft.Node[ports.ResolverProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ResolverProvider, error) {
			return NewProvider(), nil
		},
	})
}
