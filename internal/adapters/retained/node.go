package retained

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/strata/internal/core/ports"
)

// NodeID is the unique identifier for the retained stage factory Graft node.
const NodeID graft.ID = "adapter.retained"

func init() {
	graft.Register(graft.Node[ports.StageFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StageFactory, error) {
			return Factory{}, nil
		},
	})
}
