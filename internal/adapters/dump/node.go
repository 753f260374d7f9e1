package dump

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/strata/internal/core/ports"
)

// NodeID is the unique identifier for the scene renderer Graft node.
const NodeID graft.ID = "adapter.dump"

func init() {
	graft.Register(graft.Node[ports.SceneRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SceneRenderer, error) {
			return NewRenderer(), nil
		},
	})
}
