package flatten

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/strata/internal/adapters/resolve" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/strata/internal/core/ports"
)

// NodeID is the unique identifier for the flatten factory Graft node.
const NodeID graft.ID = "engine.flatten"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			resolve.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			provider, err := graft.Dep[ports.ResolverProvider](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(provider), nil
		},
	})
}
