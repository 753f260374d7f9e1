package flatten

import (
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/strata/internal/core/scene"
)

// Factory creates flattening scene indexes sharing one resolver provider.
type Factory struct {
	provider ports.ResolverProvider
}

// NewFactory creates a new Factory.
func NewFactory(provider ports.ResolverProvider) *Factory {
	return &Factory{provider: provider}
}

// New creates a flattening scene index over input, see New.
func (f *Factory) New(input scene.Index, args datasource.Container) *SceneIndex {
	return New(input, args, f.provider)
}
