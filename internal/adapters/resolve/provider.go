// Package resolve implements the per-field flattening rules consumed by the
// flattening scene index.
package resolve

import (
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
)

// Provider builds the resolvers enabled by a flatten configuration, in a fixed order.
type Provider struct{}

var _ ports.ResolverProvider = Provider{}

// NewProvider creates a new Provider.
func NewProvider() Provider {
	return Provider{}
}

// Resolvers implements ports.ResolverProvider.
func (Provider) Resolvers(cfg domain.FlattenConfig) []ports.Resolver {
	var out []ports.Resolver
	if cfg.Xform {
		out = append(out, NewXform())
	}
	if cfg.Visibility {
		out = append(out, NewVisibility())
	}
	if cfg.Purpose {
		out = append(out, NewPurpose())
	}
	if cfg.Model {
		out = append(out, NewModel())
	}
	if cfg.MaterialBindings {
		out = append(out, NewMaterialBindings(cfg.BindingPolicy))
	}
	if cfg.Primvars {
		out = append(out, NewPrimvars(cfg.InheritedPrimvars))
	}
	return out
}

// wholeField returns {loc} when dirty touches loc and the empty set otherwise.
func wholeField(dirty domain.LocatorSet, loc domain.Locator) domain.LocatorSet {
	if dirty.Intersects(loc) {
		return domain.NewLocatorSet(loc)
	}
	return domain.LocatorSet{}
}
