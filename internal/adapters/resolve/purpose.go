package resolve

import (
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/schema"
)

// Purpose lets the nearest non-default purpose win.
type Purpose struct {
	identity datasource.Container
}

// NewPurpose creates the purpose resolver.
func NewPurpose() *Purpose {
	return &Purpose{identity: schema.BuildPurpose(schema.Tokens().PurposeDefault)}
}

// Name implements ports.Resolver.
func (r *Purpose) Name() domain.Token { return schema.Tokens().Purpose }

// Locator implements ports.Resolver.
func (r *Purpose) Locator() domain.Locator { return schema.PurposeLocator() }

// Identity implements ports.Resolver.
func (r *Purpose) Identity() datasource.DataSource { return r.identity }

// Resolve implements ports.Resolver.
func (r *Purpose) Resolve(local datasource.Container, parent datasource.DataSource, _ domain.Path) datasource.DataSource {
	if isExplicitPurpose(local) {
		return local
	}
	if parent == nil {
		return r.identity
	}
	return parent
}

// Inherited implements ports.Resolver.
func (r *Purpose) Inherited(dirty domain.LocatorSet) domain.LocatorSet {
	return wholeField(dirty, schema.PurposeLocator())
}

// Shadows reports whether the prim authors a non-default purpose.
func (r *Purpose) Shadows(local datasource.Container, _ domain.Locator) bool {
	return isExplicitPurpose(local)
}

func isExplicitPurpose(local datasource.Container) bool {
	p, ok := schema.NewPurpose(local).Purpose()
	return ok && !p.IsEmpty() && p != schema.Tokens().PurposeDefault
}
