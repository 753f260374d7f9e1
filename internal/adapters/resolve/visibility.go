package resolve

import (
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/schema"
)

// Visibility lets the nearest authored opinion win. Prims are visible by default.
// An authored visible opinion below an invisible ancestor shows its subtree again.
type Visibility struct {
	identity datasource.Container
}

// NewVisibility creates the visibility resolver.
func NewVisibility() *Visibility {
	return &Visibility{identity: schema.BuildVisibility(true)}
}

// Name implements ports.Resolver.
func (r *Visibility) Name() domain.Token { return schema.Tokens().Visibility }

// Locator implements ports.Resolver.
func (r *Visibility) Locator() domain.Locator { return schema.VisibilityLocator() }

// Identity implements ports.Resolver.
func (r *Visibility) Identity() datasource.DataSource { return r.identity }

// Resolve implements ports.Resolver.
func (r *Visibility) Resolve(local datasource.Container, parent datasource.DataSource, _ domain.Path) datasource.DataSource {
	if _, authored := schema.NewVisibility(local).Visible(); authored {
		return local
	}
	if parent == nil {
		return r.identity
	}
	return parent
}

// Inherited implements ports.Resolver.
func (r *Visibility) Inherited(dirty domain.LocatorSet) domain.LocatorSet {
	return wholeField(dirty, schema.VisibilityLocator())
}

// Shadows reports whether the prim authors its own visibility.
func (r *Visibility) Shadows(local datasource.Container, _ domain.Locator) bool {
	_, authored := schema.NewVisibility(local).Visible()
	return authored
}
