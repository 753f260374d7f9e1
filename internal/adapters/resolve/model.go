package resolve

import (
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/schema"
)

// Model resolves model/drawMode to the nearest explicit draw mode and keeps every
// other model field local.
type Model struct {
	identity datasource.Container
}

// NewModel creates the model resolver.
func NewModel() *Model {
	return &Model{identity: drawModeOnly(schema.Tokens().DrawModeDefault)}
}

func drawModeOnly(mode domain.Token) datasource.Container {
	return datasource.NewContainer(datasource.Field{Name: schema.Tokens().DrawMode, Value: datasource.NewValue(mode)})
}

// Name implements ports.Resolver.
func (r *Model) Name() domain.Token { return schema.Tokens().Model }

// Locator implements ports.Resolver.
func (r *Model) Locator() domain.Locator { return schema.ModelLocator() }

// Identity implements ports.Resolver.
func (r *Model) Identity() datasource.DataSource { return r.identity }

// Resolve implements ports.Resolver.
func (r *Model) Resolve(local datasource.Container, parent datasource.DataSource, _ domain.Path) datasource.DataSource {
	if explicitDrawMode(local) {
		return local
	}

	mode := schema.Tokens().DrawModeDefault
	if parentModel, ok := datasource.AsContainer(parent); ok {
		if inherited, ok := schema.NewModel(parentModel).DrawMode(); ok && !inherited.IsEmpty() {
			mode = inherited
		}
	}

	if local == nil {
		if mode == schema.Tokens().DrawModeDefault {
			return r.identity
		}
		return drawModeOnly(mode)
	}
	return datasource.Overlay(drawModeOnly(mode), local)
}

// Inherited implements ports.Resolver. Only the draw mode is inherited.
func (r *Model) Inherited(dirty domain.LocatorSet) domain.LocatorSet {
	return wholeField(dirty, schema.DrawModeLocator())
}

// Shadows reports whether the prim authors an explicit draw mode.
func (r *Model) Shadows(local datasource.Container, _ domain.Locator) bool {
	return explicitDrawMode(local)
}

func explicitDrawMode(local datasource.Container) bool {
	mode, ok := schema.NewModel(local).DrawMode()
	return ok && !mode.IsEmpty() && mode != schema.Tokens().DrawModeInherited
}
