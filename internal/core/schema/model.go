package schema

import (
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
)

// Model reads the "model" field. Only drawMode takes part in flattening; the other
// model fields pass through untouched.
type Model struct {
	base
}

// NewModel wraps a model container.
func NewModel(c datasource.Container) Model {
	return Model{base{c: c}}
}

// ModelFrom reads the model schema from a prim-level container.
func ModelFrom(prim datasource.Container) Model {
	return NewModel(datasource.GetContainer(prim, Tokens().Model))
}

// DrawMode returns the authored draw mode.
func (s Model) DrawMode() (domain.Token, bool) {
	return datasource.GetTyped[domain.Token](s.c, Tokens().DrawMode)
}

// ApplyDrawMode reports whether the draw mode applies at this prim.
func (s Model) ApplyDrawMode() bool {
	apply, _ := datasource.GetTyped[bool](s.c, Tokens().ApplyDrawMode)
	return apply
}

// BuildModel returns a retained model container. Empty tokens are omitted.
func BuildModel(drawMode domain.Token, applyDrawMode bool) datasource.Container {
	var fields []datasource.Field
	if !drawMode.IsEmpty() {
		fields = append(fields, datasource.Field{Name: Tokens().DrawMode, Value: datasource.NewValue(drawMode)})
	}
	if applyDrawMode {
		fields = append(fields, datasource.Field{Name: Tokens().ApplyDrawMode, Value: datasource.NewValue(true)})
	}
	return datasource.NewContainer(fields...)
}

// ModelLocator is the prim-level locator of the model field.
func ModelLocator() domain.Locator {
	return domain.NewLocator(Tokens().Model)
}

// DrawModeLocator is the prim-level locator of model/drawMode.
func DrawModeLocator() domain.Locator {
	return domain.NewLocator(Tokens().Model, Tokens().DrawMode)
}
