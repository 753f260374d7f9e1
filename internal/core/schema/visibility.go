package schema

import (
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
)

// Visibility reads the "visibility" field.
type Visibility struct {
	base
}

// NewVisibility wraps a visibility container.
func NewVisibility(c datasource.Container) Visibility {
	return Visibility{base{c: c}}
}

// VisibilityFrom reads the visibility schema from a prim-level container.
func VisibilityFrom(prim datasource.Container) Visibility {
	return NewVisibility(datasource.GetContainer(prim, Tokens().Visibility))
}

// Visible returns the authored visibility opinion.
func (s Visibility) Visible() (visible, authored bool) {
	return datasource.GetTyped[bool](s.c, Tokens().Visibility)
}

// BuildVisibility returns a retained visibility container.
func BuildVisibility(visible bool) datasource.Container {
	return datasource.NewContainer(datasource.Field{Name: Tokens().Visibility, Value: datasource.NewValue(visible)})
}

// VisibilityLocator is the prim-level locator of the visibility field.
func VisibilityLocator() domain.Locator {
	return domain.NewLocator(Tokens().Visibility)
}
