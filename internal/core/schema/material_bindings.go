package schema

import (
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
)

// MaterialBindings reads the "materialBindings" field: one binding container per
// binding purpose. The empty token is the all-purpose binding.
type MaterialBindings struct {
	base
}

// NewMaterialBindings wraps a material bindings container.
func NewMaterialBindings(c datasource.Container) MaterialBindings {
	return MaterialBindings{base{c: c}}
}

// MaterialBindingsFrom reads the material bindings schema from a prim-level container.
func MaterialBindingsFrom(prim datasource.Container) MaterialBindings {
	return NewMaterialBindings(datasource.GetContainer(prim, Tokens().MaterialBindings))
}

// Purposes lists the binding purposes present.
func (s MaterialBindings) Purposes() []domain.Token {
	if s.c == nil {
		return nil
	}
	return s.c.Names()
}

// Binding returns the binding for purpose.
func (s MaterialBindings) Binding(purpose domain.Token) MaterialBinding {
	return MaterialBinding{base{c: datasource.GetContainer(s.c, purpose)}}
}

// MaterialBinding is a single binding: a material path and a binding strength.
type MaterialBinding struct {
	base
}

// Path returns the bound material path. An empty path means "no binding".
func (s MaterialBinding) Path() (domain.Path, bool) {
	p, ok := datasource.GetTyped[domain.Path](s.c, Tokens().MaterialBindingPath)
	if !ok || p.IsEmpty() {
		return domain.Path{}, false
	}
	return p, true
}

// Strength returns the binding strength, defaulting to weakerThanDescendants.
func (s MaterialBinding) Strength() domain.Token {
	strength, ok := datasource.GetTyped[domain.Token](s.c, Tokens().BindingStrength)
	if !ok || strength.IsEmpty() {
		return Tokens().WeakerThanDescendants
	}
	return strength
}

// BuildMaterialBinding returns a retained binding container.
func BuildMaterialBinding(path domain.Path, strength domain.Token) datasource.Container {
	fields := []datasource.Field{{Name: Tokens().MaterialBindingPath, Value: datasource.NewValue(path)}}
	if !strength.IsEmpty() {
		fields = append(fields, datasource.Field{Name: Tokens().BindingStrength, Value: datasource.NewValue(strength)})
	}
	return datasource.NewContainer(fields...)
}

// MaterialBindingsLocator is the prim-level locator of the material bindings field.
func MaterialBindingsLocator() domain.Locator {
	return domain.NewLocator(Tokens().MaterialBindings)
}
