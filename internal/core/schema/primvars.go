package schema

import (
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
)

// Primvars reads the "primvars" field: one primvar container per name.
type Primvars struct {
	base
}

// NewPrimvars wraps a primvars container.
func NewPrimvars(c datasource.Container) Primvars {
	return Primvars{base{c: c}}
}

// PrimvarsFrom reads the primvars schema from a prim-level container.
func PrimvarsFrom(prim datasource.Container) Primvars {
	return NewPrimvars(datasource.GetContainer(prim, Tokens().Primvars))
}

// Names lists the primvar names.
func (s Primvars) Names() []domain.Token {
	if s.c == nil {
		return nil
	}
	return s.c.Names()
}

// Primvar returns the named primvar.
func (s Primvars) Primvar(name domain.Token) Primvar {
	return Primvar{base{c: datasource.GetContainer(s.c, name)}}
}

// Primvar is a single primvar: a value, an interpolation and an optional role.
type Primvar struct {
	base
}

// NewPrimvar wraps a primvar container.
func NewPrimvar(c datasource.Container) Primvar {
	return Primvar{base{c: c}}
}

// Value returns the primvar value data source.
func (s Primvar) Value() datasource.DataSource {
	if s.c == nil {
		return nil
	}
	return s.c.Get(Tokens().PrimvarValue)
}

// Interpolation returns the interpolation token.
func (s Primvar) Interpolation() domain.Token {
	interp, _ := datasource.GetTyped[domain.Token](s.c, Tokens().Interpolation)
	return interp
}

// Role returns the role token, for example "color".
func (s Primvar) Role() domain.Token {
	role, _ := datasource.GetTyped[domain.Token](s.c, Tokens().Role)
	return role
}

// IsConstant reports whether the primvar has constant interpolation.
func (s Primvar) IsConstant() bool {
	return s.Interpolation() == Tokens().Constant
}

// BuildPrimvar returns a retained primvar container.
func BuildPrimvar(value datasource.DataSource, interpolation, role domain.Token) datasource.Container {
	fields := []datasource.Field{
		{Name: Tokens().PrimvarValue, Value: value},
		{Name: Tokens().Interpolation, Value: datasource.NewValue(interpolation)},
	}
	if !role.IsEmpty() {
		fields = append(fields, datasource.Field{Name: Tokens().Role, Value: datasource.NewValue(role)})
	}
	return datasource.NewContainer(fields...)
}

// PrimvarsLocator is the prim-level locator of the primvars field.
func PrimvarsLocator() domain.Locator {
	return domain.NewLocator(Tokens().Primvars)
}

// PrimvarLocator is the prim-level locator of one primvar.
func PrimvarLocator(name domain.Token) domain.Locator {
	return domain.NewLocator(Tokens().Primvars, name)
}
