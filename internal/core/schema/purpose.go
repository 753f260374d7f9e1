package schema

import (
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
)

// Purpose reads the "purpose" field.
type Purpose struct {
	base
}

// NewPurpose wraps a purpose container.
func NewPurpose(c datasource.Container) Purpose {
	return Purpose{base{c: c}}
}

// PurposeFrom reads the purpose schema from a prim-level container.
func PurposeFrom(prim datasource.Container) Purpose {
	return NewPurpose(datasource.GetContainer(prim, Tokens().Purpose))
}

// Purpose returns the authored purpose token.
func (s Purpose) Purpose() (domain.Token, bool) {
	return datasource.GetTyped[domain.Token](s.c, Tokens().Purpose)
}

// BuildPurpose returns a retained purpose container.
func BuildPurpose(purpose domain.Token) datasource.Container {
	return datasource.NewContainer(datasource.Field{Name: Tokens().Purpose, Value: datasource.NewValue(purpose)})
}

// PurposeLocator is the prim-level locator of the purpose field.
func PurposeLocator() domain.Locator {
	return domain.NewLocator(Tokens().Purpose)
}
