package domain

import "go.trai.ch/zerr"

// MaterialBindingPolicy selects how material bindings from different hierarchy levels
// are reconciled for the same binding purpose.
type MaterialBindingPolicy string

const (
	// BindingNearest lets the nearest non-empty binding win.
	BindingNearest MaterialBindingPolicy = "nearest"
	// BindingStrongerThanDescendants lets an ancestor binding authored with
	// strongerThanDescendants strength beat bindings below it.
	BindingStrongerThanDescendants MaterialBindingPolicy = "strongerThanDescendants"
)

// FlattenConfig selects which inherited domains a flattening scene index resolves.
// It is fixed for the lifetime of the index.
type FlattenConfig struct {
	Xform            bool
	Visibility       bool
	Purpose          bool
	Model            bool
	MaterialBindings bool
	Primvars         bool

	// InheritedPrimvars restricts primvar inheritance to the listed names.
	// Empty means every constant-interpolation primvar is inherited.
	InheritedPrimvars []Token

	BindingPolicy MaterialBindingPolicy
}

// DefaultFlattenConfig enables every domain with the nearest binding policy.
func DefaultFlattenConfig() FlattenConfig {
	return FlattenConfig{
		Xform:            true,
		Visibility:       true,
		Purpose:          true,
		Model:            true,
		MaterialBindings: true,
		Primvars:         true,
		BindingPolicy:    BindingNearest,
	}
}

// Validate checks the binding policy.
func (c FlattenConfig) Validate() error {
	switch c.BindingPolicy {
	case "", BindingNearest, BindingStrongerThanDescendants:
		return nil
	}
	return ErrInvalidBindingPolicy
}

// DomainNames lists the flattening domains in resolver order.
var DomainNames = []string{"xform", "visibility", "purpose", "model", "materialBindings", "primvars"}

// Disable turns off the named domain.
func (c *FlattenConfig) Disable(name string) error {
	switch name {
	case "xform":
		c.Xform = false
	case "visibility":
		c.Visibility = false
	case "purpose":
		c.Purpose = false
	case "model":
		c.Model = false
	case "materialBindings":
		c.MaterialBindings = false
	case "primvars":
		c.Primvars = false
	default:
		return zerr.With(ErrUnknownDomain, "domain", name)
	}
	return nil
}
