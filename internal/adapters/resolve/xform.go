package resolve

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/schema"
)

// Xform concatenates transforms down the hierarchy. Flattened transforms are world
// space and always carry resetXformStack.
type Xform struct {
	identity datasource.Container
}

// NewXform creates the xform resolver.
func NewXform() *Xform {
	return &Xform{identity: schema.BuildXform(mgl64.Ident4(), true)}
}

// Name implements ports.Resolver.
func (r *Xform) Name() domain.Token { return schema.Tokens().Xform }

// Locator implements ports.Resolver.
func (r *Xform) Locator() domain.Locator { return schema.XformLocator() }

// Identity implements ports.Resolver.
func (r *Xform) Identity() datasource.DataSource { return r.identity }

// Resolve returns parent * local, or local alone when the prim resets the stack.
// A prim without a local matrix shares its parent's flattened source.
func (r *Xform) Resolve(local datasource.Container, parent datasource.DataSource, _ domain.Path) datasource.DataSource {
	x := schema.NewXform(local)
	m, ok := x.Matrix()
	if !ok {
		if parent == nil {
			return r.identity
		}
		return parent
	}
	if x.ResetXformStack() {
		return schema.BuildXform(m, true)
	}

	parentXform, _ := datasource.AsContainer(parent)
	pm, ok := schema.NewXform(parentXform).Matrix()
	if !ok {
		return schema.BuildXform(m, true)
	}
	return schema.BuildXform(pm.Mul4(m), true)
}

// Inherited implements ports.Resolver.
func (r *Xform) Inherited(dirty domain.LocatorSet) domain.LocatorSet {
	return wholeField(dirty, schema.XformLocator())
}

// Shadows reports whether the prim resets the transform stack.
func (r *Xform) Shadows(local datasource.Container, _ domain.Locator) bool {
	x := schema.NewXform(local)
	_, authored := x.Matrix()
	return authored && x.ResetXformStack()
}
