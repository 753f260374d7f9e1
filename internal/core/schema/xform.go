package schema

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
)

// Xform reads the "xform" field: a 4x4 matrix and the resetXformStack flag.
type Xform struct {
	base
}

// NewXform wraps an xform container.
func NewXform(c datasource.Container) Xform {
	return Xform{base{c: c}}
}

// XformFrom reads the xform schema from a prim-level container.
func XformFrom(prim datasource.Container) Xform {
	return NewXform(datasource.GetContainer(prim, Tokens().Xform))
}

// Matrix returns the authored matrix.
func (s Xform) Matrix() (mgl64.Mat4, bool) {
	return datasource.GetTyped[mgl64.Mat4](s.c, Tokens().Matrix)
}

// ResetXformStack reports whether the prim ignores its ancestors' transforms.
func (s Xform) ResetXformStack() bool {
	reset, _ := datasource.GetTyped[bool](s.c, Tokens().ResetXformStack)
	return reset
}

// BuildXform returns a retained xform container.
func BuildXform(matrix mgl64.Mat4, resetXformStack bool) datasource.Container {
	fields := []datasource.Field{{Name: Tokens().Matrix, Value: datasource.NewValue(matrix)}}
	if resetXformStack {
		fields = append(fields, datasource.Field{Name: Tokens().ResetXformStack, Value: datasource.NewValue(true)})
	}
	return datasource.NewContainer(fields...)
}

// XformLocator is the prim-level locator of the xform field.
func XformLocator() domain.Locator {
	return domain.NewLocator(Tokens().Xform)
}
