package schema

import (
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
)

// Cube reads the "cube" field.
type Cube struct {
	base
}

// CubeFrom reads the cube schema from a prim-level container.
func CubeFrom(prim datasource.Container) Cube {
	return Cube{base{c: datasource.GetContainer(prim, Tokens().Cube)}}
}

// Size returns the cube edge length.
func (s Cube) Size() (float64, bool) {
	return datasource.GetTyped[float64](s.c, Tokens().Size)
}

// BuildCube returns a retained cube container.
func BuildCube(size float64) datasource.Container {
	return datasource.NewContainer(datasource.Field{Name: Tokens().Size, Value: datasource.NewValue(size)})
}

// CubeLocator is the prim-level locator of the cube field.
func CubeLocator() domain.Locator {
	return domain.NewLocator(Tokens().Cube)
}
