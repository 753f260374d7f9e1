package schema_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/schema"
)

func TestTokens_Stable(t *testing.T) {
	assert.Same(t, schema.Tokens(), schema.Tokens())
	assert.Equal(t, "xform", schema.Tokens().Xform.String())
	assert.True(t, schema.Tokens().AllPurpose.IsEmpty())
}

func TestXform(t *testing.T) {
	m := mgl64.Translate3D(1, 2, 3)
	prim := datasource.NewContainer(datasource.Field{Name: schema.Tokens().Xform, Value: schema.BuildXform(m, true)})

	x := schema.XformFrom(prim)
	require.True(t, x.IsDefined())
	got, ok := x.Matrix()
	require.True(t, ok)
	assert.True(t, got.ApproxEqual(m))
	assert.True(t, x.ResetXformStack())

	assert.False(t, schema.XformFrom(datasource.Empty).IsDefined())
	_, ok = schema.XformFrom(nil).Matrix()
	assert.False(t, ok)
	assert.Equal(t, "xform", schema.XformLocator().String())
}

func TestVisibilityAndPurpose(t *testing.T) {
	prim := datasource.NewContainer(
		datasource.Field{Name: schema.Tokens().Visibility, Value: schema.BuildVisibility(false)},
		datasource.Field{Name: schema.Tokens().Purpose, Value: schema.BuildPurpose(schema.Tokens().PurposeProxy)},
	)

	visible, authored := schema.VisibilityFrom(prim).Visible()
	assert.True(t, authored)
	assert.False(t, visible)

	purpose, ok := schema.PurposeFrom(prim).Purpose()
	require.True(t, ok)
	assert.Equal(t, "proxy", purpose.String())
}

func TestModel(t *testing.T) {
	model := schema.NewModel(schema.BuildModel(schema.Tokens().DrawModeCards, true))

	mode, ok := model.DrawMode()
	require.True(t, ok)
	assert.Equal(t, "cards", mode.String())
	assert.True(t, model.ApplyDrawMode())
	assert.Equal(t, "model/drawMode", schema.DrawModeLocator().String())

	_, ok = schema.NewModel(schema.BuildModel(domain.Token{}, false)).DrawMode()
	assert.False(t, ok)
}

func TestMaterialBindings(t *testing.T) {
	look := domain.MustParsePath("/Looks/Red")
	bindings := schema.NewMaterialBindings(datasource.NewContainer(
		datasource.Field{Name: schema.Tokens().AllPurpose, Value: schema.BuildMaterialBinding(look, domain.Token{})},
		datasource.Field{
			Name:  schema.Tokens().PreviewPurpose,
			Value: schema.BuildMaterialBinding(domain.Path{}, schema.Tokens().StrongerThanDescendants),
		},
	))

	assert.Len(t, bindings.Purposes(), 2)

	all := bindings.Binding(schema.Tokens().AllPurpose)
	p, ok := all.Path()
	require.True(t, ok)
	assert.Equal(t, look, p)
	assert.Equal(t, schema.Tokens().WeakerThanDescendants, all.Strength())

	preview := bindings.Binding(schema.Tokens().PreviewPurpose)
	_, ok = preview.Path()
	assert.False(t, ok, "an empty path is not a binding")
	assert.Equal(t, schema.Tokens().StrongerThanDescendants, preview.Strength())
}

func TestPrimvars(t *testing.T) {
	color := domain.NewToken("displayColor")
	prim := datasource.NewContainer(datasource.Field{
		Name: schema.Tokens().Primvars,
		Value: datasource.NewContainer(datasource.Field{
			Name:  color,
			Value: schema.BuildPrimvar(datasource.NewValue(mgl64.Vec3{1, 0, 0}), schema.Tokens().Constant, domain.NewToken("color")),
		}),
	})

	pv := schema.PrimvarsFrom(prim)
	assert.Equal(t, []domain.Token{color}, pv.Names())
	primvar := pv.Primvar(color)
	assert.True(t, primvar.IsConstant())
	assert.Equal(t, "color", primvar.Role().String())
	v, ok := datasource.Cast[mgl64.Vec3](primvar.Value())
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, v)
	assert.Equal(t, "primvars/displayColor", schema.PrimvarLocator(color).String())
}

func TestCubeAndSceneGlobals(t *testing.T) {
	settings := domain.MustParsePath("/Render/Settings")
	var b schema.SceneGlobalsBuilder
	prim := datasource.NewContainer(
		datasource.Field{Name: schema.Tokens().Cube, Value: schema.BuildCube(2)},
		datasource.Field{
			Name:  schema.Tokens().SceneGlobals,
			Value: b.SetActiveRenderSettingsPrim(settings).SetStartTimeCode(1).Build(),
		},
	)

	size, ok := schema.CubeFrom(prim).Size()
	require.True(t, ok)
	assert.InDelta(t, 2.0, size, 1e-12)

	globals := schema.SceneGlobalsFrom(prim)
	got, ok := globals.ActiveRenderSettingsPrim()
	require.True(t, ok)
	assert.Equal(t, settings, got)
	start, ok := globals.StartTimeCode()
	require.True(t, ok)
	assert.InDelta(t, 1.0, start, 1e-12)
	_, ok = globals.EndTimeCode()
	assert.False(t, ok)
}
