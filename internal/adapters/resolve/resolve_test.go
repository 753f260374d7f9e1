package resolve_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/adapters/resolve"
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/schema"
)

var here = domain.MustParsePath("/A")

func tok(s string) domain.Token { return domain.NewToken(s) }

func locs(ss ...string) domain.LocatorSet {
	set := domain.LocatorSet{}
	for _, s := range ss {
		set.Insert(domain.MustParseLocator(s))
	}
	return set
}

func matrixOf(t *testing.T, ds datasource.DataSource) mgl64.Mat4 {
	t.Helper()
	c, ok := datasource.AsContainer(ds)
	require.True(t, ok)
	m, ok := schema.NewXform(c).Matrix()
	require.True(t, ok)
	return m
}

func TestProvider_Resolvers(t *testing.T) {
	all := resolve.NewProvider().Resolvers(domain.DefaultFlattenConfig())
	names := make([]string, 0, len(all))
	for _, r := range all {
		names = append(names, r.Name().String())
		assert.Equal(t, r.Name(), r.Locator().First())
		assert.NotNil(t, r.Identity())
	}
	assert.Equal(t, []string{"xform", "visibility", "purpose", "model", "materialBindings", "primvars"}, names)

	some := resolve.NewProvider().Resolvers(domain.FlattenConfig{Visibility: true, Primvars: true})
	require.Len(t, some, 2)
	assert.Equal(t, "visibility", some[0].Name().String())
	assert.Equal(t, "primvars", some[1].Name().String())

	assert.Empty(t, resolve.NewProvider().Resolvers(domain.FlattenConfig{}))
}

func TestXform_Resolve(t *testing.T) {
	r := resolve.NewXform()
	parent := schema.BuildXform(mgl64.Translate3D(1, 0, 0), true)
	local := schema.BuildXform(mgl64.Scale3D(2, 2, 2), false)

	t.Run("concatenates", func(t *testing.T) {
		got := matrixOf(t, r.Resolve(local, parent, here))
		want := mgl64.Translate3D(1, 0, 0).Mul4(mgl64.Scale3D(2, 2, 2))
		assert.True(t, got.ApproxEqual(want))
		assert.True(t, got.Mul4x1(mgl64.Vec4{1, 0, 0, 1}).ApproxEqual(mgl64.Vec4{3, 0, 0, 1}))
	})

	t.Run("reset ignores parent", func(t *testing.T) {
		reset := schema.BuildXform(mgl64.Scale3D(2, 2, 2), true)
		got := matrixOf(t, r.Resolve(reset, parent, here))
		assert.True(t, got.ApproxEqual(mgl64.Scale3D(2, 2, 2)))
		assert.True(t, r.Shadows(reset, schema.XformLocator()))
		assert.False(t, r.Shadows(local, schema.XformLocator()))
	})

	t.Run("no local reuses parent", func(t *testing.T) {
		assert.Same(t, parent, r.Resolve(nil, parent, here))
		assert.Same(t, r.Identity(), r.Resolve(nil, nil, here))
	})

	t.Run("root uses identity", func(t *testing.T) {
		got := matrixOf(t, r.Resolve(local, r.Identity(), here))
		assert.True(t, got.ApproxEqual(mgl64.Scale3D(2, 2, 2)))
	})

	assert.Equal(t, "{xform}", r.Inherited(locs("xform/matrix")).String())
	assert.True(t, r.Inherited(locs("visibility")).IsEmpty())
}

func TestVisibility_NearestOpinionWins(t *testing.T) {
	r := resolve.NewVisibility()
	hidden := schema.BuildVisibility(false)
	shown := schema.BuildVisibility(true)

	assert.Same(t, hidden, r.Resolve(nil, hidden, here))
	assert.Same(t, shown, r.Resolve(shown, hidden, here))
	assert.Same(t, r.Identity(), r.Resolve(nil, nil, here))

	visible, _ := schema.NewVisibility(r.Identity().(datasource.Container)).Visible()
	assert.True(t, visible)

	assert.True(t, r.Shadows(hidden, schema.VisibilityLocator()))
	assert.False(t, r.Shadows(nil, schema.VisibilityLocator()))
	assert.Equal(t, "{visibility}", r.Inherited(domain.UniversalLocatorSet()).String())
}

func TestPurpose_NearestNonDefaultWins(t *testing.T) {
	r := resolve.NewPurpose()
	proxy := schema.BuildPurpose(schema.Tokens().PurposeProxy)
	explicitDefault := schema.BuildPurpose(schema.Tokens().PurposeDefault)

	assert.Same(t, proxy, r.Resolve(explicitDefault, proxy, here))
	assert.Same(t, proxy, r.Resolve(proxy, r.Identity(), here))
	assert.True(t, r.Shadows(proxy, schema.PurposeLocator()))
	assert.False(t, r.Shadows(explicitDefault, schema.PurposeLocator()))
}

func TestModel_DrawMode(t *testing.T) {
	r := resolve.NewModel()
	cards := schema.BuildModel(schema.Tokens().DrawModeCards, true)

	t.Run("explicit local wins", func(t *testing.T) {
		assert.Same(t, cards, r.Resolve(cards, r.Identity(), here))
		assert.True(t, r.Shadows(cards, schema.DrawModeLocator()))
	})

	t.Run("inherits draw mode only", func(t *testing.T) {
		local := schema.BuildModel(schema.Tokens().DrawModeInherited, false)
		got, ok := datasource.AsContainer(r.Resolve(local, cards, here))
		require.True(t, ok)
		m := schema.NewModel(got)
		mode, ok := m.DrawMode()
		require.True(t, ok)
		assert.Equal(t, schema.Tokens().DrawModeCards, mode)
		assert.False(t, m.ApplyDrawMode(), "applyDrawMode stays local")
		assert.False(t, r.Shadows(local, schema.DrawModeLocator()))
	})

	t.Run("defaults", func(t *testing.T) {
		assert.Same(t, r.Identity(), r.Resolve(nil, nil, here))
		mode, _ := schema.NewModel(r.Identity().(datasource.Container)).DrawMode()
		assert.Equal(t, "default", mode.String())
	})

	assert.Equal(t, "{model/drawMode}", r.Inherited(locs("model")).String())
	assert.True(t, r.Inherited(locs("model/applyDrawMode")).IsEmpty())
}

func TestMaterialBindings_Policies(t *testing.T) {
	red := domain.MustParsePath("/Looks/Red")
	blue := domain.MustParsePath("/Looks/Blue")
	preview := schema.Tokens().PreviewPurpose
	all := schema.Tokens().AllPurpose

	parent := datasource.NewContainer(
		datasource.Field{Name: all, Value: schema.BuildMaterialBinding(red, schema.Tokens().StrongerThanDescendants)},
		datasource.Field{Name: preview, Value: schema.BuildMaterialBinding(red, domain.Token{})},
	)
	local := datasource.NewContainer(
		datasource.Field{Name: all, Value: schema.BuildMaterialBinding(blue, domain.Token{})},
	)

	bound := func(t *testing.T, ds datasource.DataSource, purpose domain.Token) domain.Path {
		t.Helper()
		c, ok := datasource.AsContainer(ds)
		require.True(t, ok)
		p, ok := schema.NewMaterialBindings(c).Binding(purpose).Path()
		require.True(t, ok)
		return p
	}

	t.Run("nearest", func(t *testing.T) {
		r := resolve.NewMaterialBindings("")
		assert.Equal(t, domain.BindingNearest, r.Policy())
		got := r.Resolve(local, parent, here)
		assert.Equal(t, blue, bound(t, got, all))
		assert.Equal(t, red, bound(t, got, preview), "missing purposes fall back to the parent")
	})

	t.Run("stronger than descendants", func(t *testing.T) {
		r := resolve.NewMaterialBindings(domain.BindingStrongerThanDescendants)
		got := r.Resolve(local, parent, here)
		assert.Equal(t, red, bound(t, got, all))
	})

	t.Run("no local reuses parent", func(t *testing.T) {
		r := resolve.NewMaterialBindings(domain.BindingNearest)
		assert.Same(t, parent, r.Resolve(nil, parent, here))
		assert.Same(t, datasource.Empty, r.Resolve(nil, nil, here))
	})

	t.Run("empty local binding falls back", func(t *testing.T) {
		r := resolve.NewMaterialBindings(domain.BindingNearest)
		unbound := datasource.NewContainer(
			datasource.Field{Name: preview, Value: schema.BuildMaterialBinding(domain.Path{}, domain.Token{})},
		)
		assert.Equal(t, red, bound(t, r.Resolve(unbound, parent, here), preview))
	})

	r := resolve.NewMaterialBindings(domain.BindingNearest)
	assert.False(t, r.Shadows(local, schema.MaterialBindingsLocator()))
	assert.Equal(t, "{materialBindings}", r.Inherited(locs("materialBindings/preview")).String())
}

func constantPrimvar(v float64) datasource.Container {
	return schema.BuildPrimvar(datasource.NewValue(v), schema.Tokens().Constant, domain.Token{})
}

func TestPrimvars_Resolve(t *testing.T) {
	parent := datasource.NewContainer(
		datasource.Field{Name: tok("roughness"), Value: constantPrimvar(0.5)},
		datasource.Field{Name: tok("uv"), Value: schema.BuildPrimvar(datasource.NewValue([]float64{0, 1}), schema.Tokens().Vertex, domain.Token{})},
	)
	local := datasource.NewContainer(
		datasource.Field{Name: tok("metallic"), Value: constantPrimvar(1)},
	)

	t.Run("inherits constant primvars", func(t *testing.T) {
		r := resolve.NewPrimvars(nil)
		got, ok := datasource.AsContainer(r.Resolve(local, parent, here))
		require.True(t, ok)
		assert.Equal(t, []domain.Token{tok("metallic"), tok("roughness")}, got.Names())
	})

	t.Run("eligible names only", func(t *testing.T) {
		r := resolve.NewPrimvars([]domain.Token{tok("other")})
		got, ok := datasource.AsContainer(r.Resolve(local, parent, here))
		require.True(t, ok)
		assert.Equal(t, []domain.Token{tok("metallic")}, got.Names())
	})

	t.Run("local overrides inherited", func(t *testing.T) {
		r := resolve.NewPrimvars(nil)
		override := datasource.NewContainer(datasource.Field{Name: tok("roughness"), Value: constantPrimvar(0.9)})
		got, ok := datasource.AsContainer(r.Resolve(override, parent, here))
		require.True(t, ok)
		v, ok := datasource.Cast[float64](schema.NewPrimvars(got).Primvar(tok("roughness")).Value())
		require.True(t, ok)
		assert.InDelta(t, 0.9, v, 1e-12)
	})

	t.Run("reuses fully inheritable parent", func(t *testing.T) {
		r := resolve.NewPrimvars(nil)
		constantOnly := datasource.NewContainer(datasource.Field{Name: tok("roughness"), Value: constantPrimvar(0.5)})
		assert.Same(t, constantOnly, r.Resolve(nil, constantOnly, here))
		assert.Same(t, datasource.Empty, r.Resolve(nil, nil, here))
	})

	t.Run("precise propagation", func(t *testing.T) {
		r := resolve.NewPrimvars([]domain.Token{tok("roughness")})
		assert.Equal(t, "{primvars/roughness}", r.Inherited(locs("primvars/roughness/primvarValue")).String())
		assert.True(t, r.Inherited(locs("primvars/metallic")).IsEmpty())
		assert.Equal(t, "{primvars}", r.Inherited(locs("primvars")).String())
		assert.True(t, r.Shadows(local, domain.MustParseLocator("primvars/metallic")))
		assert.False(t, r.Shadows(local, domain.MustParseLocator("primvars/roughness")))
		assert.False(t, r.Shadows(local, schema.PrimvarsLocator()))
	})
}
