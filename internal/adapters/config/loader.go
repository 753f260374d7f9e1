// Package config provides the scene file loader for strata.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/strata/internal/core/scene"
	"go.trai.ch/strata/internal/core/schema"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.SceneLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var _ ports.SceneLoader = (*Loader)(nil)

// Load reads the scene file at path. A directory is searched for strata.yaml.
func (l *Loader) Load(path string) (*scene.Document, error) {
	configPath, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	var file Scenefile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	if file.Version != "" && file.Version != domain.SceneFileVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, reading it as version %s",
			configPath, file.Version, domain.SceneFileVersion))
	}

	doc := &scene.Document{Source: configPath}

	doc.Flatten, err = buildFlattenConfig(file.Flatten)
	if err != nil {
		return nil, zerr.With(err, "file", configPath)
	}

	seen := make(map[domain.Path]bool, len(file.Prims))
	for i, dto := range file.Prims {
		spec, err := buildPrimSpec(dto)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "prim", i), "file", configPath)
		}
		if seen[spec.Path] {
			return nil, zerr.With(zerr.With(domain.ErrDuplicatePrim, "path", spec.Path.String()), "file", configPath)
		}
		seen[spec.Path] = true
		doc.Prims = append(doc.Prims, spec)
	}

	for i, dto := range file.Edits {
		edit, err := buildEdit(dto)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "edit", i), "file", configPath)
		}
		doc.Edits = append(doc.Edits, edit)
	}

	return doc, nil
}

func resolvePath(path string) (string, error) {
	if path == "" {
		path = "."
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	if info.IsDir() {
		return filepath.Join(path, domain.SceneFileName), nil
	}
	return path, nil
}

func readAndUnmarshalYAML(path string, out any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return nil
}

func buildFlattenConfig(dto *FlattenDTO) (domain.FlattenConfig, error) {
	cfg := domain.DefaultFlattenConfig()
	if dto == nil {
		return cfg, nil
	}

	enabled := func(v *bool) bool { return v == nil || *v }
	cfg.Xform = enabled(dto.Xform)
	cfg.Visibility = enabled(dto.Visibility)
	cfg.Purpose = enabled(dto.Purpose)
	cfg.Model = enabled(dto.Model)
	cfg.MaterialBindings = enabled(dto.MaterialBindings)
	cfg.Primvars = enabled(dto.Primvars)

	if len(dto.InheritedPrimvars) > 0 {
		cfg.InheritedPrimvars = domain.Tokens(dto.InheritedPrimvars...)
	}
	if dto.MaterialBindingPolicy != "" {
		cfg.BindingPolicy = domain.MaterialBindingPolicy(dto.MaterialBindingPolicy)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, zerr.With(err, "materialBindingPolicy", dto.MaterialBindingPolicy)
	}
	return cfg, nil
}

func buildPrimSpec(dto *PrimDTO) (scene.PrimSpec, error) {
	if dto == nil {
		return scene.PrimSpec{}, domain.ErrInvalidPath
	}
	path, err := domain.ParsePath(dto.Path)
	if err != nil {
		return scene.PrimSpec{}, err
	}
	source, err := buildSource(dto)
	if err != nil {
		return scene.PrimSpec{}, zerr.With(err, "path", dto.Path)
	}
	return scene.PrimSpec{
		Path: path,
		Prim: scene.Prim{Type: domain.NewToken(dto.Type), Source: source},
	}, nil
}

// buildSource maps the authored fields of dto to a prim-level container.
func buildSource(dto *PrimDTO) (datasource.Container, error) {
	tok := schema.Tokens()
	var fields []datasource.Field

	if dto.Xform != nil {
		xform, err := buildXform(dto.Xform)
		if err != nil {
			return nil, err
		}
		fields = append(fields, datasource.Field{Name: tok.Xform, Value: xform})
	}
	if dto.Visibility != nil {
		fields = append(fields, datasource.Field{Name: tok.Visibility, Value: schema.BuildVisibility(*dto.Visibility)})
	}
	if dto.Purpose != "" {
		fields = append(fields, datasource.Field{Name: tok.Purpose, Value: schema.BuildPurpose(domain.NewToken(dto.Purpose))})
	}
	if dto.Model != nil {
		model := schema.BuildModel(domain.NewToken(dto.Model.DrawMode), dto.Model.ApplyDrawMode)
		fields = append(fields, datasource.Field{Name: tok.Model, Value: model})
	}
	if len(dto.MaterialBindings) > 0 {
		bindings, err := buildMaterialBindings(dto.MaterialBindings)
		if err != nil {
			return nil, err
		}
		fields = append(fields, datasource.Field{Name: tok.MaterialBindings, Value: bindings})
	}
	if len(dto.Primvars) > 0 {
		primvars, err := buildPrimvars(dto.Primvars)
		if err != nil {
			return nil, err
		}
		fields = append(fields, datasource.Field{Name: tok.Primvars, Value: primvars})
	}
	if dto.Cube != nil {
		fields = append(fields, datasource.Field{Name: tok.Cube, Value: schema.BuildCube(dto.Cube.Size)})
	}
	if dto.SceneGlobals != nil {
		globals, err := buildSceneGlobals(dto.SceneGlobals)
		if err != nil {
			return nil, err
		}
		fields = append(fields, datasource.Field{Name: tok.SceneGlobals, Value: globals})
	}

	return datasource.NewContainer(fields...), nil
}

// buildXform reads a row-major matrix, or composes translate and scale.
func buildXform(dto *XformDTO) (datasource.Container, error) {
	if dto.Matrix != nil {
		if len(dto.Matrix) != len(mgl64.Mat4{}) {
			return nil, zerr.With(domain.ErrInvalidMatrix, "components", len(dto.Matrix))
		}
		var m mgl64.Mat4
		copy(m[:], dto.Matrix)
		return schema.BuildXform(m.Transpose(), dto.ResetXformStack), nil
	}

	translate, err := vec3(dto.Translate, mgl64.Vec3{})
	if err != nil {
		return nil, zerr.With(err, "field", "translate")
	}
	scale, err := vec3(dto.Scale, mgl64.Vec3{1, 1, 1})
	if err != nil {
		return nil, zerr.With(err, "field", "scale")
	}
	m := mgl64.Translate3D(translate.Elem()).Mul4(mgl64.Scale3D(scale.Elem()))
	return schema.BuildXform(m, dto.ResetXformStack), nil
}

func vec3(values []float64, fallback mgl64.Vec3) (mgl64.Vec3, error) {
	if values == nil {
		return fallback, nil
	}
	if len(values) != len(mgl64.Vec3{}) {
		return mgl64.Vec3{}, zerr.With(domain.ErrInvalidVector, "components", len(values))
	}
	return mgl64.Vec3{values[0], values[1], values[2]}, nil
}

// bindingPurpose maps a scene file purpose key to its token. "all" names the
// empty all-purpose token, which YAML keys cannot spell comfortably.
func bindingPurpose(key string) domain.Token {
	if key == "" || key == "all" {
		return schema.Tokens().AllPurpose
	}
	return domain.NewToken(key)
}

func buildMaterialBindings(in map[string]*BindingDTO) (datasource.Container, error) {
	keys := sortedKeys(in)
	names := make([]domain.Token, 0, len(keys))
	values := make([]datasource.DataSource, 0, len(keys))
	for _, key := range keys {
		dto := in[key]
		if dto == nil {
			continue
		}
		path, err := domain.ParsePath(dto.Path)
		if err != nil {
			return nil, zerr.With(err, "materialBinding", key)
		}
		names = append(names, bindingPurpose(key))
		values = append(values, schema.BuildMaterialBinding(path, domain.NewToken(dto.Strength)))
	}
	return datasource.BuildContainer(names, values), nil
}

func buildPrimvars(in map[string]*PrimvarDTO) (datasource.Container, error) {
	keys := sortedKeys(in)
	names := make([]domain.Token, 0, len(keys))
	values := make([]datasource.DataSource, 0, len(keys))
	for _, key := range keys {
		dto := in[key]
		if dto == nil {
			continue
		}
		value, err := primvarValue(&dto.Value)
		if err != nil {
			return nil, zerr.With(err, "primvar", key)
		}
		interpolation := schema.Tokens().Constant
		if dto.Interpolation != "" {
			interpolation = domain.NewToken(dto.Interpolation)
		}
		names = append(names, domain.NewToken(key))
		values = append(values, schema.BuildPrimvar(value, interpolation, domain.NewToken(dto.Role)))
	}
	return datasource.BuildContainer(names, values), nil
}

// primvarValue decodes a scalar as bool, float64 or string, a three element number
// sequence as a vector and any other flat sequence as an array.
func primvarValue(node *yaml.Node) (datasource.DataSource, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return scalarValue(node)
	case yaml.SequenceNode:
		return sequenceValue(node)
	default:
		return nil, zerr.With(domain.ErrUnsupportedValue, "line", node.Line)
	}
}

func scalarValue(node *yaml.Node) (datasource.DataSource, error) {
	switch node.ShortTag() {
	case "!!bool":
		var v bool
		if err := node.Decode(&v); err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		}
		return datasource.NewValue(v), nil
	case "!!int", "!!float":
		var v float64
		if err := node.Decode(&v); err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		}
		return datasource.NewValue(v), nil
	case "!!str":
		return datasource.NewValue(node.Value), nil
	default:
		return nil, zerr.With(domain.ErrUnsupportedValue, "tag", node.ShortTag())
	}
}

func sequenceValue(node *yaml.Node) (datasource.DataSource, error) {
	numeric := len(node.Content) > 0
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return nil, zerr.With(domain.ErrUnsupportedValue, "line", item.Line)
		}
		if tag := item.ShortTag(); tag != "!!int" && tag != "!!float" {
			numeric = false
		}
	}

	if !numeric {
		var v []string
		if err := node.Decode(&v); err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		}
		return datasource.NewValue(v), nil
	}

	var v []float64
	if err := node.Decode(&v); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	if len(v) == len(mgl64.Vec3{}) {
		return datasource.NewValue(mgl64.Vec3{v[0], v[1], v[2]}), nil
	}
	return datasource.NewValue(v), nil
}

func buildSceneGlobals(dto *SceneGlobalsDTO) (datasource.Container, error) {
	b := &schema.SceneGlobalsBuilder{}
	if dto.ActiveRenderSettingsPrim != "" {
		path, err := domain.ParsePath(dto.ActiveRenderSettingsPrim)
		if err != nil {
			return nil, zerr.With(err, "field", "activeRenderSettingsPrim")
		}
		b.SetActiveRenderSettingsPrim(path)
	}
	if dto.StartTimeCode != nil {
		b.SetStartTimeCode(*dto.StartTimeCode)
	}
	if dto.EndTimeCode != nil {
		b.SetEndTimeCode(*dto.EndTimeCode)
	}
	return b.Build(), nil
}

func buildEdit(dto *EditDTO) (scene.Edit, error) {
	if dto == nil {
		return scene.Edit{}, domain.ErrUnknownEdit
	}

	var edit scene.Edit
	switch dto.Op {
	case "add":
		edit.Kind = scene.EditAdd
	case "remove":
		edit.Kind = scene.EditRemove
	case "dirty":
		edit.Kind = scene.EditDirty
	default:
		return scene.Edit{}, zerr.With(domain.ErrUnknownEdit, "op", dto.Op)
	}

	spec, err := buildPrimSpec(&dto.PrimDTO)
	if err != nil {
		return scene.Edit{}, err
	}
	edit.Path = spec.Path
	if edit.Kind != scene.EditRemove {
		edit.Prim = spec.Prim
	}

	for _, s := range dto.Locators {
		loc, err := domain.ParseLocator(s)
		if err != nil {
			return scene.Edit{}, zerr.With(err, "locator", s)
		}
		edit.Locators.Insert(loc)
	}
	return edit, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
