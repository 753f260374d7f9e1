package config

import "gopkg.in/yaml.v3"

// Scenefile represents the structure of the strata.yaml scene file.
type Scenefile struct {
	Version string      `yaml:"version"`
	Flatten *FlattenDTO `yaml:"flatten"`
	Prims   []*PrimDTO  `yaml:"prims"`
	Edits   []*EditDTO  `yaml:"edits"`
}

// FlattenDTO selects the flattening domains. Omitted domains are enabled.
type FlattenDTO struct {
	Xform                 *bool    `yaml:"xform"`
	Visibility            *bool    `yaml:"visibility"`
	Purpose               *bool    `yaml:"purpose"`
	Model                 *bool    `yaml:"model"`
	MaterialBindings      *bool    `yaml:"materialBindings"`
	Primvars              *bool    `yaml:"primvars"`
	InheritedPrimvars     []string `yaml:"inheritedPrimvars"`
	MaterialBindingPolicy string   `yaml:"materialBindingPolicy"`
}

// PrimDTO represents a prim definition in the scene file.
type PrimDTO struct {
	Path             string                 `yaml:"path"`
	Type             string                 `yaml:"type"`
	Xform            *XformDTO              `yaml:"xform"`
	Visibility       *bool                  `yaml:"visibility"`
	Purpose          string                 `yaml:"purpose"`
	Model            *ModelDTO              `yaml:"model"`
	MaterialBindings map[string]*BindingDTO `yaml:"materialBindings"`
	Primvars         map[string]*PrimvarDTO `yaml:"primvars"`
	Cube             *CubeDTO               `yaml:"cube"`
	SceneGlobals     *SceneGlobalsDTO       `yaml:"sceneGlobals"`
}

// XformDTO is either a full row-major matrix or a translate/scale pair.
type XformDTO struct {
	Matrix          []float64 `yaml:"matrix"`
	Translate       []float64 `yaml:"translate"`
	Scale           []float64 `yaml:"scale"`
	ResetXformStack bool      `yaml:"resetXformStack"`
}

// ModelDTO represents the model field.
type ModelDTO struct {
	DrawMode      string `yaml:"drawMode"`
	ApplyDrawMode bool   `yaml:"applyDrawMode"`
}

// BindingDTO represents a material binding for one purpose.
type BindingDTO struct {
	Path     string `yaml:"path"`
	Strength string `yaml:"strength"`
}

// PrimvarDTO represents a primvar. Value keeps the raw node so scalars, vectors
// and arrays can be told apart.
type PrimvarDTO struct {
	Value         yaml.Node `yaml:"value"`
	Interpolation string    `yaml:"interpolation"`
	Role          string    `yaml:"role"`
}

// CubeDTO represents the cube field.
type CubeDTO struct {
	Size float64 `yaml:"size"`
}

// SceneGlobalsDTO represents the scene globals field.
type SceneGlobalsDTO struct {
	ActiveRenderSettingsPrim string   `yaml:"activeRenderSettingsPrim"`
	StartTimeCode            *float64 `yaml:"startTimeCode"`
	EndTimeCode              *float64 `yaml:"endTimeCode"`
}

// EditDTO represents an edit replayed against the scene. The prim fields are inline.
type EditDTO struct {
	Op       string   `yaml:"op"`
	Locators []string `yaml:"locators"`
	PrimDTO  `yaml:",inline"`
}
