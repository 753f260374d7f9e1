// Package schema provides typed accessors and builders over prim-level data sources
// for the fields the flattening engine understands, plus a few render globals.
package schema

import (
	"sync"

	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
)

// TokenTable holds every field name and enumerated value used by the schemas.
type TokenTable struct {
	Xform           domain.Token
	Matrix          domain.Token
	ResetXformStack domain.Token

	Visibility domain.Token

	Purpose        domain.Token
	PurposeDefault domain.Token
	PurposeRender  domain.Token
	PurposeProxy   domain.Token
	PurposeGuide   domain.Token

	Model             domain.Token
	DrawMode          domain.Token
	ApplyDrawMode     domain.Token
	DrawModeDefault   domain.Token
	DrawModeInherited domain.Token
	DrawModeOrigin    domain.Token
	DrawModeBounds    domain.Token
	DrawModeCards     domain.Token

	MaterialBindings        domain.Token
	MaterialBindingPath     domain.Token
	BindingStrength         domain.Token
	StrongerThanDescendants domain.Token
	WeakerThanDescendants   domain.Token
	AllPurpose              domain.Token
	PreviewPurpose          domain.Token
	FullPurpose             domain.Token

	Primvars      domain.Token
	PrimvarValue  domain.Token
	Interpolation domain.Token
	Role          domain.Token
	Constant      domain.Token
	Uniform       domain.Token
	Varying       domain.Token
	Vertex        domain.Token
	FaceVarying   domain.Token
	Instance      domain.Token

	Cube domain.Token
	Size domain.Token

	SceneGlobals             domain.Token
	ActiveRenderSettingsPrim domain.Token
	StartTimeCode            domain.Token
	EndTimeCode              domain.Token
}

// Tokens returns the process-wide token table. It is built once on first use and
// never mutated afterwards.
var Tokens = sync.OnceValue(func() *TokenTable {
	return &TokenTable{
		Xform:           domain.NewToken("xform"),
		Matrix:          domain.NewToken("matrix"),
		ResetXformStack: domain.NewToken("resetXformStack"),

		Visibility: domain.NewToken("visibility"),

		Purpose:        domain.NewToken("purpose"),
		PurposeDefault: domain.NewToken("default"),
		PurposeRender:  domain.NewToken("render"),
		PurposeProxy:   domain.NewToken("proxy"),
		PurposeGuide:   domain.NewToken("guide"),

		Model:             domain.NewToken("model"),
		DrawMode:          domain.NewToken("drawMode"),
		ApplyDrawMode:     domain.NewToken("applyDrawMode"),
		DrawModeDefault:   domain.NewToken("default"),
		DrawModeInherited: domain.NewToken("inherited"),
		DrawModeOrigin:    domain.NewToken("origin"),
		DrawModeBounds:    domain.NewToken("bounds"),
		DrawModeCards:     domain.NewToken("cards"),

		MaterialBindings:        domain.NewToken("materialBindings"),
		MaterialBindingPath:     domain.NewToken("path"),
		BindingStrength:         domain.NewToken("bindingStrength"),
		StrongerThanDescendants: domain.NewToken("strongerThanDescendants"),
		WeakerThanDescendants:   domain.NewToken("weakerThanDescendants"),
		AllPurpose:              domain.Token{},
		PreviewPurpose:          domain.NewToken("preview"),
		FullPurpose:             domain.NewToken("full"),

		Primvars:      domain.NewToken("primvars"),
		PrimvarValue:  domain.NewToken("primvarValue"),
		Interpolation: domain.NewToken("interpolation"),
		Role:          domain.NewToken("role"),
		Constant:      domain.NewToken("constant"),
		Uniform:       domain.NewToken("uniform"),
		Varying:       domain.NewToken("varying"),
		Vertex:        domain.NewToken("vertex"),
		FaceVarying:   domain.NewToken("faceVarying"),
		Instance:      domain.NewToken("instance"),

		Cube: domain.NewToken("cube"),
		Size: domain.NewToken("size"),

		SceneGlobals:             domain.NewToken("sceneGlobals"),
		ActiveRenderSettingsPrim: domain.NewToken("activeRenderSettingsPrim"),
		StartTimeCode:            domain.NewToken("startTimeCode"),
		EndTimeCode:              domain.NewToken("endTimeCode"),
	}
})

// base is embedded by every schema. A schema over a nil container is undefined and
// all of its accessors report absence.
type base struct {
	c datasource.Container
}

// IsDefined reports whether the schema wraps a container.
func (b base) IsDefined() bool {
	return b.c != nil
}

// Container returns the wrapped container, possibly nil.
func (b base) Container() datasource.Container {
	return b.c
}
