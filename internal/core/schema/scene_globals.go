package schema

import (
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
)

// SceneGlobals reads the "sceneGlobals" field, conventionally authored on the root prim.
type SceneGlobals struct {
	base
}

// SceneGlobalsFrom reads the scene globals schema from a prim-level container.
func SceneGlobalsFrom(prim datasource.Container) SceneGlobals {
	return SceneGlobals{base{c: datasource.GetContainer(prim, Tokens().SceneGlobals)}}
}

// SceneGlobalsPrimPath is where scene globals are looked up.
func SceneGlobalsPrimPath() domain.Path {
	return domain.AbsoluteRootPath
}

// ActiveRenderSettingsPrim returns the path of the active render settings prim.
func (s SceneGlobals) ActiveRenderSettingsPrim() (domain.Path, bool) {
	return datasource.GetTyped[domain.Path](s.c, Tokens().ActiveRenderSettingsPrim)
}

// StartTimeCode returns the first time code of the scene.
func (s SceneGlobals) StartTimeCode() (float64, bool) {
	return datasource.GetTyped[float64](s.c, Tokens().StartTimeCode)
}

// EndTimeCode returns the last time code of the scene.
func (s SceneGlobals) EndTimeCode() (float64, bool) {
	return datasource.GetTyped[float64](s.c, Tokens().EndTimeCode)
}

// SceneGlobalsBuilder collects optional scene globals fields.
type SceneGlobalsBuilder struct {
	activeRenderSettingsPrim *domain.Path
	startTimeCode            *float64
	endTimeCode              *float64
}

// SetActiveRenderSettingsPrim sets the active render settings prim.
func (b *SceneGlobalsBuilder) SetActiveRenderSettingsPrim(p domain.Path) *SceneGlobalsBuilder {
	b.activeRenderSettingsPrim = &p
	return b
}

// SetStartTimeCode sets the start time code.
func (b *SceneGlobalsBuilder) SetStartTimeCode(t float64) *SceneGlobalsBuilder {
	b.startTimeCode = &t
	return b
}

// SetEndTimeCode sets the end time code.
func (b *SceneGlobalsBuilder) SetEndTimeCode(t float64) *SceneGlobalsBuilder {
	b.endTimeCode = &t
	return b
}

// Build returns the retained container with only the fields that were set.
func (b *SceneGlobalsBuilder) Build() datasource.Container {
	var fields []datasource.Field
	if b.activeRenderSettingsPrim != nil {
		fields = append(fields, datasource.Field{
			Name:  Tokens().ActiveRenderSettingsPrim,
			Value: datasource.NewValue(*b.activeRenderSettingsPrim),
		})
	}
	if b.startTimeCode != nil {
		fields = append(fields, datasource.Field{Name: Tokens().StartTimeCode, Value: datasource.NewValue(*b.startTimeCode)})
	}
	if b.endTimeCode != nil {
		fields = append(fields, datasource.Field{Name: Tokens().EndTimeCode, Value: datasource.NewValue(*b.endTimeCode)})
	}
	return datasource.NewContainer(fields...)
}

// SceneGlobalsLocator is the prim-level locator of the scene globals field.
func SceneGlobalsLocator() domain.Locator {
	return domain.NewLocator(Tokens().SceneGlobals)
}
