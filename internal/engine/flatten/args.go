package flatten

import (
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
)

// Argument names accepted by New.
var (
	ArgFlattenXform            = domain.NewToken("flattenXform")
	ArgFlattenVisibility       = domain.NewToken("flattenVisibility")
	ArgFlattenPurpose          = domain.NewToken("flattenPurpose")
	ArgFlattenModel            = domain.NewToken("flattenModel")
	ArgFlattenMaterialBindings = domain.NewToken("flattenMaterialBindings")
	ArgFlattenPrimvars         = domain.NewToken("flattenPrimvars")
	ArgInheritedPrimvars       = domain.NewToken("inheritedPrimvars")
	ArgMaterialBindingPolicy   = domain.NewToken("materialBindingPolicy")
)

// ParseArgs reads the flatten configuration from an argument container. A nil container
// enables every domain. Otherwise only the domains whose flag is set to true are enabled.
func ParseArgs(args datasource.Container) domain.FlattenConfig {
	if args == nil {
		return domain.DefaultFlattenConfig()
	}

	flag := func(name domain.Token) bool {
		v, _ := datasource.GetTyped[bool](args, name)
		return v
	}

	cfg := domain.FlattenConfig{
		Xform:            flag(ArgFlattenXform),
		Visibility:       flag(ArgFlattenVisibility),
		Purpose:          flag(ArgFlattenPurpose),
		Model:            flag(ArgFlattenModel),
		MaterialBindings: flag(ArgFlattenMaterialBindings),
		Primvars:         flag(ArgFlattenPrimvars),
		BindingPolicy:    domain.BindingNearest,
	}
	if names, ok := datasource.GetTyped[[]domain.Token](args, ArgInheritedPrimvars); ok {
		cfg.InheritedPrimvars = names
	}
	if policy, ok := datasource.GetTyped[domain.Token](args, ArgMaterialBindingPolicy); ok && !policy.IsEmpty() {
		cfg.BindingPolicy = domain.MaterialBindingPolicy(policy.String())
	}
	return cfg
}

// BuildArgs encodes cfg as an argument container understood by ParseArgs.
func BuildArgs(cfg domain.FlattenConfig) datasource.Container {
	fields := []datasource.Field{
		{Name: ArgFlattenXform, Value: datasource.NewValue(cfg.Xform)},
		{Name: ArgFlattenVisibility, Value: datasource.NewValue(cfg.Visibility)},
		{Name: ArgFlattenPurpose, Value: datasource.NewValue(cfg.Purpose)},
		{Name: ArgFlattenModel, Value: datasource.NewValue(cfg.Model)},
		{Name: ArgFlattenMaterialBindings, Value: datasource.NewValue(cfg.MaterialBindings)},
		{Name: ArgFlattenPrimvars, Value: datasource.NewValue(cfg.Primvars)},
	}
	if len(cfg.InheritedPrimvars) > 0 {
		fields = append(fields, datasource.Field{Name: ArgInheritedPrimvars, Value: datasource.NewValue(cfg.InheritedPrimvars)})
	}
	if cfg.BindingPolicy != "" {
		fields = append(fields, datasource.Field{
			Name:  ArgMaterialBindingPolicy,
			Value: datasource.NewValue(domain.NewToken(string(cfg.BindingPolicy))),
		})
	}
	return datasource.NewContainer(fields...)
}
