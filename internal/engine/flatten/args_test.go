package flatten_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/engine/flatten"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args datasource.Container
		want domain.FlattenConfig
	}{
		{
			name: "nil enables everything",
			args: nil,
			want: domain.DefaultFlattenConfig(),
		},
		{
			name: "empty container enables nothing",
			args: datasource.Empty,
			want: domain.FlattenConfig{BindingPolicy: domain.BindingNearest},
		},
		{
			name: "selected flags",
			args: datasource.NewContainer(
				datasource.Field{Name: flatten.ArgFlattenXform, Value: datasource.NewValue(true)},
				datasource.Field{Name: flatten.ArgFlattenPrimvars, Value: datasource.NewValue(true)},
				datasource.Field{Name: flatten.ArgFlattenVisibility, Value: datasource.NewValue(false)},
				datasource.Field{Name: flatten.ArgInheritedPrimvars, Value: datasource.NewValue(domain.Tokens("displayColor"))},
				datasource.Field{
					Name:  flatten.ArgMaterialBindingPolicy,
					Value: datasource.NewValue(domain.NewToken("strongerThanDescendants")),
				},
			),
			want: domain.FlattenConfig{
				Xform:             true,
				Primvars:          true,
				InheritedPrimvars: domain.Tokens("displayColor"),
				BindingPolicy:     domain.BindingStrongerThanDescendants,
			},
		},
		{
			name: "wrongly typed flags are ignored",
			args: datasource.NewContainer(
				datasource.Field{Name: flatten.ArgFlattenXform, Value: datasource.NewValue("yes")},
			),
			want: domain.FlattenConfig{BindingPolicy: domain.BindingNearest},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, flatten.ParseArgs(tt.args))
		})
	}
}

func TestBuildArgs(t *testing.T) {
	cfg := domain.DefaultFlattenConfig()
	cfg.Model = false
	cfg.InheritedPrimvars = domain.Tokens("roughness", "metallic")

	assert.Equal(t, cfg, flatten.ParseArgs(flatten.BuildArgs(cfg)))
	assert.Equal(t, domain.DefaultFlattenConfig(), flatten.ParseArgs(flatten.BuildArgs(domain.DefaultFlattenConfig())))
}
