package resolve

import (
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/schema"
)

// MaterialBindings resolves one binding per binding purpose.
type MaterialBindings struct {
	policy domain.MaterialBindingPolicy
}

// NewMaterialBindings creates the material bindings resolver. An empty policy means
// BindingNearest.
func NewMaterialBindings(policy domain.MaterialBindingPolicy) *MaterialBindings {
	if policy == "" {
		policy = domain.BindingNearest
	}
	return &MaterialBindings{policy: policy}
}

// Policy returns the conflict policy in effect.
func (r *MaterialBindings) Policy() domain.MaterialBindingPolicy { return r.policy }

// Name implements ports.Resolver.
func (r *MaterialBindings) Name() domain.Token { return schema.Tokens().MaterialBindings }

// Locator implements ports.Resolver.
func (r *MaterialBindings) Locator() domain.Locator { return schema.MaterialBindingsLocator() }

// Identity implements ports.Resolver.
func (r *MaterialBindings) Identity() datasource.DataSource { return datasource.Empty }

// Resolve merges the local bindings with the parent's, purpose by purpose.
func (r *MaterialBindings) Resolve(local datasource.Container, parent datasource.DataSource, _ domain.Path) datasource.DataSource {
	parentBindings, _ := datasource.AsContainer(parent)
	if local == nil || len(local.Names()) == 0 {
		if parentBindings == nil {
			return datasource.Empty
		}
		return parentBindings
	}
	if parentBindings == nil {
		parentBindings = datasource.Empty
	}

	localSchema := schema.NewMaterialBindings(local)
	parentSchema := schema.NewMaterialBindings(parentBindings)

	purposes := localSchema.Purposes()
	seen := make(map[domain.Token]struct{}, len(purposes))
	for _, p := range purposes {
		seen[p] = struct{}{}
	}
	for _, p := range parentSchema.Purposes() {
		if _, ok := seen[p]; !ok {
			purposes = append(purposes, p)
		}
	}

	fields := make([]datasource.Field, 0, len(purposes))
	for _, purpose := range purposes {
		if chosen := r.choose(localSchema.Binding(purpose), parentSchema.Binding(purpose)); chosen != nil {
			fields = append(fields, datasource.Field{Name: purpose, Value: chosen})
		}
	}
	return datasource.NewContainer(fields...)
}

func (r *MaterialBindings) choose(local, parent schema.MaterialBinding) datasource.Container {
	_, localBound := local.Path()
	_, parentBound := parent.Path()

	if r.policy == domain.BindingStrongerThanDescendants && parentBound &&
		parent.Strength() == schema.Tokens().StrongerThanDescendants {
		return parent.Container()
	}
	if localBound {
		return local.Container()
	}
	if parentBound {
		return parent.Container()
	}
	return nil
}

// Inherited implements ports.Resolver.
func (r *MaterialBindings) Inherited(dirty domain.LocatorSet) domain.LocatorSet {
	return wholeField(dirty, schema.MaterialBindingsLocator())
}

// Shadows implements ports.Resolver. A local binding never hides a change above it:
// under strongerThanDescendants an ancestor may still win.
func (r *MaterialBindings) Shadows(datasource.Container, domain.Locator) bool {
	return false
}
