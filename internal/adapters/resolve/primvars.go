package resolve

import (
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/schema"
)

// Primvars merges local primvars with the constant primvars inherited from ancestors.
// The flattened container is a snapshot taken when the field is resolved.
type Primvars struct {
	eligible map[domain.Token]struct{}
}

// NewPrimvars creates the primvars resolver. When names is empty every constant primvar
// is inherited; otherwise only the listed ones are.
func NewPrimvars(names []domain.Token) *Primvars {
	r := &Primvars{}
	if len(names) > 0 {
		r.eligible = make(map[domain.Token]struct{}, len(names))
		for _, n := range names {
			r.eligible[n] = struct{}{}
		}
	}
	return r
}

func (r *Primvars) isEligible(name domain.Token) bool {
	if r.eligible == nil {
		return true
	}
	_, ok := r.eligible[name]
	return ok
}

// Name implements ports.Resolver.
func (r *Primvars) Name() domain.Token { return schema.Tokens().Primvars }

// Locator implements ports.Resolver.
func (r *Primvars) Locator() domain.Locator { return schema.PrimvarsLocator() }

// Identity implements ports.Resolver.
func (r *Primvars) Identity() datasource.DataSource { return datasource.Empty }

// Resolve implements ports.Resolver.
func (r *Primvars) Resolve(local datasource.Container, parent datasource.DataSource, _ domain.Path) datasource.DataSource {
	parentPrimvars, _ := datasource.AsContainer(parent)
	inherited := schema.NewPrimvars(parentPrimvars)
	localSchema := schema.NewPrimvars(local)

	var fields []datasource.Field
	passthrough := len(localSchema.Names()) == 0
	for _, name := range localSchema.Names() {
		fields = append(fields, datasource.Field{Name: name, Value: localSchema.Primvar(name).Container()})
	}
	for _, name := range inherited.Names() {
		pv := inherited.Primvar(name)
		if !pv.IsConstant() || !r.isEligible(name) {
			passthrough = false
			continue
		}
		if local != nil && local.Get(name) != nil {
			continue
		}
		fields = append(fields, datasource.Field{Name: name, Value: pv.Container()})
	}

	if passthrough && parentPrimvars != nil {
		return parentPrimvars
	}
	if len(fields) == 0 {
		return datasource.Empty
	}
	return datasource.NewContainer(fields...)
}

// Inherited keeps precise primvars/<name> locators so that a descendant with its own
// primvar of that name can stop the propagation.
func (r *Primvars) Inherited(dirty domain.LocatorSet) domain.LocatorSet {
	root := schema.PrimvarsLocator()
	var out domain.LocatorSet
	for loc := range dirty.All() {
		switch {
		case loc.HasPrefix(root) && loc.Len() > 1:
			if r.isEligible(loc.Elements()[1]) {
				out.Insert(loc.Truncate(2))
			}
		case root.HasPrefix(loc):
			out.Insert(root)
		}
	}
	return out
}

// Shadows reports whether the prim authors the primvar named by loc.
func (r *Primvars) Shadows(local datasource.Container, loc domain.Locator) bool {
	if local == nil || loc.Len() < 2 || !loc.HasPrefix(schema.PrimvarsLocator()) {
		return false
	}
	return local.Get(loc.Elements()[1]) != nil
}
