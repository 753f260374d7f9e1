package flatten

import (
	"slices"
	"sync/atomic"

	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/scene"
)

type inputSource struct {
	c datasource.Container
}

// primSource wraps the input data source of one prim. Fields owned by an enabled
// resolver are flattened lazily and memoized per resolver; every other field passes
// through to the input.
type primSource struct {
	index    *SceneIndex
	path     domain.Path
	primType domain.Token
	input    atomic.Pointer[inputSource]
	slots    []memo
}

var _ datasource.Container = (*primSource)(nil)

func newPrimSource(index *SceneIndex, path domain.Path, prim scene.Prim) *primSource {
	p := &primSource{
		index:    index,
		path:     path,
		primType: prim.Type,
		slots:    make([]memo, len(index.resolvers)),
	}
	p.input.Store(&inputSource{c: prim.Source})
	return p
}

func (p *primSource) prim() scene.Prim {
	return scene.Prim{Type: p.primType, Source: p}
}

func (p *primSource) raw() datasource.Container {
	return p.input.Load().c
}

// refresh points the wrapper at new input data.
func (p *primSource) refresh(c datasource.Container) {
	if c != nil {
		p.input.Store(&inputSource{c: c})
	}
}

func (p *primSource) Kind() datasource.Kind { return datasource.KindContainer }

// Names lists the input fields followed by the flattened fields the input lacks.
func (p *primSource) Names() []domain.Token {
	names := p.raw().Names()
	for _, r := range p.index.resolvers {
		if !slices.Contains(names, r.Name()) {
			names = append(names, r.Name())
		}
	}
	return names
}

func (p *primSource) Get(name domain.Token) datasource.DataSource {
	slot, ok := p.index.slots[name]
	if !ok {
		return p.raw().Get(name)
	}
	return p.slots[slot].get(func() datasource.DataSource {
		return p.resolve(slot)
	})
}

func (p *primSource) resolve(slot int) datasource.DataSource {
	r := p.index.resolvers[slot]
	local := datasource.GetContainer(p.raw(), r.Name())
	parent := p.index.parentField(p.path, slot)
	if ds := r.Resolve(local, parent, p.path); ds != nil {
		return ds
	}
	return r.Identity()
}

// primDirtied clears the slots of every resolver whose field intersects locators and
// reports whether any flattened field was affected.
func (p *primSource) primDirtied(locators domain.LocatorSet) bool {
	touched := false
	for i, r := range p.index.resolvers {
		if locators.Intersects(r.Locator()) {
			p.slots[i].invalidate()
			touched = true
		}
	}
	return touched
}

// unshadowed returns the members of locators that the prim's own opinions do not hide
// from its descendants.
func (p *primSource) unshadowed(locators domain.LocatorSet) domain.LocatorSet {
	var out domain.LocatorSet
	for loc := range locators.All() {
		if !p.shadows(loc) {
			out.Insert(loc)
		}
	}
	return out
}

func (p *primSource) shadows(loc domain.Locator) bool {
	for _, r := range p.index.resolvers {
		if loc.Intersects(r.Locator()) && r.Shadows(datasource.GetContainer(p.raw(), r.Name()), loc) {
			return true
		}
	}
	return false
}
