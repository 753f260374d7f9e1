package flatten

import (
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/scene"
)

// inputObserver receives the input's notifications on behalf of a SceneIndex.
type inputObserver struct {
	index *SceneIndex
}

func (o *inputObserver) PrimsAdded(_ scene.Index, entries []scene.AddedPrimEntry) {
	o.index.primsAdded(entries)
}

func (o *inputObserver) PrimsRemoved(_ scene.Index, entries []scene.RemovedPrimEntry) {
	o.index.primsRemoved(entries)
}

func (o *inputObserver) PrimsDirtied(_ scene.Index, entries []scene.DirtiedPrimEntry) {
	o.index.primsDirtied(entries)
}

// primsAdded replaces the cached source of every re-added prim. Cached descendants
// inherited from the old prim (or from above it, when it was not a prim before), so
// they are dirtied for every flattened field after the additions are forwarded.
func (s *SceneIndex) primsAdded(entries []scene.AddedPrimEntry) {
	var dirtied []scene.DirtiedPrimEntry

	s.mu.Lock()
	s.epoch++
	s.consolidateLocked()
	for _, e := range entries {
		if _, ok := s.prims.get(e.Path); ok {
			if prim := s.input.GetPrim(e.Path); prim.IsDefined() {
				s.prims.set(e.Path, newPrimSource(s, e.Path, prim))
			} else {
				s.prims.unset(e.Path)
			}
		}
		dirtied = append(dirtied, s.dirtyHierarchyLocked(e.Path, domain.UniversalLocatorSet())...)
	}
	s.mu.Unlock()

	s.notifier.SendPrimsAdded(s, entries)
	s.notifier.SendPrimsDirtied(s, scene.MergeDirtied(dirtied))
}

// primsRemoved drops the cached subtree of every removed prim.
func (s *SceneIndex) primsRemoved(entries []scene.RemovedPrimEntry) {
	s.mu.Lock()
	s.epoch++
	s.consolidateLocked()
	for _, e := range entries {
		s.prims.removeSubtree(e.Path)
	}
	s.mu.Unlock()

	s.notifier.SendPrimsRemoved(s, entries)
}

// primsDirtied invalidates the dirtied prims, propagates the inherited part of each
// change through the cached hierarchy and forwards the original entries merged with
// the synthesized ones.
func (s *SceneIndex) primsDirtied(entries []scene.DirtiedPrimEntry) {
	out := make([]scene.DirtiedPrimEntry, 0, len(entries))
	out = append(out, entries...)

	s.mu.Lock()
	s.epoch++
	s.consolidateLocked()
	for _, e := range entries {
		if src, ok := s.prims.get(e.Path); ok {
			src.refresh(s.input.GetPrim(e.Path).Source)
			src.primDirtied(e.Locators)
		}
		out = append(out, s.dirtyHierarchyLocked(e.Path, e.Locators)...)
	}
	s.mu.Unlock()

	s.notifier.SendPrimsDirtied(s, scene.MergeDirtied(out))
}

// dirtyHierarchyLocked invalidates the cached descendants of path that inherit from
// the fields in dirty, and returns a dirty entry for each of them. Propagation of a
// locator stops below a prim whose own opinion shadows it. The caller holds mu.
func (s *SceneIndex) dirtyHierarchyLocked(path domain.Path, dirty domain.LocatorSet) []scene.DirtiedPrimEntry {
	var inherited domain.LocatorSet
	for _, r := range s.resolvers {
		inherited = inherited.Union(r.Inherited(dirty))
	}
	if inherited.IsEmpty() {
		return nil
	}

	var out []scene.DirtiedPrimEntry
	walkDescendants(s.prims, path, inherited, func(p domain.Path, src *primSource, locs domain.LocatorSet) (domain.LocatorSet, bool) {
		if src == nil {
			return locs, true
		}
		if !src.primDirtied(locs) {
			return locs, false
		}
		out = append(out, scene.DirtiedPrimEntry{Path: p, Locators: locs})

		next := src.unshadowed(locs)
		return next, !next.IsEmpty()
	})
	return out
}
