// Package flatten implements the flattening scene index: a filtering scene index
// that resolves inherited prim state (transform, visibility, purpose, draw mode,
// material bindings and primvars) on every prim of its input.
package flatten

import (
	"sync"

	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/strata/internal/core/scene"
	"golang.org/x/sync/singleflight"
)

// SceneIndex is a flattening scene index over a single input index.
//
// Readers may call GetPrim and GetChildPrimPaths concurrently with each other and
// with notification delivery from the input.
type SceneIndex struct {
	input     scene.Index
	cfg       domain.FlattenConfig
	resolvers []ports.Resolver
	slots     map[domain.Token]int

	// mu guards prims and epoch. Readers hold it only for lookups, never while
	// evaluating data sources, since evaluation recurses into GetPrim for the parent.
	mu     sync.RWMutex
	prims  *table
	recent *staging
	misses singleflight.Group
	// epoch counts handled input notifications. A miss stages its source only if
	// no notification was handled since the input was read.
	epoch uint64

	notifier scene.Notifier
	observer *inputObserver
}

var _ scene.Index = (*SceneIndex)(nil)

// Stats reports the cache occupancy of a SceneIndex.
type Stats struct {
	Cached int
	Staged int
}

// New creates a flattening scene index over input and subscribes it to input's
// notifications. args selects the flattened domains, see ParseArgs.
// It panics when input or provider is nil, or when args names an unknown policy.
func New(input scene.Index, args datasource.Container, provider ports.ResolverProvider) *SceneIndex {
	if input == nil {
		panic("flatten: nil input scene index")
	}
	if provider == nil {
		panic("flatten: nil resolver provider")
	}

	cfg := ParseArgs(args)
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	s := &SceneIndex{
		input:     input,
		cfg:       cfg,
		resolvers: provider.Resolvers(cfg),
		prims:     newTable(),
		recent:    newStaging(),
	}
	s.slots = make(map[domain.Token]int, len(s.resolvers))
	for i, r := range s.resolvers {
		s.slots[r.Name()] = i
	}

	s.observer = &inputObserver{index: s}
	input.AddObserver(s.observer)
	return s
}

// Config returns the flatten configuration in effect.
func (s *SceneIndex) Config() domain.FlattenConfig {
	return s.cfg
}

// Input returns the input scene index.
func (s *SceneIndex) Input() scene.Index {
	return s.input
}

// Close unsubscribes the index from its input.
func (s *SceneIndex) Close() {
	s.input.RemoveObserver(s.observer)
}

// GetPrim returns the flattened prim at path, or an undefined Prim when the input has
// no prim there.
func (s *SceneIndex) GetPrim(path domain.Path) scene.Prim {
	if path.IsEmpty() {
		return scene.Prim{}
	}

	s.mu.RLock()
	src, ok := s.prims.get(path)
	s.mu.RUnlock()
	if ok {
		return src.prim()
	}

	if src, ok := s.recent.get(path); ok {
		return src.prim()
	}

	v, _, _ := s.misses.Do(path.String(), func() (any, error) {
		return s.wrap(path), nil
	})
	if src, _ := v.(*primSource); src != nil {
		return src.prim()
	}
	return scene.Prim{}
}

// wrap creates and stages the source for path. Paths without an input prim are not
// cached.
func (s *SceneIndex) wrap(path domain.Path) *primSource {
	s.mu.RLock()
	src, ok := s.prims.get(path)
	s.mu.RUnlock()
	if ok {
		return src
	}
	if src, ok := s.recent.get(path); ok {
		return src
	}

	s.mu.RLock()
	epoch := s.epoch
	s.mu.RUnlock()

	prim := s.input.GetPrim(path)
	if !prim.IsDefined() {
		return nil
	}
	src = newPrimSource(s, path, prim)

	s.mu.RLock()
	if s.epoch == epoch {
		staged := s.recent.insertOrFetch(path, src)
		s.mu.RUnlock()
		return staged
	}
	s.mu.RUnlock()

	// The input changed after the read: serve its current prim without caching it.
	if prim = s.input.GetPrim(path); !prim.IsDefined() {
		return nil
	}
	return newPrimSource(s, path, prim)
}

// GetChildPrimPaths delegates to the input: flattening never changes the topology.
func (s *SceneIndex) GetChildPrimPaths(path domain.Path) []domain.Path {
	return s.input.GetChildPrimPaths(path)
}

// AddObserver subscribes o to the forwarded notifications.
func (s *SceneIndex) AddObserver(o scene.Observer) {
	s.notifier.AddObserver(o)
}

// RemoveObserver unsubscribes o.
func (s *SceneIndex) RemoveObserver(o scene.Observer) {
	s.notifier.RemoveObserver(o)
}

// Consolidate moves every staged source into the primary cache.
func (s *SceneIndex) Consolidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consolidateLocked()
}

func (s *SceneIndex) consolidateLocked() {
	s.recent.drain(func(path domain.Path, src *primSource) {
		s.prims.set(path, src)
	})
}

// Stats reports how many prims are held by the primary and staging caches.
func (s *SceneIndex) Stats() Stats {
	s.mu.RLock()
	cached := s.prims.len()
	s.mu.RUnlock()
	return Stats{Cached: cached, Staged: s.recent.len()}
}

// parentField returns the flattened field of resolver slot at the nearest defined
// ancestor of path, or the resolver's identity when there is none.
func (s *SceneIndex) parentField(path domain.Path, slot int) datasource.DataSource {
	r := s.resolvers[slot]
	for ancestor := range path.Ancestors() {
		prim := s.GetPrim(ancestor)
		if !prim.IsDefined() {
			continue
		}
		if ds := prim.Source.Get(r.Name()); ds != nil {
			return ds
		}
		break
	}
	return r.Identity()
}
