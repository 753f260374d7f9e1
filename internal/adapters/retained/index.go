// Package retained implements an in-memory, mutable scene index used as the input of
// the flattening engine.
package retained

import (
	"slices"
	"sync"

	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/strata/internal/core/scene"
	"go.trai.ch/zerr"
)

type entry struct {
	prim     scene.Prim
	children []domain.Path
}

// Index is a retained scene index. Ancestors of added prims exist implicitly as
// undefined prims so that the hierarchy can always be walked from the root.
type Index struct {
	mu       sync.RWMutex
	entries  map[domain.Path]*entry
	notifier scene.Notifier
}

var _ ports.Stage = (*Index)(nil)

// New creates an Index holding only the implicit root.
func New() *Index {
	return &Index{
		entries: map[domain.Path]*entry{domain.AbsoluteRootPath: {}},
	}
}

// GetPrim returns the prim at path, or an undefined Prim.
func (i *Index) GetPrim(path domain.Path) scene.Prim {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if e, ok := i.entries[path]; ok {
		return e.prim
	}
	return scene.Prim{}
}

// GetChildPrimPaths returns the children of path in path order.
func (i *Index) GetChildPrimPaths(path domain.Path) []domain.Path {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if e, ok := i.entries[path]; ok {
		return slices.Clone(e.children)
	}
	return nil
}

// AddObserver subscribes o to notifications.
func (i *Index) AddObserver(o scene.Observer) {
	i.notifier.AddObserver(o)
}

// RemoveObserver unsubscribes o.
func (i *Index) RemoveObserver(o scene.Observer) {
	i.notifier.RemoveObserver(o)
}

// AddPrims adds or replaces prims. Nothing is added when any path is invalid.
func (i *Index) AddPrims(specs []scene.PrimSpec) error {
	for _, spec := range specs {
		if spec.Path.IsEmpty() {
			return zerr.With(domain.ErrInvalidPath, "path", spec.Path.String())
		}
	}

	added := make([]scene.AddedPrimEntry, 0, len(specs))

	i.mu.Lock()
	for _, spec := range specs {
		i.ensure(spec.Path).prim = spec.Prim
		added = append(added, scene.AddedPrimEntry{Path: spec.Path, Type: spec.Prim.Type})
	}
	i.mu.Unlock()

	i.notifier.SendPrimsAdded(i, added)
	return nil
}

// ensure returns the entry of path, creating it and its missing ancestors.
func (i *Index) ensure(path domain.Path) *entry {
	if e, ok := i.entries[path]; ok {
		return e
	}
	e := &entry{}
	i.entries[path] = e

	parent := i.ensure(path.Parent())
	at, _ := slices.BinarySearchFunc(parent.children, path, domain.Path.Compare)
	parent.children = slices.Insert(parent.children, at, path)
	return e
}

// RemovePrims removes each path and its subtree. Removing the root clears the index
// but keeps the implicit root itself. Unknown paths are ignored.
func (i *Index) RemovePrims(paths []domain.Path) {
	removed := make([]scene.RemovedPrimEntry, 0, len(paths))

	i.mu.Lock()
	for _, path := range paths {
		e, ok := i.entries[path]
		if !ok {
			continue
		}
		removed = append(removed, scene.RemovedPrimEntry{Path: path})

		if path.IsRoot() {
			i.entries = map[domain.Path]*entry{domain.AbsoluteRootPath: {}}
			continue
		}
		i.drop(path, e)
		parent := i.entries[path.Parent()]
		parent.children = slices.DeleteFunc(parent.children, func(child domain.Path) bool {
			return child == path
		})
	}
	i.mu.Unlock()

	i.notifier.SendPrimsRemoved(i, removed)
}

func (i *Index) drop(path domain.Path, e *entry) {
	for _, child := range e.children {
		i.drop(child, i.entries[child])
	}
	delete(i.entries, path)
}

// DirtyPrims forwards entries to observers. The data itself is expected to have been
// updated with SetSource beforehand.
func (i *Index) DirtyPrims(entries []scene.DirtiedPrimEntry) {
	i.notifier.SendPrimsDirtied(i, entries)
}

// SetSource replaces the data of an existing prim without notifying observers.
func (i *Index) SetSource(path domain.Path, source datasource.Container) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	e, ok := i.entries[path]
	if !ok {
		return zerr.With(domain.ErrPrimNotFound, "path", path.String())
	}
	e.prim.Source = source
	return nil
}

// Len returns the number of entries, implicit ancestors and the root included.
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.entries)
}
