// Package scene defines the observable scene index contract: prims addressed by path,
// child enumeration and the added/removed/dirtied notification protocol.
package scene

import (
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
)

// Prim is a typed data source addressed by a path.
// A Prim without a data source is undefined: the path does not exist.
type Prim struct {
	Type   domain.Token
	Source datasource.Container
}

// IsDefined reports whether the prim carries data.
func (p Prim) IsDefined() bool {
	return p.Source != nil
}

// AddedPrimEntry announces a new (or replaced) prim.
type AddedPrimEntry struct {
	Path domain.Path
	Type domain.Token
}

// RemovedPrimEntry announces the removal of the prim and its whole subtree.
type RemovedPrimEntry struct {
	Path domain.Path
}

// DirtiedPrimEntry announces that the fields under Locators changed at Path.
type DirtiedPrimEntry struct {
	Path     domain.Path
	Locators domain.LocatorSet
}

// Index is a hierarchical, observable provider of prims.
// GetPrim and GetChildPrimPaths may be called concurrently.
//
//go:generate go run go.uber.org/mock/mockgen -source=scene.go -destination=../ports/mocks/mock_scene.go -package=mocks
type Index interface {
	// GetPrim returns the prim at path, or an undefined Prim.
	GetPrim(path domain.Path) Prim
	// GetChildPrimPaths returns the immediate children of path in a stable order.
	GetChildPrimPaths(path domain.Path) []domain.Path
	// AddObserver subscribes o to notifications.
	AddObserver(o Observer)
	// RemoveObserver unsubscribes o.
	RemoveObserver(o Observer)
}

// Observer receives change notifications from an Index.
// Notifications are delivered by one writer at a time.
type Observer interface {
	PrimsAdded(sender Index, entries []AddedPrimEntry)
	PrimsRemoved(sender Index, entries []RemovedPrimEntry)
	PrimsDirtied(sender Index, entries []DirtiedPrimEntry)
}
