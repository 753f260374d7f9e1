package ports

import (
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
)

// Resolver flattens one inherited prim field.
// Implementations must be pure: the same inputs always produce equivalent results.
type Resolver interface {
	// Name is the top-level prim field the resolver owns.
	Name() domain.Token
	// Locator is the prim-level locator of the owned field.
	Locator() domain.Locator
	// Resolve combines the prim's own field (local, possibly nil) with the parent's
	// flattened field (possibly nil) into the flattened field of the prim at path.
	Resolve(local datasource.Container, parent datasource.DataSource, path domain.Path) datasource.DataSource
	// Identity is the flattened field of a prim without any opinion in its ancestry.
	Identity() datasource.DataSource
	// Inherited returns the locators descendants must treat as dirty after dirty changed
	// at an ancestor. It is empty when dirty does not touch the owned field.
	Inherited(dirty domain.LocatorSet) domain.LocatorSet
	// Shadows reports whether the local field hides an ancestor change under loc from
	// the prim's own descendants.
	Shadows(local datasource.Container, loc domain.Locator) bool
}

// ResolverProvider returns the resolvers enabled by a flatten configuration.
type ResolverProvider interface {
	Resolvers(cfg domain.FlattenConfig) []Resolver
}
