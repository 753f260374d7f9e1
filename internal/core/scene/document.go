package scene

import (
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
)

// Document is a loaded scene description: the prims of the input scene, the flattening
// configuration and an optional list of edits to replay after the first pass.
type Document struct {
	// Source is the file the document was read from.
	Source  string
	Flatten domain.FlattenConfig
	Prims   []PrimSpec
	Edits   []Edit
}

// PrimSpec is a prim declared by a document. Declaration order is preserved.
type PrimSpec struct {
	Path domain.Path
	Prim Prim
}

// EditKind selects what an Edit does.
type EditKind uint8

const (
	// EditAdd adds or replaces a prim.
	EditAdd EditKind = iota + 1
	// EditRemove removes a prim and its subtree.
	EditRemove
	// EditDirty replaces fields of an existing prim and dirties them.
	EditDirty
)

func (k EditKind) String() string {
	switch k {
	case EditAdd:
		return "add"
	case EditRemove:
		return "remove"
	case EditDirty:
		return "dirty"
	}
	return "unknown"
}

// Edit is a single change applied to the input scene during replay.
type Edit struct {
	Kind EditKind
	Path domain.Path
	// Prim is the new prim for EditAdd. For EditDirty its Source holds the replacement
	// fields, overlaid on the existing data.
	Prim Prim
	// Locators lists what an EditDirty invalidates. When empty, the top-level names of
	// the replacement fields are used.
	Locators domain.LocatorSet
}

// DirtyLocators returns the locators an EditDirty invalidates.
func (e Edit) DirtyLocators() domain.LocatorSet {
	if !e.Locators.IsEmpty() || e.Prim.Source == nil {
		return e.Locators
	}
	var set domain.LocatorSet
	for _, name := range e.Prim.Source.Names() {
		set.Insert(domain.NewLocator(name))
	}
	return set
}

// Fields returns the replacement data for an EditDirty, never nil.
func (e Edit) Fields() datasource.Container {
	if e.Prim.Source == nil {
		return datasource.Empty
	}
	return e.Prim.Source
}
