package ports

import (
	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/scene"
)

// Stage is a mutable input scene. Every mutation notifies the stage's observers.
type Stage interface {
	scene.Index
	// AddPrims adds or replaces prims, creating missing ancestors implicitly.
	AddPrims(specs []scene.PrimSpec) error
	// RemovePrims removes each path together with its subtree.
	RemovePrims(paths []domain.Path)
	// DirtyPrims announces changes to existing prims.
	DirtyPrims(entries []scene.DirtiedPrimEntry)
	// SetSource swaps the data of an existing prim without notifying.
	SetSource(path domain.Path, source datasource.Container) error
}

// StageFactory creates empty stages.
type StageFactory interface {
	NewStage() Stage
}
