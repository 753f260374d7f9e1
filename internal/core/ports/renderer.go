package ports

import (
	"io"

	"go.trai.ch/strata/internal/core/scene"
)

// SceneRenderer writes flattened scenes and notifications in a stable text form.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type SceneRenderer interface {
	// RenderPrims writes prims in the given order.
	RenderPrims(w io.Writer, prims []scene.PrimSpec) error
	// RenderNotices writes recorded notifications in the given order.
	RenderNotices(w io.Writer, notices []scene.Notice) error
	// Digest hashes the rendered form of prims.
	Digest(prims []scene.PrimSpec) (uint64, error)
}
