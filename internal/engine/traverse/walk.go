// Package traverse walks a scene index in parallel, the way a render delegate
// populates itself from a flattened scene.
package traverse

import (
	"context"
	"runtime"
	"slices"
	"sync"

	"go.trai.ch/strata/internal/core/datasource"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/scene"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Walk visits root and all of its descendants, evaluating every top-level field of
// every defined prim, and returns the defined prims sorted by path.
// parallelism bounds the number of concurrent visits; values below 1 use NumCPU.
func Walk(ctx context.Context, idx scene.Index, root domain.Path, parallelism int) ([]scene.PrimSpec, error) {
	if parallelism < 1 {
		parallelism = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	w := &walker{ctx: ctx, idx: idx, group: g}
	err := w.spawn(root)
	if waitErr := g.Wait(); err == nil {
		err = waitErr
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTraversalFailed.Error()), "root", root.String())
	}

	slices.SortFunc(w.prims, func(a, b scene.PrimSpec) int {
		return a.Path.Compare(b.Path)
	})
	return w.prims, nil
}

type walker struct {
	ctx   context.Context
	idx   scene.Index
	group *errgroup.Group

	mu    sync.Mutex
	prims []scene.PrimSpec
}

// spawn visits path on a new goroutine when the limit allows it and inline otherwise,
// so that a saturated group can never deadlock on its own children.
func (w *walker) spawn(path domain.Path) error {
	if w.group.TryGo(func() error { return w.visit(path) }) {
		return nil
	}
	return w.visit(path)
}

func (w *walker) visit(path domain.Path) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}

	if prim := w.idx.GetPrim(path); prim.IsDefined() {
		materialize(prim.Source)
		w.mu.Lock()
		w.prims = append(w.prims, scene.PrimSpec{Path: path, Prim: prim})
		w.mu.Unlock()
	}

	for _, child := range w.idx.GetChildPrimPaths(path) {
		if err := w.spawn(child); err != nil {
			return err
		}
	}
	return nil
}

// materialize evaluates every top-level field of c.
func materialize(c datasource.Container) {
	for _, name := range c.Names() {
		_ = c.Get(name)
	}
}

// Paths returns the paths of prims in order.
func Paths(prims []scene.PrimSpec) []domain.Path {
	out := make([]domain.Path, len(prims))
	for i, p := range prims {
		out[i] = p.Path
	}
	return out
}
