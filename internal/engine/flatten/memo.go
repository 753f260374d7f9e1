package flatten

import (
	"sync/atomic"

	"go.trai.ch/strata/internal/core/datasource"
)

type memoValue struct {
	ds  datasource.DataSource
	gen uint64
}

// memo is a lock-free publish-once cell. Concurrent misses may compute the value
// redundantly; the first completed computation of a generation is published and
// returned to every later reader. invalidate starts a new generation so a
// computation racing with it can never publish a value readers would accept.
type memo struct {
	cur atomic.Pointer[memoValue]
	gen atomic.Uint64
}

func (m *memo) get(compute func() datasource.DataSource) datasource.DataSource {
	gen := m.gen.Load()
	old := m.cur.Load()
	if old != nil && old.gen == gen {
		return old.ds
	}

	next := &memoValue{ds: compute(), gen: gen}
	if m.cur.CompareAndSwap(old, next) {
		return next.ds
	}
	if won := m.cur.Load(); won != nil && won.gen == gen {
		return won.ds
	}
	return next.ds
}

// invalidate clears the cell and reports whether it held a value.
func (m *memo) invalidate() bool {
	m.gen.Add(1)
	return m.cur.Swap(nil) != nil
}

func (m *memo) populated() bool {
	v := m.cur.Load()
	return v != nil && v.gen == m.gen.Load()
}
