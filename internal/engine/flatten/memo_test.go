package flatten

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/strata/internal/core/datasource"
)

func TestMemo_ComputesOnce(t *testing.T) {
	var m memo
	var calls atomic.Int32
	compute := func() datasource.DataSource {
		calls.Add(1)
		return datasource.NewValue(42)
	}

	first := m.get(compute)
	second := m.get(compute)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, m.populated())
}

func TestMemo_NilIsAValue(t *testing.T) {
	var m memo
	var calls int
	compute := func() datasource.DataSource {
		calls++
		return nil
	}

	assert.Nil(t, m.get(compute))
	assert.Nil(t, m.get(compute))
	assert.Equal(t, 1, calls)
}

func TestMemo_Invalidate(t *testing.T) {
	var m memo
	assert.False(t, m.invalidate(), "empty cell")

	v1 := m.get(func() datasource.DataSource { return datasource.NewValue(1) })
	assert.True(t, m.invalidate())
	assert.False(t, m.populated())

	v2 := m.get(func() datasource.DataSource { return datasource.NewValue(2) })
	assert.NotSame(t, v1, v2)
	got, _ := datasource.Cast[int](v2)
	assert.Equal(t, 2, got)
}

func TestMemo_InvalidateDuringCompute(t *testing.T) {
	var m memo
	stale := m.get(func() datasource.DataSource {
		m.invalidate()
		return datasource.NewValue("stale")
	})
	assert.NotNil(t, stale, "the caller still gets its own result")
	assert.False(t, m.populated(), "a stale generation is never served")

	fresh := m.get(func() datasource.DataSource { return datasource.NewValue("fresh") })
	got, _ := datasource.Cast[string](fresh)
	assert.Equal(t, "fresh", got)
}

func TestMemo_ConcurrentReadersAgree(t *testing.T) {
	var m memo
	const readers = 16

	results := make([]datasource.DataSource, readers)
	var wg sync.WaitGroup
	for i := range readers {
		wg.Go(func() {
			results[i] = m.get(func() datasource.DataSource { return datasource.NewValue(i) })
		})
	}
	wg.Wait()

	published := m.get(func() datasource.DataSource { return nil })
	for _, r := range results {
		assert.NotNil(t, r)
	}
	assert.Same(t, published, m.get(func() datasource.DataSource { return nil }))
}
