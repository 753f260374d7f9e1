package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/scene"
)

type countingObserver struct {
	added, removed, dirtied int
}

func (c *countingObserver) PrimsAdded(_ scene.Index, e []scene.AddedPrimEntry) { c.added += len(e) }
func (c *countingObserver) PrimsRemoved(_ scene.Index, e []scene.RemovedPrimEntry) {
	c.removed += len(e)
}
func (c *countingObserver) PrimsDirtied(_ scene.Index, e []scene.DirtiedPrimEntry) {
	c.dirtied += len(e)
}

func TestNotifier_FanOut(t *testing.T) {
	var n scene.Notifier
	a, b := &countingObserver{}, &countingObserver{}

	n.AddObserver(a)
	n.AddObserver(a)
	n.AddObserver(b)

	n.SendPrimsAdded(nil, []scene.AddedPrimEntry{{Path: domain.MustParsePath("/A")}})
	n.SendPrimsRemoved(nil, []scene.RemovedPrimEntry{{Path: domain.MustParsePath("/A")}})
	n.SendPrimsDirtied(nil, nil)

	assert.Equal(t, 1, a.added)
	assert.Equal(t, 1, b.removed)
	assert.Equal(t, 0, a.dirtied)

	n.RemoveObserver(a)
	n.SendPrimsAdded(nil, []scene.AddedPrimEntry{{Path: domain.MustParsePath("/B")}})
	assert.Equal(t, 1, a.added)
	assert.Equal(t, 2, b.added)
	assert.True(t, n.HasObservers())
}

func TestMergeDirtied(t *testing.T) {
	a := domain.MustParsePath("/A")
	b := domain.MustParsePath("/A/B")

	merged := scene.MergeDirtied([]scene.DirtiedPrimEntry{
		{Path: a, Locators: domain.NewLocatorSet(domain.MustParseLocator("xform"))},
		{Path: b, Locators: domain.NewLocatorSet(domain.MustParseLocator("visibility"))},
		{Path: a, Locators: domain.NewLocatorSet(domain.MustParseLocator("purpose"))},
	})

	assert.Len(t, merged, 2)
	assert.Equal(t, a, merged[0].Path)
	assert.Equal(t, "{purpose, xform}", merged[0].Locators.String())
	assert.Equal(t, b, merged[1].Path)
}
