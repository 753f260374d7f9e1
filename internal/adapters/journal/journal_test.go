package journal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/strata/internal/adapters/journal"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/scene"
)

func TestJournal_RecordsInOrder(t *testing.T) {
	a := domain.MustParsePath("/A")
	b := domain.MustParsePath("/A/B")
	xform := domain.NewLocatorSet(domain.MustParseLocator("xform"))

	j := journal.Factory{}.NewJournal()
	j.PrimsAdded(nil, []scene.AddedPrimEntry{{Path: a, Type: domain.NewToken("Xform")}, {Path: b}})
	j.PrimsDirtied(nil, []scene.DirtiedPrimEntry{{Path: a, Locators: xform}})
	j.PrimsRemoved(nil, []scene.RemovedPrimEntry{{Path: a}})
	j.PrimsDirtied(nil, nil)

	assert.Equal(t, []scene.Notice{
		{Batch: 1, Kind: scene.NoticeAdded, Path: a, Type: domain.NewToken("Xform")},
		{Batch: 1, Kind: scene.NoticeAdded, Path: b},
		{Batch: 2, Kind: scene.NoticeDirtied, Path: a, Locators: xform},
		{Batch: 3, Kind: scene.NoticeRemoved, Path: a},
	}, j.Notices())

	j.Reset()
	assert.Empty(t, j.Notices())

	j.PrimsRemoved(nil, []scene.RemovedPrimEntry{{Path: b}})
	assert.Equal(t, 1, j.Notices()[0].Batch)
}
