// Package journal records scene index notifications.
package journal

import (
	"slices"
	"sync"

	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/strata/internal/core/scene"
)

// Journal is a ports.Journal that keeps every observed entry in memory.
type Journal struct {
	mu      sync.Mutex
	batch   int
	notices []scene.Notice
}

var _ ports.Journal = (*Journal)(nil)

// New creates an empty Journal.
func New() *Journal {
	return &Journal{}
}

// PrimsAdded implements scene.Observer.
func (j *Journal) PrimsAdded(_ scene.Index, entries []scene.AddedPrimEntry) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.batch++
	for _, e := range entries {
		j.notices = append(j.notices, scene.Notice{Batch: j.batch, Kind: scene.NoticeAdded, Path: e.Path, Type: e.Type})
	}
}

// PrimsRemoved implements scene.Observer.
func (j *Journal) PrimsRemoved(_ scene.Index, entries []scene.RemovedPrimEntry) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.batch++
	for _, e := range entries {
		j.notices = append(j.notices, scene.Notice{Batch: j.batch, Kind: scene.NoticeRemoved, Path: e.Path})
	}
}

// PrimsDirtied implements scene.Observer.
func (j *Journal) PrimsDirtied(_ scene.Index, entries []scene.DirtiedPrimEntry) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.batch++
	for _, e := range entries {
		j.notices = append(j.notices, scene.Notice{Batch: j.batch, Kind: scene.NoticeDirtied, Path: e.Path, Locators: e.Locators})
	}
}

// Notices returns a copy of the recorded entries.
func (j *Journal) Notices() []scene.Notice {
	j.mu.Lock()
	defer j.mu.Unlock()
	return slices.Clone(j.notices)
}

// Reset drops all recorded entries and restarts batch numbering.
func (j *Journal) Reset() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.notices = nil
	j.batch = 0
}

// Factory creates empty journals.
type Factory struct{}

// NewJournal implements ports.JournalFactory.
func (Factory) NewJournal() ports.Journal {
	return New()
}
