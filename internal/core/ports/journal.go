package ports

import "go.trai.ch/strata/internal/core/scene"

// Journal records the notifications it observes.
type Journal interface {
	scene.Observer
	// Notices returns the recorded entries in arrival order.
	Notices() []scene.Notice
	// Reset drops everything recorded so far.
	Reset()
}

// JournalFactory creates empty journals.
type JournalFactory interface {
	NewJournal() Journal
}
