package scene

import (
	"slices"
	"sync"

	"go.trai.ch/strata/internal/core/domain"
)

// Notifier keeps the observer list of an Index and fans notifications out to it.
// The zero Notifier is ready to use.
type Notifier struct {
	mu        sync.RWMutex
	observers []Observer
}

// AddObserver subscribes o. Adding the same observer twice is a no-op.
func (n *Notifier) AddObserver(o Observer) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if slices.Contains(n.observers, o) {
		return
	}
	n.observers = append(n.observers, o)
}

// RemoveObserver unsubscribes o.
func (n *Notifier) RemoveObserver(o Observer) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.observers = slices.DeleteFunc(n.observers, func(existing Observer) bool {
		return existing == o
	})
}

// snapshot copies the observer list so callbacks run without holding the lock.
func (n *Notifier) snapshot() []Observer {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return slices.Clone(n.observers)
}

// HasObservers reports whether anyone is listening.
func (n *Notifier) HasObservers() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.observers) > 0
}

// SendPrimsAdded forwards entries to every observer.
func (n *Notifier) SendPrimsAdded(sender Index, entries []AddedPrimEntry) {
	if len(entries) == 0 {
		return
	}
	for _, o := range n.snapshot() {
		o.PrimsAdded(sender, entries)
	}
}

// SendPrimsRemoved forwards entries to every observer.
func (n *Notifier) SendPrimsRemoved(sender Index, entries []RemovedPrimEntry) {
	if len(entries) == 0 {
		return
	}
	for _, o := range n.snapshot() {
		o.PrimsRemoved(sender, entries)
	}
}

// SendPrimsDirtied forwards entries to every observer.
func (n *Notifier) SendPrimsDirtied(sender Index, entries []DirtiedPrimEntry) {
	if len(entries) == 0 {
		return
	}
	for _, o := range n.snapshot() {
		o.PrimsDirtied(sender, entries)
	}
}

// MergeDirtied deduplicates entries by path, unioning the locator sets.
// Paths keep the order of their first occurrence.
func MergeDirtied(entries []DirtiedPrimEntry) []DirtiedPrimEntry {
	index := make(map[domain.Path]int, len(entries))
	merged := make([]DirtiedPrimEntry, 0, len(entries))
	for _, e := range entries {
		if i, ok := index[e.Path]; ok {
			merged[i].Locators = merged[i].Locators.Union(e.Locators)
			continue
		}
		index[e.Path] = len(merged)
		merged = append(merged, e)
	}
	return merged
}
