package domain

import (
	"iter"
	"slices"
	"strings"
)

// LocatorSet is a normalised, sorted set of locators: no member is a descendant of
// another member. The zero LocatorSet is empty and ready to use.
type LocatorSet struct {
	locs []Locator
}

// NewLocatorSet builds a set from the given locators.
func NewLocatorSet(locs ...Locator) LocatorSet {
	var s LocatorSet
	for _, l := range locs {
		s.Insert(l)
	}
	return s
}

// UniversalLocatorSet covers every field.
func UniversalLocatorSet() LocatorSet {
	return LocatorSet{locs: []Locator{UniversalLocator}}
}

// Insert adds l. A locator already covered by a member is dropped; members covered by l
// are replaced by it. Insert never mutates a backing array shared with a copy of the set.
func (s *LocatorSet) Insert(l Locator) {
	for _, existing := range s.locs {
		if l.HasPrefix(existing) {
			return
		}
	}
	next := make([]Locator, 0, len(s.locs)+1)
	for _, existing := range s.locs {
		if !existing.HasPrefix(l) {
			next = append(next, existing)
		}
	}
	i, _ := slices.BinarySearchFunc(next, l, Locator.Compare)
	s.locs = slices.Insert(next, i, l)
}

// Union returns a new set containing the members of s and other.
func (s LocatorSet) Union(other LocatorSet) LocatorSet {
	res := LocatorSet{locs: slices.Clone(s.locs)}
	for _, l := range other.locs {
		res.Insert(l)
	}
	return res
}

// IsEmpty reports whether the set has no members.
func (s LocatorSet) IsEmpty() bool {
	return len(s.locs) == 0
}

// Len returns the number of members.
func (s LocatorSet) Len() int {
	return len(s.locs)
}

// Intersects reports whether any member intersects l.
func (s LocatorSet) Intersects(l Locator) bool {
	for _, m := range s.locs {
		if m.Intersects(l) {
			return true
		}
	}
	return false
}

// IntersectsSet reports whether any member of s intersects any member of other.
func (s LocatorSet) IntersectsSet(other LocatorSet) bool {
	for _, l := range other.locs {
		if s.Intersects(l) {
			return true
		}
	}
	return false
}

// Contains reports whether l is covered by the set, i.e. some member is a prefix of l.
func (s LocatorSet) Contains(l Locator) bool {
	for _, m := range s.locs {
		if l.HasPrefix(m) {
			return true
		}
	}
	return false
}

// All yields the members in order.
func (s LocatorSet) All() iter.Seq[Locator] {
	return slices.Values(s.locs)
}

// Slice returns a copy of the members.
func (s LocatorSet) Slice() []Locator {
	return slices.Clone(s.locs)
}

// Equal reports whether both sets have the same members.
func (s LocatorSet) Equal(other LocatorSet) bool {
	return slices.Equal(s.locs, other.locs)
}

// String renders the set as "{a, b/c}". The universal locator renders as "<all>".
func (s LocatorSet) String() string {
	parts := make([]string, len(s.locs))
	for i, l := range s.locs {
		if l.IsEmpty() {
			parts[i] = "<all>"
			continue
		}
		parts[i] = l.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
