package domain

import (
	"strings"
	"unique"

	"go.trai.ch/zerr"
)

const locatorSeparator = "/"

// Locator addresses a field inside a prim's data source tree, for example
// "xform" or "primvars/displayColor". The zero Locator is the universal locator:
// it is a prefix of every other locator.
type Locator struct {
	h unique.Handle[string]
}

// UniversalLocator is the empty locator that covers every field of a prim.
var UniversalLocator = Locator{}

// NewLocator builds a locator from its elements.
func NewLocator(elems ...Token) Locator {
	if len(elems) == 0 {
		return Locator{}
	}
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = e.String()
	}
	return Locator{h: unique.Make(strings.Join(parts, locatorSeparator))}
}

// ParseLocator parses a slash-separated locator. The empty string is the universal locator.
func ParseLocator(s string) (Locator, error) {
	if s == "" {
		return Locator{}, nil
	}
	for _, elem := range strings.Split(s, locatorSeparator) {
		if elem == "" {
			return Locator{}, zerr.With(ErrInvalidLocator, "locator", s)
		}
	}
	return Locator{h: unique.Make(s)}, nil
}

// MustParseLocator is ParseLocator for literals. It panics on invalid input.
func MustParseLocator(s string) Locator {
	l, err := ParseLocator(s)
	if err != nil {
		panic(err)
	}
	return l
}

// String returns the slash-separated form.
func (l Locator) String() string {
	if l.IsEmpty() {
		return ""
	}
	return l.h.Value()
}

// IsEmpty reports whether l is the universal locator.
func (l Locator) IsEmpty() bool {
	var zero unique.Handle[string]
	return l.h == zero
}

// Elements returns the tokens making up the locator.
func (l Locator) Elements() []Token {
	if l.IsEmpty() {
		return nil
	}
	return Tokens(strings.Split(l.h.Value(), locatorSeparator)...)
}

// Len returns the number of elements.
func (l Locator) Len() int {
	if l.IsEmpty() {
		return 0
	}
	return strings.Count(l.h.Value(), locatorSeparator) + 1
}

// First returns the first element, or the empty token for the universal locator.
func (l Locator) First() Token {
	if l.IsEmpty() {
		return Token{}
	}
	s := l.h.Value()
	if i := strings.Index(s, locatorSeparator); i >= 0 {
		return NewToken(s[:i])
	}
	return NewToken(s)
}

// Append returns l extended with elems.
func (l Locator) Append(elems ...Token) Locator {
	if len(elems) == 0 {
		return l
	}
	tail := NewLocator(elems...)
	if l.IsEmpty() {
		return tail
	}
	return Locator{h: unique.Make(l.h.Value() + locatorSeparator + tail.String())}
}

// Truncate keeps at most n leading elements.
func (l Locator) Truncate(n int) Locator {
	if n <= 0 {
		return Locator{}
	}
	elems := l.Elements()
	if n >= len(elems) {
		return l
	}
	return NewLocator(elems[:n]...)
}

// HasPrefix reports whether prefix equals l or is one of its ancestors.
func (l Locator) HasPrefix(prefix Locator) bool {
	if prefix.IsEmpty() || l == prefix {
		return true
	}
	if l.IsEmpty() {
		return false
	}
	return strings.HasPrefix(l.h.Value(), prefix.h.Value()+locatorSeparator)
}

// Intersects reports whether either locator is a prefix of the other.
func (l Locator) Intersects(other Locator) bool {
	return l.HasPrefix(other) || other.HasPrefix(l)
}

// Compare orders locators element by element. It returns -1, 0 or +1.
func (l Locator) Compare(other Locator) int {
	return compareSeparated(l.String(), other.String())
}
