package domain

import (
	"iter"
	"strings"
	"unique"

	"go.trai.ch/zerr"
)

const pathSeparator = "/"

// Path is an immutable, absolute, slash-delimited prim path such as "/World/Geom".
// The zero Path is the empty path; AbsoluteRootPath is "/".
type Path struct {
	h unique.Handle[string]
}

// AbsoluteRootPath is the pseudo-root every prim path descends from.
var AbsoluteRootPath = Path{h: unique.Make(pathSeparator)}

// ParsePath validates s and returns the corresponding Path.
// Element names follow identifier rules: a letter or underscore followed by letters,
// digits or underscores.
func ParsePath(s string) (Path, error) {
	if s == pathSeparator {
		return AbsoluteRootPath, nil
	}
	if !strings.HasPrefix(s, pathSeparator) {
		return Path{}, zerr.With(ErrInvalidPath, "path", s)
	}
	for _, elem := range strings.Split(s[1:], pathSeparator) {
		if !isIdentifier(elem) {
			return Path{}, zerr.With(zerr.With(ErrInvalidPath, "path", s), "element", elem)
		}
	}
	return Path{h: unique.Make(s)}, nil
}

// MustParsePath is ParsePath for literals. It panics on invalid input.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// String returns the textual form of the path.
func (p Path) String() string {
	if p.IsEmpty() {
		return ""
	}
	return p.h.Value()
}

// IsEmpty reports whether p is the zero Path.
func (p Path) IsEmpty() bool {
	var zero unique.Handle[string]
	return p.h == zero
}

// IsRoot reports whether p is the absolute root path.
func (p Path) IsRoot() bool {
	return p == AbsoluteRootPath
}

// Parent returns the parent path. The parent of the root (and of the empty path) is empty.
func (p Path) Parent() Path {
	if p.IsEmpty() || p.IsRoot() {
		return Path{}
	}
	s := p.h.Value()
	i := strings.LastIndex(s, pathSeparator)
	if i == 0 {
		return AbsoluteRootPath
	}
	return Path{h: unique.Make(s[:i])}
}

// Name returns the last element of the path, or the empty token for the root.
func (p Path) Name() Token {
	if p.IsEmpty() || p.IsRoot() {
		return Token{}
	}
	s := p.h.Value()
	return NewToken(s[strings.LastIndex(s, pathSeparator)+1:])
}

// Depth returns the number of elements in the path. The root has depth 0.
func (p Path) Depth() int {
	if p.IsEmpty() || p.IsRoot() {
		return 0
	}
	return strings.Count(p.h.Value(), pathSeparator)
}

// AppendChild returns the path of the child called name.
func (p Path) AppendChild(name Token) (Path, error) {
	if p.IsEmpty() || !isIdentifier(name.String()) {
		return Path{}, zerr.With(zerr.With(ErrInvalidPath, "path", p.String()), "child", name.String())
	}
	if p.IsRoot() {
		return Path{h: unique.Make(pathSeparator + name.String())}, nil
	}
	return Path{h: unique.Make(p.h.Value() + pathSeparator + name.String())}, nil
}

// HasPrefix reports whether prefix is p itself or one of its ancestors.
func (p Path) HasPrefix(prefix Path) bool {
	if p.IsEmpty() || prefix.IsEmpty() {
		return false
	}
	if prefix.IsRoot() || p == prefix {
		return true
	}
	return strings.HasPrefix(p.h.Value(), prefix.h.Value()+pathSeparator)
}

// Ancestors yields the strict ancestors of p from the nearest parent up to the root.
func (p Path) Ancestors() iter.Seq[Path] {
	return func(yield func(Path) bool) {
		for a := p.Parent(); !a.IsEmpty(); a = a.Parent() {
			if !yield(a) {
				return
			}
		}
	}
}

// Compare orders paths element by element, so a parent sorts before its descendants
// and siblings sort by name. It returns -1, 0 or +1.
func (p Path) Compare(other Path) int {
	return compareSeparated(p.String(), other.String())
}

// compareSeparated compares two separator-delimited strings treating the separator
// as lower than every other byte.
func compareSeparated(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		ca, cb := a[i], b[i]
		if ca == cb {
			continue
		}
		if ca == '/' {
			return -1
		}
		if cb == '/' {
			return 1
		}
		if ca < cb {
			return -1
		}
		return 1
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*p = Path{}
		return nil
	}
	parsed, err := ParsePath(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
