// Package datasource models a prim's data as a lazily evaluated tree of named
// containers and typed leaves.
package datasource

import (
	"reflect"

	"github.com/go-gl/mathgl/mgl64"
	"go.trai.ch/strata/internal/core/domain"
)

// Kind tags the variant of a DataSource.
type Kind uint8

const (
	// KindContainer is a named collection of child data sources.
	KindContainer Kind = iota + 1
	// KindScalar is a single bool, number, token, path or string.
	KindScalar
	// KindArray is a slice-valued leaf.
	KindArray
	// KindVector is a fixed-size vector leaf.
	KindVector
	// KindMatrix is a matrix leaf.
	KindMatrix
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindScalar:
		return "scalar"
	case KindArray:
		return "array"
	case KindVector:
		return "vector"
	case KindMatrix:
		return "matrix"
	}
	return "unknown"
}

// DataSource is any node of a prim data tree.
type DataSource interface {
	Kind() Kind
}

// Container is a DataSource with named children. Get returns nil for unknown names.
// Implementations must be safe for concurrent use.
type Container interface {
	DataSource
	Names() []domain.Token
	Get(name domain.Token) DataSource
}

// Value is a leaf DataSource.
type Value interface {
	DataSource
	Value() any
}

// Typed is a leaf whose value has static type T.
type Typed[T any] interface {
	Value
	TypedValue() T
}

type retainedValue[T any] struct {
	v    T
	kind Kind
}

// NewValue returns an immutable leaf holding v. The kind is derived from T:
// mgl64 matrices are KindMatrix, mgl64 vectors KindVector, slices KindArray and
// everything else KindScalar.
func NewValue[T any](v T) Typed[T] {
	return &retainedValue[T]{v: v, kind: kindOf[T]()}
}

func kindOf[T any]() Kind {
	var zero T
	switch any(zero).(type) {
	case mgl64.Mat2, mgl64.Mat3, mgl64.Mat4:
		return KindMatrix
	case mgl64.Vec2, mgl64.Vec3, mgl64.Vec4:
		return KindVector
	}
	if reflect.TypeFor[T]().Kind() == reflect.Slice {
		return KindArray
	}
	return KindScalar
}

func (r *retainedValue[T]) Kind() Kind { return r.kind }
func (r *retainedValue[T]) Value() any { return r.v }
func (r *retainedValue[T]) TypedValue() T { return r.v }

// Cast returns the typed value of ds when ds is a Typed[T] leaf.
func Cast[T any](ds DataSource) (T, bool) {
	var zero T
	if ds == nil {
		return zero, false
	}
	typed, ok := ds.(Typed[T])
	if !ok {
		return zero, false
	}
	return typed.TypedValue(), true
}

// AsContainer returns ds as a Container when it is one.
func AsContainer(ds DataSource) (Container, bool) {
	if ds == nil {
		return nil, false
	}
	c, ok := ds.(Container)
	return c, ok
}

// GetTyped fetches name from c and casts it to T. A nil container yields false.
func GetTyped[T any](c Container, name domain.Token) (T, bool) {
	if c == nil {
		var zero T
		return zero, false
	}
	return Cast[T](c.Get(name))
}

// GetContainer fetches name from c as a container.
func GetContainer(c Container, name domain.Token) Container {
	if c == nil {
		return nil
	}
	child, _ := AsContainer(c.Get(name))
	return child
}

// GetAt resolves loc against c. The universal locator returns c itself.
func GetAt(c Container, loc domain.Locator) DataSource {
	if c == nil {
		return nil
	}
	var cur DataSource = c
	for _, elem := range loc.Elements() {
		container, ok := AsContainer(cur)
		if !ok {
			return nil
		}
		cur = container.Get(elem)
		if cur == nil {
			return nil
		}
	}
	return cur
}
