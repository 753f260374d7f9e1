package datasource

import (
	"slices"

	"go.trai.ch/strata/internal/core/domain"
)

// Field is a name/value pair used to build retained containers.
type Field struct {
	Name  domain.Token
	Value DataSource
}

// F is shorthand for building a Field.
func F(name string, value DataSource) Field {
	return Field{Name: domain.NewToken(name), Value: value}
}

type retainedContainer struct {
	names  []domain.Token
	values map[domain.Token]DataSource
}

// Empty is a shared container without children.
var Empty Container = &retainedContainer{values: map[domain.Token]DataSource{}}

// NewContainer returns an immutable container. Fields with a nil value are skipped and
// later fields replace earlier ones with the same name. Names keep insertion order.
func NewContainer(fields ...Field) Container {
	c := &retainedContainer{values: make(map[domain.Token]DataSource, len(fields))}
	for _, f := range fields {
		if f.Value == nil {
			continue
		}
		if _, exists := c.values[f.Name]; !exists {
			c.names = append(c.names, f.Name)
		}
		c.values[f.Name] = f.Value
	}
	return c
}

// BuildContainer zips names and values into a container.
func BuildContainer(names []domain.Token, values []DataSource) Container {
	fields := make([]Field, 0, len(names))
	for i, name := range names {
		if i < len(values) {
			fields = append(fields, Field{Name: name, Value: values[i]})
		}
	}
	return NewContainer(fields...)
}

// FromMap builds a container whose names are sorted lexically.
func FromMap(m map[domain.Token]DataSource) Container {
	names := make([]domain.Token, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b domain.Token) int {
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		}
		return 0
	})
	fields := make([]Field, len(names))
	for i, name := range names {
		fields[i] = Field{Name: name, Value: m[name]}
	}
	return NewContainer(fields...)
}

func (c *retainedContainer) Kind() Kind { return KindContainer }

func (c *retainedContainer) Names() []domain.Token {
	return slices.Clone(c.names)
}

func (c *retainedContainer) Get(name domain.Token) DataSource {
	return c.values[name]
}
