package datasource

import "go.trai.ch/strata/internal/core/domain"

type overlayContainer struct {
	layers []Container
}

// Overlay stacks containers so that earlier layers win. When several layers hold a
// container under the same name, the result is itself an overlay of them.
// Nil layers are ignored; Overlay of nothing is nil.
func Overlay(layers ...Container) Container {
	kept := make([]Container, 0, len(layers))
	for _, l := range layers {
		if l != nil {
			kept = append(kept, l)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return &overlayContainer{layers: kept}
}

func (o *overlayContainer) Kind() Kind { return KindContainer }

func (o *overlayContainer) Names() []domain.Token {
	seen := make(map[domain.Token]struct{})
	var names []domain.Token
	for _, l := range o.layers {
		for _, n := range l.Names() {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			names = append(names, n)
		}
	}
	return names
}

func (o *overlayContainer) Get(name domain.Token) DataSource {
	var nested []Container
	for _, l := range o.layers {
		ds := l.Get(name)
		if ds == nil {
			continue
		}
		c, ok := AsContainer(ds)
		if !ok {
			if len(nested) == 0 {
				return ds
			}
			break
		}
		nested = append(nested, c)
	}
	if len(nested) == 0 {
		return nil
	}
	return Overlay(nested...)
}
