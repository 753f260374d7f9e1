package flatten

import (
	"slices"

	"go.trai.ch/strata/internal/core/domain"
)

type tableNode struct {
	// src is nil for intermediate paths that are not cached themselves.
	src      *primSource
	children []domain.Path
}

// table is the primary cache: a path tree so that the cached subtree below any path
// can be walked in path order. It is not safe for concurrent use; SceneIndex guards it.
type table struct {
	nodes map[domain.Path]*tableNode
	count int
}

func newTable() *table {
	return &table{nodes: make(map[domain.Path]*tableNode)}
}

func (t *table) get(path domain.Path) (*primSource, bool) {
	n, ok := t.nodes[path]
	if !ok || n.src == nil {
		return nil, false
	}
	return n.src, true
}

func (t *table) set(path domain.Path, src *primSource) {
	n := t.ensure(path)
	if n.src == nil {
		t.count++
	}
	n.src = src
}

func (t *table) ensure(path domain.Path) *tableNode {
	if n, ok := t.nodes[path]; ok {
		return n
	}
	n := &tableNode{}
	t.nodes[path] = n
	if parentPath := path.Parent(); !parentPath.IsEmpty() {
		parent := t.ensure(parentPath)
		at, _ := slices.BinarySearchFunc(parent.children, path, domain.Path.Compare)
		parent.children = slices.Insert(parent.children, at, path)
	}
	return n
}

// removeSubtree drops path and everything below it and returns the number of cached
// entries removed.
func (t *table) removeSubtree(path domain.Path) int {
	n, ok := t.nodes[path]
	if !ok {
		return 0
	}
	removed := t.drop(path, n)
	t.count -= removed

	parentPath := path.Parent()
	for !parentPath.IsEmpty() {
		parent := t.nodes[parentPath]
		parent.children = slices.DeleteFunc(parent.children, func(c domain.Path) bool { return c == path })
		if parent.src != nil || len(parent.children) > 0 {
			break
		}
		delete(t.nodes, parentPath)
		path, parentPath = parentPath, parentPath.Parent()
	}
	return removed
}

func (t *table) drop(path domain.Path, n *tableNode) int {
	removed := 0
	if n.src != nil {
		removed++
	}
	for _, child := range n.children {
		removed += t.drop(child, t.nodes[child])
	}
	delete(t.nodes, path)
	return removed
}

// walkDescendants visits the strict descendants of path depth-first in path order,
// threading a per-branch state from each node to its children. Intermediate paths
// without a cached entry are visited with a nil source. visit returns the state for
// the children and whether to descend into them.
func walkDescendants[S any](t *table, path domain.Path, state S, visit func(domain.Path, *primSource, S) (S, bool)) {
	n, ok := t.nodes[path]
	if !ok {
		return
	}
	for _, child := range n.children {
		walkNode(t, child, state, visit)
	}
}

func walkNode[S any](t *table, path domain.Path, state S, visit func(domain.Path, *primSource, S) (S, bool)) {
	n := t.nodes[path]
	next, descend := visit(path, n.src, state)
	if !descend {
		return
	}
	for _, child := range n.children {
		walkNode(t, child, next, visit)
	}
}

func (t *table) len() int {
	return t.count
}

// unset drops the cached entry at path but keeps its cached descendants.
func (t *table) unset(path domain.Path) {
	n, ok := t.nodes[path]
	if !ok || n.src == nil {
		return
	}
	n.src = nil
	t.count--
	if len(n.children) == 0 {
		t.removeSubtree(path)
	}
}
