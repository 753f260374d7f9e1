package flatten

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/strata/internal/core/domain"
)

const stagingShards = 32

type stagingShard struct {
	mu      sync.Mutex
	entries map[domain.Path]*primSource
}

// staging holds sources created by readers for paths missing from the primary cache.
// It is safe for concurrent use without external locking.
type staging struct {
	shards [stagingShards]stagingShard
}

func newStaging() *staging {
	s := &staging{}
	for i := range s.shards {
		s.shards[i].entries = make(map[domain.Path]*primSource)
	}
	return s
}

func (s *staging) shard(path domain.Path) *stagingShard {
	return &s.shards[xxhash.Sum64String(path.String())%stagingShards]
}

func (s *staging) get(path domain.Path) (*primSource, bool) {
	sh := s.shard(path)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	src, ok := sh.entries[path]
	return src, ok
}

// insertOrFetch stores src unless path is already staged, and returns the staged source.
func (s *staging) insertOrFetch(path domain.Path, src *primSource) *primSource {
	sh := s.shard(path)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if existing, ok := sh.entries[path]; ok {
		return existing
	}
	sh.entries[path] = src
	return src
}

// drain empties the staging cache and hands every entry to fn.
func (s *staging) drain(fn func(domain.Path, *primSource)) {
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		entries := sh.entries
		if len(entries) > 0 {
			sh.entries = make(map[domain.Path]*primSource)
		}
		sh.mu.Unlock()

		for path, src := range entries {
			fn(path, src)
		}
	}
}

func (s *staging) len() int {
	n := 0
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		n += len(sh.entries)
		sh.mu.Unlock()
	}
	return n
}
