// Package cache provides a bounded memoization store for projection
// results. The engine is pure, so identical requests always produce
// identical results and memoization is sound.
package cache

import (
	"encoding/json"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/okian/dyno/internal/domain/projection"
)

// node is one entry in the eviction list.
type node struct {
	key  string
	next *node
}

// Store is a bounded in-memory result cache with LIFO eviction: under
// churn the oldest stable entries (the popular baseline builds) survive.
// Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	results map[string]projection.Result
	nodes   map[string]*node
	head    *node
	maxSize int
}

// New creates a Store holding at most maxSize results. A non-positive
// size disables caching entirely.
func New(opts ...Option) *Store {
	s := &Store{maxSize: 10_000}
	for _, opt := range opts {
		opt(s)
	}
	if s.maxSize > 0 {
		s.results = make(map[string]projection.Result)
		s.nodes = make(map[string]*node)
	}
	return s
}

// Fingerprint derives a stable cache key from a request plus the model
// name. Request structs marshal with fixed field order, so equal requests
// always fingerprint identically.
func Fingerprint(model string, req projection.Request) (string, bool) {
	raw, err := json.Marshal(req)
	if err != nil {
		return "", false
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(model))
	_, _ = h.Write(raw)
	return strconv.FormatUint(h.Sum64(), 16), true
}

// Get returns the cached result for key, if present.
func (s *Store) Get(key string) (projection.Result, bool) {
	if s.maxSize <= 0 {
		return projection.Result{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.results[key]
	return r, ok
}

// Put stores a result, evicting the most recently added entry when full.
func (s *Store) Put(key string, r projection.Result) {
	if s.maxSize <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.results[key]; exists {
		s.results[key] = r
		return
	}
	if len(s.results) >= s.maxSize {
		s.evict()
	}
	n := &node{key: key, next: s.head}
	s.head = n
	s.nodes[key] = n
	s.results[key] = r
}

// Size returns the number of cached results.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

// evict removes the head (most recently added) entry. Caller holds the
// write lock.
func (s *Store) evict() {
	if s.head == nil {
		return
	}
	victim := s.head
	s.head = victim.next
	delete(s.results, victim.key)
	delete(s.nodes, victim.key)
}
