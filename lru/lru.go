// Package lru implements the LRU eviction engine: a key→node map paired
// with one ordered recency list. Eviction always removes the tail.
//
// Engine is not safe for concurrent use; wrap it yourself with a mutex if
// you need that (the sharded wrappers for SLRU/LFU/GDSF in this module show
// the pattern). LRU has no sharded wrapper in this module — see spec §2.
package lru

import (
	"github.com/evictcache/evictcache/config"
	"github.com/evictcache/evictcache/internal/list"
)

// Entry is a (key, value) pair, returned by Put on eviction.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Engine is a single-threaded LRU cache of bounded capacity.
type Engine[K comparable, V any] struct {
	cfg config.LRUConfig
	m   map[K]*list.Node[K, V]
	l   *list.List[K, V]
}

// New constructs an Engine from cfg. Never fails on a valid config — config
// validity is enforced by config.NewLRU at construction time.
func New[K comparable, V any](cfg config.LRUConfig) *Engine[K, V] {
	return &Engine[K, V]{
		cfg: cfg,
		m:   make(map[K]*list.Node[K, V], cfg.Capacity()),
		l:   list.New[K, V](),
	}
}

// Put inserts or updates k→v. On hit, the value is replaced and the entry is
// moved to head; no eviction occurs and ok is false. On miss, a new node is
// inserted at head; if this pushes the engine over capacity, the tail entry
// is evicted and returned.
func (e *Engine[K, V]) Put(k K, v V) (evicted Entry[K, V], ok bool) {
	if n, exists := e.m[k]; exists {
		n.Value = v
		e.l.MoveToFront(n)
		return Entry[K, V]{}, false
	}

	n := e.l.PushFront(k, v)
	e.m[k] = n

	if e.l.Len() > e.cfg.Capacity() {
		tail := e.l.PopBack()
		delete(e.m, tail.Key)
		return Entry[K, V]{Key: tail.Key, Value: tail.Value}, true
	}
	return Entry[K, V]{}, false
}

// Get returns the value for k and promotes it to head. Reports a miss if k
// is absent.
func (e *Engine[K, V]) Get(k K) (v V, ok bool) {
	n, exists := e.m[k]
	if !exists {
		return v, false
	}
	e.l.MoveToFront(n)
	return n.Value, true
}

// Peek returns the value for k without affecting recency order.
func (e *Engine[K, V]) Peek(k K) (v V, ok bool) {
	n, exists := e.m[k]
	if !exists {
		return v, false
	}
	return n.Value, true
}

// Contains reports whether k is present. It never mutates ordering.
func (e *Engine[K, V]) Contains(k K) bool {
	_, ok := e.m[k]
	return ok
}

// Remove deletes k if present and returns its value.
func (e *Engine[K, V]) Remove(k K) (v V, ok bool) {
	n, exists := e.m[k]
	if !exists {
		return v, false
	}
	e.l.Remove(n)
	delete(e.m, k)
	return n.Value, true
}

// Len returns the number of resident entries.
func (e *Engine[K, V]) Len() int { return e.l.Len() }

// IsEmpty reports whether the engine holds no entries.
func (e *Engine[K, V]) IsEmpty() bool { return e.l.Len() == 0 }

// Clear removes every entry. Capacity is preserved.
func (e *Engine[K, V]) Clear() {
	e.m = make(map[K]*list.Node[K, V], e.cfg.Capacity())
	e.l = list.New[K, V]()
}

// Capacity returns the configured maximum entry count.
func (e *Engine[K, V]) Capacity() int { return e.cfg.Capacity() }

// Keys returns resident keys ordered most-recent-first. Intended for tests
// and diagnostics, not hot paths — it walks the whole list.
func (e *Engine[K, V]) Keys() []K {
	out := make([]K, 0, e.l.Len())
	e.l.Each(func(k K, _ V) { out = append(out, k) })
	return out
}
