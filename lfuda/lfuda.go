// Package lfuda implements the LFUDA eviction engine: LFU with a
// monotonically non-decreasing aging floor L. New entries enter at
// frequency L+1 rather than 1; re-accessed entries jump to L+1 if they had
// fallen below it. On eviction, L is raised to the evicted entry's
// frequency. This keeps a once-hot entry from dominating indefinitely while
// still favoring newly-popular keys over stale ones — grounded on spec §4.4,
// reusing internal/freq the same way the lfu package does.
package lfuda

import (
	"github.com/evictcache/evictcache/config"
	"github.com/evictcache/evictcache/internal/freq"
	"github.com/evictcache/evictcache/internal/list"
)

// Entry is a (key, value) pair, returned by Put on eviction.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

type record[K comparable, V any] struct {
	node *list.Node[K, V]
	freq int
}

// Engine is a single-threaded LFUDA cache of bounded capacity.
type Engine[K comparable, V any] struct {
	cfg   config.LFUDAConfig
	m     map[K]record[K, V]
	idx   *freq.Index[K, V]
	floor int
}

// New constructs an Engine from cfg. The aging floor starts at 0.
func New[K comparable, V any](cfg config.LFUDAConfig) *Engine[K, V] {
	return &Engine[K, V]{
		cfg: cfg,
		m:   make(map[K]record[K, V], cfg.Capacity()),
		idx: freq.New[K, V](),
	}
}

// Put inserts or updates k→v.
//
// On miss, the new entry enters at frequency floor+1; if this pushes the
// engine over capacity, the minimum-frequency bucket's tail is evicted and
// the floor is raised to that evicted entry's frequency.
//
// On hit, the value is replaced and the entry's effective frequency becomes
// max(current, floor)+1.
func (e *Engine[K, V]) Put(k K, v V) (evicted Entry[K, V], ok bool) {
	if rec, exists := e.m[k]; exists {
		rec.node.Value = v
		e.bump(k, rec)
		return Entry[K, V]{}, false
	}

	newFreq := e.floor + 1
	n := e.idx.InsertAt(newFreq, k, v)
	e.m[k] = record[K, V]{node: n, freq: newFreq}

	if len(e.m) > e.cfg.Capacity() {
		ek, ev, f, _ := e.idx.EvictMin()
		delete(e.m, ek)
		if f > e.floor {
			e.floor = f
		}
		return Entry[K, V]{Key: ek, Value: ev}, true
	}
	return Entry[K, V]{}, false
}

// Get returns the value for k and applies the same frequency bump as a hit-Put.
func (e *Engine[K, V]) Get(k K) (v V, ok bool) {
	rec, exists := e.m[k]
	if !exists {
		return v, false
	}
	value := rec.node.Value
	e.bump(k, rec)
	return value, true
}

func (e *Engine[K, V]) bump(k K, rec record[K, V]) {
	current := rec.freq
	if e.floor > current {
		current = e.floor
	}
	newFreq := current + 1
	nn := e.idx.Promote(rec.node, rec.freq, newFreq)
	e.m[k] = record[K, V]{node: nn, freq: newFreq}
}

// Peek returns the value for k without changing its frequency.
func (e *Engine[K, V]) Peek(k K) (v V, ok bool) {
	rec, exists := e.m[k]
	if !exists {
		return v, false
	}
	return rec.node.Value, true
}

// Contains reports whether k is present. It never mutates frequency.
func (e *Engine[K, V]) Contains(k K) bool {
	_, ok := e.m[k]
	return ok
}

// Remove deletes k if present and returns its value. Removal does not
// affect the aging floor (only eviction does, per spec §4.4).
func (e *Engine[K, V]) Remove(k K) (v V, ok bool) {
	rec, exists := e.m[k]
	if !exists {
		return v, false
	}
	e.idx.RemoveAt(rec.node, rec.freq)
	delete(e.m, k)
	return rec.node.Value, true
}

// Len returns the number of resident entries.
func (e *Engine[K, V]) Len() int { return len(e.m) }

// IsEmpty reports whether the engine holds no entries.
func (e *Engine[K, V]) IsEmpty() bool { return len(e.m) == 0 }

// Clear removes every entry and resets the aging floor to 0. Capacity is preserved.
func (e *Engine[K, V]) Clear() {
	e.m = make(map[K]record[K, V], e.cfg.Capacity())
	e.idx = freq.New[K, V]()
	e.floor = 0
}

// Capacity returns the configured maximum entry count.
func (e *Engine[K, V]) Capacity() int { return e.cfg.Capacity() }

// Frequency returns the current access frequency for k, if present.
func (e *Engine[K, V]) Frequency(k K) (int, bool) {
	rec, exists := e.m[k]
	if !exists {
		return 0, false
	}
	return rec.freq, true
}

// Floor returns the current aging floor L.
func (e *Engine[K, V]) Floor() int { return e.floor }
