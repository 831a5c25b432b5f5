// Package lfu implements the LFU eviction engine: a key→node map paired
// with a frequency bucket index (internal/freq). Eviction always removes
// the least-recently-used entry at the minimum frequency.
package lfu

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

// Engine is a single-threaded LFU cache of bounded capacity.
type Engine[K comparable, V any] struct {
	cfg config.LFUConfig
	m   map[K]record[K, V]
	idx *freq.Index[K, V]
}

// New constructs an Engine from cfg.
func New[K comparable, V any](cfg config.LFUConfig) *Engine[K, V] {
	return &Engine[K, V]{
		cfg: cfg,
		m:   make(map[K]record[K, V], cfg.Capacity()),
		idx: freq.New[K, V](),
	}
}

// Put inserts or updates k→v.
//
// On miss, the new entry enters at frequency 1; if this pushes the engine
// over capacity, the tail of the minimum-frequency bucket is evicted.
//
// On hit, the value is replaced and the entry's frequency is incremented,
// moving it to the head of the next bucket.
func (e *Engine[K, V]) Put(k K, v V) (evicted Entry[K, V], ok bool) {
	if rec, exists := e.m[k]; exists {
		rec.node.Value = v
		e.bump(k, rec)
		return Entry[K, V]{}, false
	}

	n := e.idx.Insert(k, v)
	e.m[k] = record[K, V]{node: n, freq: 1}

	if len(e.m) > e.cfg.Capacity() {
		ek, ev, _, _ := e.idx.EvictMin()
		delete(e.m, ek)
		return Entry[K, V]{Key: ek, Value: ev}, true
	}
	return Entry[K, V]{}, false
}

// Get returns the value for k and increments its frequency.
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
	newFreq := rec.freq + 1
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

// Remove deletes k if present and returns its value.
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

// Clear removes every entry. Capacity is preserved.
func (e *Engine[K, V]) Clear() {
	e.m = make(map[K]record[K, V], e.cfg.Capacity())
	e.idx = freq.New[K, V]()
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

// MinFrequency returns the lowest frequency currently present, or 0 if empty.
func (e *Engine[K, V]) MinFrequency() int { return e.idx.MinFrequency() }
