// Package gdsf implements the Greedy Dual-Size Frequency eviction engine: a
// key→node map paired with an indexed priority queue (internal/pq), a
// global age, and per-entry size. Priority on (re-)insertion is
// A + F/S, where A is the global age and F the access frequency; eviction
// pops the minimum-priority entry and raises A to match it.
package gdsf

import (
	"github.com/evictcache/evictcache/config"
	"github.com/evictcache/evictcache/internal/pq"
)

// Entry is a (key, value, size) triple, returned by Put on eviction or
// rejection.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
	Size  uint64
}

type record[K comparable, V any] struct {
	freq int
	size uint64
}

// Engine is a single-threaded GDSF cache bounded by entry count and,
// optionally, total content size.
type Engine[K comparable, V any] struct {
	cfg     config.GDSFConfig
	q       *pq.Queue[K, V]
	recs    map[K]*record[K, V]
	age     float64
	curSize uint64
	seq     uint64
}

// New constructs an Engine from cfg. The global age starts at cfg.InitialAge().
func New[K comparable, V any](cfg config.GDSFConfig) *Engine[K, V] {
	return &Engine[K, V]{
		cfg:  cfg,
		q:    pq.New[K, V](),
		recs: make(map[K]*record[K, V], cfg.Capacity()),
		age:  cfg.InitialAge(),
	}
}

// Put inserts or updates k→v with the given content size.
//
// If size alone exceeds the configured max content size, the insertion is
// rejected: existing contents are left untouched and (k, v, size) is
// returned as the "evicted" pair with rejected=true.
//
// Otherwise, on miss the entry is inserted with F=1 and priority A+1/S; on
// hit F is incremented and priority recomputed as A+F/S. After insertion,
// entries are evicted (lowest priority first, raising A to match each
// evicted priority) while entry count exceeds capacity or total size
// exceeds max content size.
func (e *Engine[K, V]) Put(k K, v V, size uint64) (evicted []Entry[K, V], rejected bool) {
	if size == 0 {
		size = 1
	}
	if size > e.cfg.MaxSize() {
		return []Entry[K, V]{{Key: k, Value: v, Size: size}}, true
	}

	if rec, exists := e.recs[k]; exists {
		e.curSize -= rec.size
		e.curSize += size
		rec.freq++
		rec.size = size
		priority := e.age + float64(rec.freq)/float64(size)
		item, _ := e.q.Get(k)
		e.q.Update(item, v, priority)
	} else {
		rec := &record[K, V]{freq: 1, size: size}
		e.recs[k] = rec
		e.curSize += size
		priority := e.age + 1.0/float64(size)
		e.seq++
		e.q.Push(k, v, priority, e.seq)
	}

	evicted = e.enforceLimits()
	return evicted, false
}

// enforceLimits evicts minimum-priority entries, raising the global age to
// match each evicted priority, until both the entry-count and size limits
// are satisfied.
func (e *Engine[K, V]) enforceLimits() []Entry[K, V] {
	var out []Entry[K, V]
	for e.q.Len() > e.cfg.Capacity() || e.curSize > e.cfg.MaxSize() {
		item, ok := e.q.PopMin()
		if !ok {
			break
		}
		rec := e.recs[item.Key]
		delete(e.recs, item.Key)
		e.curSize -= rec.size
		e.age = item.Priority
		out = append(out, Entry[K, V]{Key: item.Key, Value: item.Value, Size: rec.size})
	}
	return out
}

// Get returns the value for k, incrementing its frequency and recomputing
// (and re-heapifying) its priority.
func (e *Engine[K, V]) Get(k K) (v V, ok bool) {
	rec, exists := e.recs[k]
	if !exists {
		return v, false
	}
	rec.freq++
	item, _ := e.q.Get(k)
	priority := e.age + float64(rec.freq)/float64(rec.size)
	e.q.Update(item, item.Value, priority)
	return item.Value, true
}

// Peek returns the value for k without affecting frequency or priority.
func (e *Engine[K, V]) Peek(k K) (v V, ok bool) {
	item, exists := e.q.Get(k)
	if !exists {
		return v, false
	}
	return item.Value, true
}

// Contains reports whether k is present. It never mutates frequency or priority.
func (e *Engine[K, V]) Contains(k K) bool {
	_, ok := e.recs[k]
	return ok
}

// Remove deletes k if present and returns its value.
func (e *Engine[K, V]) Remove(k K) (v V, ok bool) {
	rec, exists := e.recs[k]
	if !exists {
		return v, false
	}
	item, _ := e.q.Remove(k)
	delete(e.recs, k)
	e.curSize -= rec.size
	return item.Value, true
}

// Len returns the number of resident entries.
func (e *Engine[K, V]) Len() int { return e.q.Len() }

// IsEmpty reports whether the engine holds no entries.
func (e *Engine[K, V]) IsEmpty() bool { return e.q.Len() == 0 }

// Clear removes every entry. Capacity, max size, and the global age are preserved.
func (e *Engine[K, V]) Clear() {
	e.q = pq.New[K, V]()
	e.recs = make(map[K]*record[K, V], e.cfg.Capacity())
	e.curSize = 0
}

// Capacity returns the configured maximum entry count.
func (e *Engine[K, V]) Capacity() int { return e.cfg.Capacity() }

// GlobalAge returns the current global age A: non-decreasing, equal to the
// highest priority ever evicted (or the configured initial value if nothing
// has been evicted yet).
func (e *Engine[K, V]) GlobalAge() float64 { return e.age }

// ContentSize returns the current total size of resident entries.
func (e *Engine[K, V]) ContentSize() uint64 { return e.curSize }

// Frequency returns the current access frequency for k, if present.
func (e *Engine[K, V]) Frequency(k K) (int, bool) {
	rec, exists := e.recs[k]
	if !exists {
		return 0, false
	}
	return rec.freq, true
}

// Priority returns the current priority for k, if present.
func (e *Engine[K, V]) Priority(k K) (float64, bool) {
	item, ok := e.q.Get(k)
	if !ok {
		return 0, false
	}
	return item.Priority, true
}
