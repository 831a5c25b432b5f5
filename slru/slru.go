// Package slru implements the segmented-LRU eviction engine: two ordered
// recency lists (probation and protected) with a key→(segment, node) map.
// Newcomers enter probation; a second touch promotes into protected;
// protected overflow demotes its tail back to the head of probation.
package slru

import (
	"github.com/evictcache/evictcache/config"
	"github.com/evictcache/evictcache/internal/list"
)

// Entry is a (key, value) pair, returned by Put on eviction.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

type segment int

const (
	segProbation segment = iota
	segProtected
)

type location[K comparable, V any] struct {
	seg  segment
	node *list.Node[K, V]
}

// Engine is a single-threaded SLRU cache of bounded capacity.
type Engine[K comparable, V any] struct {
	cfg       config.SLRUConfig
	m         map[K]location[K, V]
	probation *list.List[K, V]
	protected *list.List[K, V]
}

// New constructs an Engine from cfg.
func New[K comparable, V any](cfg config.SLRUConfig) *Engine[K, V] {
	return &Engine[K, V]{
		cfg:       cfg,
		m:         make(map[K]location[K, V], cfg.Capacity()),
		probation: list.New[K, V](),
		protected: list.New[K, V](),
	}
}

// Put inserts or updates k→v.
//
// On miss, the entry is inserted at the head of probation; if this pushes
// total occupancy over Capacity(), the probation tail is evicted and
// returned. Protected holds at most ProtectedCapacity() entries; probation
// takes up the rest of Capacity() dynamically, so eviction is triggered by
// total size, not by a fixed per-queue probation cap.
//
// On hit, the value is replaced. If the entry was in probation, it is
// promoted to the head of protected; if protected was already at capacity,
// its tail is demoted to the head of probation (this demotion never itself
// triggers a probation eviction within the same call, since the net size of
// the two queues is unchanged by a promotion+demotion pair). If the entry
// was already in protected, it is simply moved to head.
func (e *Engine[K, V]) Put(k K, v V) (evicted Entry[K, V], ok bool) {
	if loc, exists := e.m[k]; exists {
		loc.node.Value = v
		return e.promote(k, loc)
	}

	n := e.probation.PushFront(k, v)
	e.m[k] = location[K, V]{seg: segProbation, node: n}

	if e.Len() > e.cfg.Capacity() {
		tail := e.probation.PopBack()
		delete(e.m, tail.Key)
		return Entry[K, V]{Key: tail.Key, Value: tail.Value}, true
	}
	return Entry[K, V]{}, false
}

// Get returns the value for k, applying the same promotion as a hit-Put but
// without changing the value.
func (e *Engine[K, V]) Get(k K) (v V, ok bool) {
	loc, exists := e.m[k]
	if !exists {
		return v, false
	}
	value := loc.node.Value
	e.promote(k, loc)
	return value, true
}

// promote applies the hit transition for k at loc: protected entries simply
// move to head; probation entries are spliced to the head of protected, and
// if that overflows protected, its tail is demoted to the head of
// probation (never evicting — see Put's doc comment).
func (e *Engine[K, V]) promote(k K, loc location[K, V]) (Entry[K, V], bool) {
	if loc.seg == segProtected {
		e.protected.MoveToFront(loc.node)
		return Entry[K, V]{}, false
	}

	e.protected.Splice(loc.node)
	e.m[k] = location[K, V]{seg: segProtected, node: loc.node}

	if e.protected.Len() > e.cfg.ProtectedCapacity() {
		demoted := e.protected.PopBack()
		e.probation.Splice(demoted)
		e.m[demoted.Key] = location[K, V]{seg: segProbation, node: demoted}
	}
	return Entry[K, V]{}, false
}

// Peek returns the value for k without affecting queue placement.
func (e *Engine[K, V]) Peek(k K) (v V, ok bool) {
	loc, exists := e.m[k]
	if !exists {
		return v, false
	}
	return loc.node.Value, true
}

// Contains reports whether k is present. It never mutates queue placement.
func (e *Engine[K, V]) Contains(k K) bool {
	_, ok := e.m[k]
	return ok
}

// Remove deletes k if present and returns its value.
func (e *Engine[K, V]) Remove(k K) (v V, ok bool) {
	loc, exists := e.m[k]
	if !exists {
		return v, false
	}
	e.listFor(loc.seg).Remove(loc.node)
	delete(e.m, k)
	return loc.node.Value, true
}

// Len returns the number of resident entries across both queues.
func (e *Engine[K, V]) Len() int { return e.probation.Len() + e.protected.Len() }

// IsEmpty reports whether the engine holds no entries.
func (e *Engine[K, V]) IsEmpty() bool { return e.Len() == 0 }

// Clear removes every entry. Capacity is preserved.
func (e *Engine[K, V]) Clear() {
	e.m = make(map[K]location[K, V], e.cfg.Capacity())
	e.probation = list.New[K, V]()
	e.protected = list.New[K, V]()
}

// Capacity returns the configured total entry limit.
func (e *Engine[K, V]) Capacity() int { return e.cfg.Capacity() }

// ProtectedLen returns the number of entries currently in the protected queue.
func (e *Engine[K, V]) ProtectedLen() int { return e.protected.Len() }

// ProbationLen returns the number of entries currently in the probation queue.
func (e *Engine[K, V]) ProbationLen() int { return e.probation.Len() }

func (e *Engine[K, V]) listFor(s segment) *list.List[K, V] {
	if s == segProtected {
		return e.protected
	}
	return e.probation
}
