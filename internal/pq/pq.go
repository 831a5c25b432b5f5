// Package pq implements an indexed binary min-heap keyed by (priority, seq):
// GDSF's priority queue. A side map from key to heap slot lets decrease-key
// and remove-by-key run in O(log n), same contract container/heap itself
// asks callers to provide via heap.Fix/heap.Remove plus their own index.
package pq

import "container/heap"

// Item is one entry tracked by the queue.
type Item[K comparable, V any] struct {
	Key      K
	Value    V
	Priority float64
	Seq      uint64

	index int // heap slot, maintained by innerHeap
}

// Queue is an indexed min-heap over Item, min priority (ties broken by
// ascending Seq — older insertion sequence evicts first) at the root.
type Queue[K comparable, V any] struct {
	h   innerHeap[K, V]
	pos map[K]*Item[K, V]
}

// New returns an empty queue.
func New[K comparable, V any]() *Queue[K, V] {
	return &Queue[K, V]{pos: make(map[K]*Item[K, V])}
}

// Len returns the number of items in the queue.
func (q *Queue[K, V]) Len() int { return len(q.h) }

// Push inserts a new item. k must not already be present.
func (q *Queue[K, V]) Push(k K, v V, priority float64, seq uint64) *Item[K, V] {
	it := &Item[K, V]{Key: k, Value: v, Priority: priority, Seq: seq}
	heap.Push(&q.h, it)
	q.pos[k] = it
	return it
}

// Update changes an existing item's priority (and optionally value) and
// restores the heap property in O(log n).
func (q *Queue[K, V]) Update(it *Item[K, V], value V, priority float64) {
	it.Value = value
	it.Priority = priority
	heap.Fix(&q.h, it.index)
}

// Get looks up the item currently tracked for k.
func (q *Queue[K, V]) Get(k K) (*Item[K, V], bool) {
	it, ok := q.pos[k]
	return it, ok
}

// Remove detaches the item for k, if present, restoring the heap in O(log n).
func (q *Queue[K, V]) Remove(k K) (*Item[K, V], bool) {
	it, ok := q.pos[k]
	if !ok {
		return nil, false
	}
	heap.Remove(&q.h, it.index)
	delete(q.pos, k)
	return it, true
}

// PopMin removes and returns the minimum-priority item.
func (q *Queue[K, V]) PopMin() (*Item[K, V], bool) {
	if len(q.h) == 0 {
		return nil, false
	}
	it := heap.Pop(&q.h).(*Item[K, V])
	delete(q.pos, it.Key)
	return it, true
}

// Peek returns the minimum-priority item without removing it.
func (q *Queue[K, V]) Peek() (*Item[K, V], bool) {
	if len(q.h) == 0 {
		return nil, false
	}
	return q.h[0], true
}

// innerHeap implements container/heap.Interface over *Item.
type innerHeap[K comparable, V any] []*Item[K, V]

func (h innerHeap[K, V]) Len() int { return len(h) }

func (h innerHeap[K, V]) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}
	return h[i].Seq < h[j].Seq
}

func (h innerHeap[K, V]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *innerHeap[K, V]) Push(x any) {
	it := x.(*Item[K, V])
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *innerHeap[K, V]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]
	return it
}
