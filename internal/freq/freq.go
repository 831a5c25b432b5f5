// Package freq implements the frequency bucket index used by LFU and LFUDA:
// a map from frequency to an ordered recency list of entries at that
// frequency, with the current minimum frequency tracked for O(1) eviction.
//
// Because every promotion increments frequency by exactly one, a promotion
// that empties the minimum bucket simply advances the minimum to the new
// frequency. Only a removal or eviction that empties the minimum bucket
// rescans the live buckets for the new minimum, so no sorted structure is
// needed — grounded on the
// same map[int]map[string]*node shape used by in-memory LFU caches in the
// wild, generalized here to an intrusive recency list per bucket so ties
// within a frequency evict in LRU order.
package freq

import "github.com/evictcache/evictcache/internal/list"

// Index is a frequency-bucketed ordered collection of (K, V) entries.
type Index[K comparable, V any] struct {
	buckets map[int]*list.List[K, V]
	min     int
	size    int
}

// New returns an empty frequency index.
func New[K comparable, V any]() *Index[K, V] {
	return &Index[K, V]{buckets: make(map[int]*list.List[K, V])}
}

// Len returns the total number of entries across all buckets.
func (idx *Index[K, V]) Len() int { return idx.size }

// MinFrequency returns the smallest frequency currently present, or 0 if empty.
func (idx *Index[K, V]) MinFrequency() int { return idx.min }

// Insert places (k, v) at the head of bucket 1 and sets the minimum frequency
// to 1. Used on miss-put: new entries always enter at frequency 1.
func (idx *Index[K, V]) Insert(k K, v V) *list.Node[K, V] {
	return idx.insertAt(1, k, v)
}

// InsertAt places (k, v) at the head of the given frequency's bucket. Used by
// LFUDA, whose new entries enter at frequency floor+1 rather than 1.
func (idx *Index[K, V]) InsertAt(freq int, k K, v V) *list.Node[K, V] {
	return idx.insertAt(freq, k, v)
}

func (idx *Index[K, V]) insertAt(freq int, k K, v V) *list.Node[K, V] {
	b := idx.bucket(freq)
	n := b.PushFront(k, v)
	idx.size++
	if idx.min == 0 || freq < idx.min {
		idx.min = freq
	}
	return n
}

// bucket returns (creating if absent) the list for frequency f.
func (idx *Index[K, V]) bucket(f int) *list.List[K, V] {
	b, ok := idx.buckets[f]
	if !ok {
		b = list.New[K, V]()
		idx.buckets[f] = b
	}
	return b
}

// Promote moves n from frequency oldFreq to newFreq, reinserting it at the
// head of newFreq's bucket. If oldFreq's bucket becomes empty and oldFreq
// was the tracked minimum, the minimum is advanced to newFreq (the only
// frequency now known to be populated below which nothing remains, since
// frequencies only ever increase by exactly one per access).
func (idx *Index[K, V]) Promote(n *list.Node[K, V], oldFreq, newFreq int) *list.Node[K, V] {
	old := idx.buckets[oldFreq]
	old.Remove(n)
	emptied := old.Len() == 0
	if emptied {
		delete(idx.buckets, oldFreq)
	}
	nb := idx.bucket(newFreq)
	nn := nb.PushFront(n.Key, n.Value)
	if emptied && idx.min == oldFreq {
		idx.min = newFreq
	}
	return nn
}

// RemoveAt unlinks n from the bucket for frequency f and recomputes the
// minimum frequency if f was the tracked minimum and its bucket emptied.
func (idx *Index[K, V]) RemoveAt(n *list.Node[K, V], f int) {
	b := idx.buckets[f]
	b.Remove(n)
	idx.size--
	if b.Len() == 0 {
		delete(idx.buckets, f)
		if idx.min == f {
			idx.min = idx.recomputeMin()
		}
	}
}

// EvictMin pops the tail (least-recently-used) entry of the minimum-frequency
// bucket and returns it along with the frequency it was evicted from.
func (idx *Index[K, V]) EvictMin() (k K, v V, freq int, ok bool) {
	if idx.size == 0 {
		return k, v, 0, false
	}
	b := idx.buckets[idx.min]
	n := b.PopBack()
	idx.size--
	freq = idx.min
	if b.Len() == 0 {
		delete(idx.buckets, idx.min)
		idx.min = idx.recomputeMin()
	}
	return n.Key, n.Value, freq, true
}

// recomputeMin scans the (small, sparse) set of live frequencies for the new
// minimum. Only called when the previous minimum's bucket has just emptied.
func (idx *Index[K, V]) recomputeMin() int {
	if idx.size == 0 {
		return 0
	}
	min := 0
	for f := range idx.buckets {
		if min == 0 || f < min {
			min = f
		}
	}
	return min
}
