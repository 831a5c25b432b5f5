package gdsf

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"

	"github.com/evictcache/evictcache/config"
	"github.com/evictcache/evictcache/internal/shardutil"
	"github.com/evictcache/evictcache/metrics"
)

// ErrShardPoisoned is returned by every operation on a shard whose previous
// critical section panicked mid-mutation (see slru.ErrShardPoisoned for the
// rationale this module shares across all three sharded wrappers).
var ErrShardPoisoned = errors.New("gdsf: shard poisoned by a prior panic")

type slot[K comparable, V any] struct {
	mu       sync.Mutex
	poisoned atomic.Bool
	engine   *Engine[K, V]

	// Hit/miss/eviction counters, padded to a cache line each so that
	// concurrent updates to different shards' counters don't false-share —
	// grounded on the teacher's internal/util padded-atomics idiom.
	hits   shardutil.PaddedCounter
	misses shardutil.PaddedCounter
	evicts shardutil.PaddedCounter
}

// Sharded is a concurrent GDSF cache: an array of independently-locked
// Engine instances keyed by hash(key) mod N. Max content size, like
// capacity, is split evenly across shards.
type Sharded[K comparable, V any] struct {
	shards []*slot[K, V]
	hooks  metrics.Hooks
}

// NewSharded constructs a sharded GDSF cache from cfg.
func NewSharded[K comparable, V any](cfg config.ConcurrentGDSFConfig, hooks metrics.Hooks) *Sharded[K, V] {
	if hooks == nil {
		hooks = metrics.NoopHooks{}
	}
	n := cfg.Segments()
	caps := shardutil.SplitCapacity(cfg.Base.Capacity(), n)

	shards := make([]*slot[K, V], n)
	for i := 0; i < n; i++ {
		c := caps[i]
		if c == 0 {
			c = 1
		}
		shardCfg := config.NewGDSF(c).WithInitialAge(cfg.Base.InitialAge())
		if cfg.Base.MaxSize() != math.MaxUint64 {
			shardCfg = shardCfg.WithMaxSize(perShardMaxSize(cfg.Base.MaxSize(), n, i))
		}
		shards[i] = &slot[K, V]{engine: New[K, V](shardCfg)}
	}
	return &Sharded[K, V]{shards: shards, hooks: hooks}
}

// perShardMaxSize splits a global max content size across n shards as
// evenly as possible, same ceil/floor split as SplitCapacity.
func perShardMaxSize(total uint64, n, i int) uint64 {
	base := total / uint64(n)
	rem := total % uint64(n)
	if uint64(i) < rem {
		return base + 1
	}
	return base
}

func (s *Sharded[K, V]) shardFor(k K) *slot[K, V] {
	idx := shardutil.Index(shardutil.Hash(k), len(s.shards))
	return s.shards[idx]
}

// Put inserts or updates k→v with the given size in its owning shard. See
// Engine.Put. A rejected insertion (entry larger than the shard's max
// content size) reports metrics.EvictRejected instead of metrics.EvictPolicy.
func (s *Sharded[K, V]) Put(k K, v V, size uint64) (evicted []Entry[K, V], rejected bool, err error) {
	sh := s.shardFor(k)
	if sh.poisoned.Load() {
		return nil, false, ErrShardPoisoned
	}
	sh.mu.Lock()
	defer sh.mu.Unlock()
	defer recoverPoison(sh, &err)

	evicted, rejected = sh.engine.Put(k, v, size)
	if rejected {
		sh.evicts.Add(1)
		s.hooks.Evict(metrics.EvictRejected)
	} else if len(evicted) > 0 {
		sh.evicts.Add(uint64(len(evicted)))
		s.hooks.Evict(metrics.EvictPolicy)
	}
	s.hooks.Size(sh.engine.Len())
	return evicted, rejected, nil
}

// Get returns the value for k from its owning shard. See Engine.Get.
func (s *Sharded[K, V]) Get(k K) (v V, ok bool, err error) {
	sh := s.shardFor(k)
	if sh.poisoned.Load() {
		return v, false, ErrShardPoisoned
	}
	sh.mu.Lock()
	defer sh.mu.Unlock()
	defer recoverPoison(sh, &err)

	v, ok = sh.engine.Get(k)
	if ok {
		sh.hits.Add(1)
		s.hooks.Hit()
	} else {
		sh.misses.Add(1)
		s.hooks.Miss()
	}
	return v, ok, nil
}

// Peek returns the value for k without affecting frequency/priority.
func (s *Sharded[K, V]) Peek(k K) (v V, ok bool, err error) {
	sh := s.shardFor(k)
	if sh.poisoned.Load() {
		return v, false, ErrShardPoisoned
	}
	sh.mu.Lock()
	defer sh.mu.Unlock()
	defer recoverPoison(sh, &err)

	v, ok = sh.engine.Peek(k)
	return v, ok, nil
}

// Contains reports whether k is present, never mutating frequency or priority.
func (s *Sharded[K, V]) Contains(k K) (bool, error) {
	sh := s.shardFor(k)
	if sh.poisoned.Load() {
		return false, ErrShardPoisoned
	}
	sh.mu.Lock()
	defer sh.mu.Unlock()
	var err error
	defer recoverPoison(sh, &err)

	return sh.engine.Contains(k), nil
}

// Remove deletes k if present, from its owning shard.
func (s *Sharded[K, V]) Remove(k K) (v V, ok bool, err error) {
	sh := s.shardFor(k)
	if sh.poisoned.Load() {
		return v, false, ErrShardPoisoned
	}
	sh.mu.Lock()
	defer sh.mu.Unlock()
	defer recoverPoison(sh, &err)

	v, ok = sh.engine.Remove(k)
	return v, ok, nil
}

// Len returns the sum of resident entries across all shards (best-effort,
// snapshotted sequentially — see spec §4.6/§5).
func (s *Sharded[K, V]) Len() (int, error) {
	total := 0
	for _, sh := range s.shards {
		if sh.poisoned.Load() {
			return 0, ErrShardPoisoned
		}
		sh.mu.Lock()
		total += sh.engine.Len()
		sh.mu.Unlock()
	}
	return total, nil
}

// Clear empties every shard, acquiring them sequentially in index order.
func (s *Sharded[K, V]) Clear() error {
	for _, sh := range s.shards {
		if sh.poisoned.Load() {
			return ErrShardPoisoned
		}
		sh.mu.Lock()
		sh.engine.Clear()
		sh.mu.Unlock()
	}
	return nil
}

// Segments returns the number of shards.
func (s *Sharded[K, V]) Segments() int { return len(s.shards) }

// ShardStats returns a snapshot of hit/miss/eviction counters for shard i.
func (s *Sharded[K, V]) ShardStats(i int) metrics.Stats {
	sh := s.shards[i]
	return metrics.Stats{Hits: sh.hits.Load(), Misses: sh.misses.Load(), Evictions: sh.evicts.Load()}
}

// Stats returns the sum of hit/miss/eviction counters across all shards.
func (s *Sharded[K, V]) Stats() metrics.Stats {
	var total metrics.Stats
	for _, sh := range s.shards {
		total.Hits += sh.hits.Load()
		total.Misses += sh.misses.Load()
		total.Evictions += sh.evicts.Load()
	}
	return total
}

// GlobalAge returns shard i's current global age. Each shard ages
// independently; there is no single cache-wide age under static sharding.
func (s *Sharded[K, V]) GlobalAge(shard int) float64 {
	sh := s.shards[shard]
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.engine.GlobalAge()
}

func recoverPoison[K comparable, V any](sh *slot[K, V], err *error) {
	if r := recover(); r != nil {
		sh.poisoned.Store(true)
		*err = ErrShardPoisoned
	}
}
