package config

import "github.com/evictcache/evictcache/internal/shardutil"

// ConcurrentSLRUConfig configures an slru.Sharded wrapper: a base SLRUConfig
// plus a segment count, grounded on
// original_source/src/config/concurrent_slru.rs.
type ConcurrentSLRUConfig struct {
	Base     SLRUConfig
	segments int
}

// NewConcurrentSLRU constructs a sharded SLRU config. The default segment
// count comes from shardutil.DefaultSegmentCount(), clamped to capacity.
func NewConcurrentSLRU(capacity, protectedCapacity int) ConcurrentSLRUConfig {
	base := NewSLRU(capacity, protectedCapacity)
	return ConcurrentSLRUConfig{Base: base, segments: clampSegments(shardutil.DefaultSegmentCount(), capacity)}
}

// Segments returns the configured shard count.
func (c ConcurrentSLRUConfig) Segments() int { return c.segments }

// WithSegments returns a copy with the shard count set. Panics if segments
// < 1 or segments > capacity.
func (c ConcurrentSLRUConfig) WithSegments(segments int) ConcurrentSLRUConfig {
	requireValidSegments(segments, c.Base.Capacity())
	c.segments = segments
	return c
}

// WithMaxSize returns a copy with the base config's max content size set.
func (c ConcurrentSLRUConfig) WithMaxSize(max uint64) ConcurrentSLRUConfig {
	c.Base = c.Base.WithMaxSize(max)
	return c
}

// ConcurrentLFUConfig configures an lfu.Sharded wrapper.
type ConcurrentLFUConfig struct {
	Base     LFUConfig
	segments int
}

// NewConcurrentLFU constructs a sharded LFU config with a default segment count.
func NewConcurrentLFU(capacity int) ConcurrentLFUConfig {
	base := NewLFU(capacity)
	return ConcurrentLFUConfig{Base: base, segments: clampSegments(shardutil.DefaultSegmentCount(), capacity)}
}

// Segments returns the configured shard count.
func (c ConcurrentLFUConfig) Segments() int { return c.segments }

// WithSegments returns a copy with the shard count set.
func (c ConcurrentLFUConfig) WithSegments(segments int) ConcurrentLFUConfig {
	requireValidSegments(segments, c.Base.Capacity())
	c.segments = segments
	return c
}

// ConcurrentGDSFConfig configures a gdsf.Sharded wrapper, grounded on
// original_source/src/config/concurrent_gdsf.rs.
type ConcurrentGDSFConfig struct {
	Base     GDSFConfig
	segments int
}

// NewConcurrentGDSF constructs a sharded GDSF config with a default segment count.
func NewConcurrentGDSF(capacity int) ConcurrentGDSFConfig {
	base := NewGDSF(capacity)
	return ConcurrentGDSFConfig{Base: base, segments: clampSegments(shardutil.DefaultSegmentCount(), capacity)}
}

// Segments returns the configured shard count.
func (c ConcurrentGDSFConfig) Segments() int { return c.segments }

// WithSegments returns a copy with the shard count set.
func (c ConcurrentGDSFConfig) WithSegments(segments int) ConcurrentGDSFConfig {
	requireValidSegments(segments, c.Base.Capacity())
	c.segments = segments
	return c
}

// WithMaxSize returns a copy with the base config's max content size set.
func (c ConcurrentGDSFConfig) WithMaxSize(max uint64) ConcurrentGDSFConfig {
	c.Base = c.Base.WithMaxSize(max)
	return c
}

// WithInitialAge returns a copy with the base config's initial global age set.
func (c ConcurrentGDSFConfig) WithInitialAge(age float64) ConcurrentGDSFConfig {
	c.Base = c.Base.WithInitialAge(age)
	return c
}

func clampSegments(segments, capacity int) int {
	if segments > capacity {
		return capacity
	}
	return segments
}

func requireValidSegments(segments, capacity int) {
	if segments < 1 {
		panic("config: segments must be >= 1")
	}
	if segments > capacity {
		panic("config: segments must be <= capacity")
	}
}
