// Package config provides immutable configuration builders for every
// eviction engine and its sharded wrapper, grounded on the Rust source this
// module was distilled from (original_source/src/config/concurrent_*.rs):
// a required-capacity constructor extended by fluent With* setters, with
// validation happening at each setter call rather than deferred to first
// use. Invalid configuration panics immediately — the same fail-fast
// convention the teacher repo uses for Options.Capacity in cache.New.
package config

import "math"

// LRUConfig configures an lru.Engine.
type LRUConfig struct {
	capacity int
}

// NewLRU constructs a config for an LRU engine with the given capacity.
// Panics if capacity < 1.
func NewLRU(capacity int) LRUConfig {
	requirePositive("capacity", capacity)
	return LRUConfig{capacity: capacity}
}

// Capacity returns the configured entry limit.
func (c LRUConfig) Capacity() int { return c.capacity }

// SLRUConfig configures an slru.Engine: total capacity split between a
// probation and a protected queue.
type SLRUConfig struct {
	capacity          int
	protectedCapacity int
	maxSize           uint64
}

// NewSLRU constructs a config with the given total and protected capacities.
// Panics if capacity < 1 or protectedCapacity >= capacity.
func NewSLRU(capacity, protectedCapacity int) SLRUConfig {
	requirePositive("capacity", capacity)
	if protectedCapacity < 0 {
		panic("slru: protectedCapacity must be >= 0")
	}
	if protectedCapacity >= capacity {
		panic("slru: protectedCapacity must be < capacity")
	}
	return SLRUConfig{capacity: capacity, protectedCapacity: protectedCapacity, maxSize: math.MaxUint64}
}

// Capacity returns the total entry limit (probation + protected).
func (c SLRUConfig) Capacity() int { return c.capacity }

// ProtectedCapacity returns the protected queue's entry limit.
func (c SLRUConfig) ProtectedCapacity() int { return c.protectedCapacity }

// ProbationCapacity returns capacity - protectedCapacity: the room left for
// probation when protected is full. The slru engine does not cap probation
// at this value; it evicts from probation only when total occupancy exceeds
// Capacity().
func (c SLRUConfig) ProbationCapacity() int { return c.capacity - c.protectedCapacity }

// MaxSize returns the configured max content size, or math.MaxUint64 if unset.
func (c SLRUConfig) MaxSize() uint64 { return c.maxSize }

// WithMaxSize returns a copy with the max content size set.
func (c SLRUConfig) WithMaxSize(max uint64) SLRUConfig {
	c.maxSize = max
	return c
}

// LFUConfig configures an lfu.Engine.
type LFUConfig struct {
	capacity int
}

// NewLFU constructs a config for an LFU engine with the given capacity.
func NewLFU(capacity int) LFUConfig {
	requirePositive("capacity", capacity)
	return LFUConfig{capacity: capacity}
}

// Capacity returns the configured entry limit.
func (c LFUConfig) Capacity() int { return c.capacity }

// LFUDAConfig configures an lfuda.Engine.
type LFUDAConfig struct {
	capacity int
}

// NewLFUDA constructs a config for an LFUDA engine with the given capacity.
func NewLFUDA(capacity int) LFUDAConfig {
	requirePositive("capacity", capacity)
	return LFUDAConfig{capacity: capacity}
}

// Capacity returns the configured entry limit.
func (c LFUDAConfig) Capacity() int { return c.capacity }

// GDSFConfig configures a gdsf.Engine.
type GDSFConfig struct {
	capacity   int
	maxSize    uint64
	initialAge float64
}

// NewGDSF constructs a config for a GDSF engine with the given capacity.
// maxSize defaults to unbounded (math.MaxUint64); initialAge defaults to 0.
func NewGDSF(capacity int) GDSFConfig {
	requirePositive("capacity", capacity)
	return GDSFConfig{capacity: capacity, maxSize: math.MaxUint64}
}

// Capacity returns the configured entry limit.
func (c GDSFConfig) Capacity() int { return c.capacity }

// MaxSize returns the configured max total content size.
func (c GDSFConfig) MaxSize() uint64 { return c.maxSize }

// InitialAge returns the configured initial global age.
func (c GDSFConfig) InitialAge() float64 { return c.initialAge }

// WithMaxSize returns a copy with the max total content size set. Panics if
// max is 0 (a cache that can never hold anything is a configuration error).
func (c GDSFConfig) WithMaxSize(max uint64) GDSFConfig {
	if max == 0 {
		panic("gdsf: maxSize must be > 0")
	}
	c.maxSize = max
	return c
}

// WithInitialAge returns a copy with the initial global age set. Panics if
// age is negative, NaN, or infinite.
func (c GDSFConfig) WithInitialAge(age float64) GDSFConfig {
	requireFiniteNonNegative("initialAge", age)
	c.initialAge = age
	return c
}

func requirePositive(name string, v int) {
	if v < 1 {
		panic("config: " + name + " must be >= 1")
	}
}

func requireFiniteNonNegative(name string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		panic("config: " + name + " must be finite and >= 0")
	}
}
