// Package loader implements a cache-agnostic GetOrLoad helper: on a miss it
// coalesces concurrent fetches for the same key into a single call via
// golang.org/x/sync/singleflight, then stores the result through a caller
// supplied Put closure. It is deliberately engine-agnostic — the five core
// engines and their sharded wrappers share no common interface (their Put
// signatures differ, most visibly GDSF's size parameter), so Group is driven
// entirely by closures rather than a cache interface, the same way the
// teacher's cmd/bench wires a cache.Options.Metrics hook without depending
// on any particular policy's concrete type.
package loader

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"
)

// Group coalesces concurrent loads for the same key across any of this
// module's cache types. The zero value is ready to use.
type Group[K comparable, V any] struct {
	sf singleflight.Group
}

// GetOrLoad returns the cached value for key if peek reports a hit.
// Otherwise it calls fetch at most once per key even under concurrent
// callers racing the same miss, stores the result via put, and returns it
// to every waiter. A fetch error is not cached and is returned to every
// waiter that joined that particular call.
//
// peek must not mutate the underlying cache (use each engine's Peek, not
// Get, to avoid skewing recency/frequency ahead of a confirmed load).
func (g *Group[K, V]) GetOrLoad(
	ctx context.Context,
	key K,
	peek func(K) (V, bool),
	fetch func(context.Context, K) (V, error),
	put func(K, V),
) (V, error) {
	if v, ok := peek(key); ok {
		return v, nil
	}

	sfKey := fmt.Sprint(key)
	v, err, _ := g.sf.Do(sfKey, func() (any, error) {
		// Re-check under the singleflight call: another goroutine may have
		// populated the cache between our peek above and acquiring the
		// leader slot.
		if v, ok := peek(key); ok {
			return v, nil
		}
		v, err := fetch(ctx, key)
		if err != nil {
			return nil, err
		}
		put(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}
