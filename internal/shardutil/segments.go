package shardutil

import "runtime"

// DefaultSegmentCount picks a practical default segment count from hardware
// parallelism, clamped to [4, 64] — the same clamp used by
// default_segment_count() in the Rust original this package generalizes
// (see original_source/src/config/concurrent_gdsf.rs) and by the teacher's
// own ReasonableShardCount heuristic. Callers additionally clamp the result
// to the configured capacity (segments must never exceed capacity).
func DefaultSegmentCount() int {
	n := runtime.GOMAXPROCS(0)
	if n < 4 {
		n = 4
	}
	if n > 64 {
		n = 64
	}
	return n
}

// SplitCapacity partitions a total capacity across n shards as evenly as
// possible: the first (total % n) shards get ceil(total/n), the rest get
// floor(total/n), so the per-shard totals sum exactly to total.
func SplitCapacity(total, n int) []int {
	base := total / n
	rem := total % n
	out := make([]int, n)
	for i := range out {
		out[i] = base
		if i < rem {
			out[i]++
		}
	}
	return out
}
