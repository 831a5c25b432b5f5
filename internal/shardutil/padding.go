package shardutil

import (
	"sync/atomic"
	"unsafe"
)

// CacheLineSize is a reasonable default for most modern CPUs. The stdlib's
// runtime/internal/sys.CacheLineSize is unexported; 64 works well in
// practice — grounded on the teacher's internal/util/padding.go.
const CacheLineSize = 64

// PaddedCounter is an atomic uint64 padded to exactly one cache line, used
// for per-shard hit/miss/eviction counters so that many goroutines updating
// different shards' counters don't false-share a line.
type PaddedCounter struct {
	atomic.Uint64
	_ [CacheLineSize - 8]byte
}

// Compile-time check: PaddedCounter must be exactly one cache line.
var _ [CacheLineSize - int(unsafe.Sizeof(PaddedCounter{}))]byte
