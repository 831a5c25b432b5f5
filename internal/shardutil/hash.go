// Package shardutil provides the hashing, shard-count, and capacity-split
// helpers shared by every sharded concurrent wrapper (slru.Sharded,
// lfu.Sharded, gdsf.Sharded).
package shardutil

import "fmt"

const (
	fnvOffset64 = 1469598103934665603
	fnvPrime64  = 1099511628211
)

// Hash hashes a comparable key with 64-bit FNV-1a. Supported key kinds:
// strings, byte slices, 16-, 32- and 64-byte arrays, every integer width, and
// fmt.Stringer as a fallback. Panicking on an unsupported type is
// deliberate — silently falling back to a poor hash would skew shard
// balance without any signal to the caller.
func Hash[K comparable](k K) uint64 {
	switch v := any(k).(type) {
	case string:
		return hashBytes([]byte(v))
	case []byte:
		return hashBytes(v)
	case [16]byte:
		return hashBytes(v[:])
	case [32]byte:
		return hashBytes(v[:])
	case [64]byte:
		return hashBytes(v[:])
	case uint8:
		return hashUint64(uint64(v))
	case uint16:
		return hashUint64(uint64(v))
	case uint32:
		return hashUint64(uint64(v))
	case uint64:
		return hashUint64(v)
	case uint:
		return hashUint64(uint64(v))
	case uintptr:
		return hashUint64(uint64(v))
	case int8:
		return hashUint64(uint64(uint8(v)))
	case int16:
		return hashUint64(uint64(uint16(v)))
	case int32:
		return hashUint64(uint64(uint32(v)))
	case int64:
		return hashUint64(uint64(v))
	case int:
		return hashUint64(uint64(v))
	case fmt.Stringer:
		return hashBytes([]byte(v.String()))
	default:
		panic(fmt.Sprintf("shardutil.Hash: unsupported key type %T; convert to string or a fixed-size integer", k))
	}
}

func hashBytes(b []byte) uint64 {
	h := uint64(fnvOffset64)
	for _, c := range b {
		h ^= uint64(c)
		h *= fnvPrime64
	}
	return h
}

func hashUint64(u uint64) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < 8; i++ {
		h ^= uint64(byte(u))
		h *= fnvPrime64
		u >>= 8
	}
	return h
}

// Index maps a hash to a shard slot in [0, shards). Uses a mask when shards
// is a power of two and falls back to modulo otherwise, since neither
// DefaultSegmentCount nor WithSegments restricts the count to powers of two.
func Index(hash uint64, shards int) int {
	if shards <= 1 {
		return 0
	}
	if isPowerOfTwo(shards) {
		return int(hash & uint64(shards-1))
	}
	return int(hash % uint64(shards))
}

func isPowerOfTwo(x int) bool { return x > 0 && x&(x-1) == 0 }
