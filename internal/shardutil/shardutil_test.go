package shardutil

import "testing"

func TestHash_SameInputSameOutput(t *testing.T) {
	if Hash("same-key") != Hash("same-key") {
		t.Fatal("Hash must be deterministic for equal inputs")
	}
	if Hash("a") == Hash("b") {
		t.Fatal("distinct keys hashing to the same value (extremely unlikely for FNV-1a)")
	}
}

func TestHash_IntegerWidths(t *testing.T) {
	if Hash(int32(7)) == 0 {
		t.Fatal("Hash(int32) should not be the zero value for a nonzero input")
	}
	if Hash(uint64(7)) != Hash(uint64(7)) {
		t.Fatal("Hash must be deterministic")
	}
}

func TestHash_PanicsOnUnsupportedType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Hash must panic on an unsupported key type")
		}
	}()
	type unsupported struct{ X, Y int }
	Hash(unsupported{1, 2})
}

func TestIndex_WithinBounds(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 8, 16, 17, 64} {
		for k := 0; k < 200; k++ {
			idx := Index(Hash(k), n)
			if idx < 0 || idx >= n {
				t.Fatalf("Index(hash, %d) = %d, out of bounds", n, idx)
			}
		}
	}
}

func TestSplitCapacity_SumsToTotal(t *testing.T) {
	for _, tc := range []struct{ total, n int }{
		{10, 3}, {100, 7}, {1, 5}, {0, 4}, {17, 17},
	} {
		parts := SplitCapacity(tc.total, tc.n)
		if len(parts) != tc.n {
			t.Fatalf("SplitCapacity(%d, %d) returned %d parts, want %d", tc.total, tc.n, len(parts), tc.n)
		}
		sum := 0
		for _, p := range parts {
			sum += p
		}
		if sum != tc.total {
			t.Fatalf("SplitCapacity(%d, %d) parts sum to %d, want %d", tc.total, tc.n, sum, tc.total)
		}
		for i := 1; i < len(parts); i++ {
			if parts[i] > parts[i-1] {
				t.Fatalf("SplitCapacity(%d, %d) not non-increasing: %v", tc.total, tc.n, parts)
			}
		}
	}
}

func TestDefaultSegmentCount_Clamped(t *testing.T) {
	n := DefaultSegmentCount()
	if n < 4 || n > 64 {
		t.Fatalf("DefaultSegmentCount() = %d, want within [4, 64]", n)
	}
}
