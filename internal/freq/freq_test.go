package freq

import "testing"

func TestIndex_InsertTracksMin(t *testing.T) {
	idx := New[string, int]()
	idx.Insert("a", 1)
	if idx.MinFrequency() != 1 {
		t.Fatalf("MinFrequency() = %d, want 1", idx.MinFrequency())
	}
	idx.InsertAt(5, "b", 2)
	if idx.MinFrequency() != 1 {
		t.Fatalf("MinFrequency() should stay 1, got %d", idx.MinFrequency())
	}
	if idx.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", idx.Len())
	}
}

func TestIndex_PromoteAdvancesMinWhenBucketEmpties(t *testing.T) {
	idx := New[string, int]()
	na := idx.Insert("a", 1) // freq 1
	if idx.MinFrequency() != 1 {
		t.Fatalf("MinFrequency() = %d, want 1", idx.MinFrequency())
	}
	idx.Promote(na, 1, 2)
	if idx.MinFrequency() != 2 {
		t.Fatalf("MinFrequency() = %d, want 2 after sole freq-1 entry promoted", idx.MinFrequency())
	}
}

func TestIndex_PromoteKeepsMinWhenOthersRemain(t *testing.T) {
	idx := New[string, int]()
	na := idx.Insert("a", 1)
	idx.Insert("b", 2)
	idx.Promote(na, 1, 2)
	if idx.MinFrequency() != 1 {
		t.Fatalf("MinFrequency() = %d, want 1 (b still at freq 1)", idx.MinFrequency())
	}
}

func TestIndex_EvictMinTieBreaksByRecency(t *testing.T) {
	idx := New[string, int]()
	idx.Insert("a", 1) // freq 1, pushed first
	idx.Insert("b", 2) // freq 1, pushed after a -> a is LRU within bucket

	k, v, freq, ok := idx.EvictMin()
	if !ok || k != "a" || v != 1 || freq != 1 {
		t.Fatalf("EvictMin() = (%v, %v, %d, %v), want (a, 1, 1, true)", k, v, freq, ok)
	}
	if idx.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", idx.Len())
	}
}

func TestIndex_RemoveAtRecomputesMin(t *testing.T) {
	idx := New[string, int]()
	na := idx.Insert("a", 1)
	idx.InsertAt(3, "b", 2)

	idx.RemoveAt(na, 1)
	if idx.MinFrequency() != 3 {
		t.Fatalf("MinFrequency() = %d, want 3 after sole freq-1 entry removed", idx.MinFrequency())
	}
	if idx.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", idx.Len())
	}
}

func TestIndex_EvictMinOnEmpty(t *testing.T) {
	idx := New[string, int]()
	if _, _, _, ok := idx.EvictMin(); ok {
		t.Fatal("EvictMin on empty index must report ok=false")
	}
}
