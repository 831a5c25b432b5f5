package slru

import (
	"testing"

	"github.com/evictcache/evictcache/config"
)

func TestEngine_NewEntriesEnterProbation(t *testing.T) {
	e := New[string, int](config.NewSLRU(4, 2))
	e.Put("a", 1)
	if e.ProbationLen() != 1 || e.ProtectedLen() != 0 {
		t.Fatalf("probation=%d protected=%d, want 1/0", e.ProbationLen(), e.ProtectedLen())
	}
}

func TestEngine_SecondTouchPromotes(t *testing.T) {
	e := New[string, int](config.NewSLRU(4, 2))
	e.Put("a", 1)
	e.Get("a")
	if e.ProbationLen() != 0 || e.ProtectedLen() != 1 {
		t.Fatalf("probation=%d protected=%d, want 0/1", e.ProbationLen(), e.ProtectedLen())
	}
	if v, ok := e.Peek("a"); !ok || v != 1 {
		t.Fatalf("Peek(a) = (%d, %v), want (1, true)", v, ok)
	}
}

func TestEngine_ProtectedOverflowDemotesToProbationHead(t *testing.T) {
	// protected capacity 1: promoting two keys must demote the first back
	// to probation without evicting anything.
	e := New[string, int](config.NewSLRU(4, 1))
	e.Put("a", 1)
	e.Put("b", 2)
	e.Get("a") // a -> protected
	e.Get("b") // b -> protected, protected overflows -> a demoted to probation

	if e.ProtectedLen() != 1 {
		t.Fatalf("ProtectedLen() = %d, want 1", e.ProtectedLen())
	}
	if e.ProbationLen() != 1 {
		t.Fatalf("ProbationLen() = %d, want 1", e.ProbationLen())
	}
	if e.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (demotion must not evict)", e.Len())
	}
	if !e.Contains("a") || !e.Contains("b") {
		t.Fatal("both a and b must survive the demotion")
	}
}

func TestEngine_ProbationOverflowEvictsProbationTail(t *testing.T) {
	e := New[string, int](config.NewSLRU(2, 1))
	e.Put("a", 1)
	e.Put("b", 2) // total = 2 = capacity, no eviction yet
	if e.Len() != 2 || !e.Contains("a") || !e.Contains("b") {
		t.Fatalf("Put(b) must not evict while total occupancy == capacity, got len=%d", e.Len())
	}

	evicted, ok := e.Put("c", 3) // total would be 3 > capacity 2
	if !ok || evicted.Key != "a" {
		t.Fatalf("Put(c) evicted = %v ok=%v, want a evicted", evicted, ok)
	}
	if e.Contains("a") {
		t.Fatal("a must be evicted from the probation tail")
	}
}

func TestEngine_PromotedEntrySurvivesProbationChurn(t *testing.T) {
	// Probation absorbs whatever capacity protected isn't using, so filling
	// probation to exactly total capacity must not evict anything; only a
	// later put that pushes total occupancy past capacity evicts the tail.
	e := New[string, int](config.NewSLRU(3, 1))
	e.Put("a", 1)
	e.Put("b", 2)
	e.Put("c", 3) // total = 3 = capacity, no eviction: a survives at the tail

	if e.Len() != 3 || !e.Contains("a") {
		t.Fatalf("Len()=%d Contains(a)=%v, want 3/true with no eviction", e.Len(), e.Contains("a"))
	}

	if _, ok := e.Get("a"); !ok {
		t.Fatal("Get(a) should hit")
	}
	if e.ProtectedLen() != 1 || !e.Contains("a") {
		t.Fatalf("a must be promoted to protected, ProtectedLen()=%d", e.ProtectedLen())
	}

	evicted, ok := e.Put("d", 4) // total would be 4 > capacity 3
	if !ok || evicted.Key != "b" {
		t.Fatalf("Put(d) evicted = %v ok=%v, want b evicted", evicted, ok)
	}
	if e.Contains("b") {
		t.Fatal("b must be evicted, not a")
	}
	if e.ProtectedLen() != 1 || !e.Contains("a") {
		t.Fatal("a must remain in protected")
	}
	if e.ProbationLen() != 2 || !e.Contains("c") || !e.Contains("d") {
		t.Fatalf("probation must hold c and d, ProbationLen()=%d", e.ProbationLen())
	}
}

func TestEngine_RemoveFromEitherSegment(t *testing.T) {
	e := New[string, int](config.NewSLRU(4, 2))
	e.Put("a", 1)
	e.Get("a") // promote to protected

	v, ok := e.Remove("a")
	if !ok || v != 1 {
		t.Fatalf("Remove(a) = (%d, %v), want (1, true)", v, ok)
	}
	if e.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", e.Len())
	}
}

func TestEngine_ClearResetsBothSegments(t *testing.T) {
	e := New[string, int](config.NewSLRU(4, 2))
	e.Put("a", 1)
	e.Get("a")
	e.Put("b", 2)
	e.Clear()

	if !e.IsEmpty() || e.ProbationLen() != 0 || e.ProtectedLen() != 0 {
		t.Fatal("Clear must empty both segments")
	}
	if e.Capacity() != 4 {
		t.Fatalf("Capacity() = %d, want 4", e.Capacity())
	}
}
