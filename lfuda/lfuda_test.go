package lfuda

import (
	"testing"

	"github.com/evictcache/evictcache/config"
)

func TestEngine_NewEntryEntersAtFloorPlusOne(t *testing.T) {
	e := New[string, int](config.NewLFUDA(4))
	e.Put("a", 1)
	if f, ok := e.Frequency("a"); !ok || f != 1 {
		t.Fatalf("Frequency(a) = (%d, %v), want (1, true) with floor=0", f, ok)
	}
}

func TestEngine_EvictionRaisesFloor(t *testing.T) {
	e := New[string, int](config.NewLFUDA(2))
	e.Put("a", 1)
	e.Put("b", 2)

	evicted, ok := e.Put("c", 3) // evicts a (tail of freq-1 bucket), floor -> 1
	if !ok || evicted.Key != "a" {
		t.Fatalf("Put(c) evicted = %v ok=%v, want a evicted", evicted, ok)
	}
	if e.Floor() != 1 {
		t.Fatalf("Floor() = %d, want 1 after eviction at frequency 1", e.Floor())
	}
}

func TestEngine_BumpUsesFloorNotStaleFrequency(t *testing.T) {
	e := New[string, int](config.NewLFUDA(2))
	e.Put("a", 1)
	e.Put("b", 2)
	e.Put("c", 3) // evicts a, floor becomes 1; b and c remain at freq 1

	e.Get("b") // effective freq = max(1, floor=1)+1 = 2
	if f, _ := e.Frequency("b"); f != 2 {
		t.Fatalf("Frequency(b) after Get = %d, want 2", f)
	}

	evicted, ok := e.Put("d", 4) // d enters at floor+1=2; c (freq 1) is now the min -> evicted
	if !ok || evicted.Key != "c" {
		t.Fatalf("Put(d) evicted = %v ok=%v, want c evicted", evicted, ok)
	}
	if e.Floor() != 1 {
		t.Fatalf("Floor() = %d, want 1 (evicted entry's frequency was 1)", e.Floor())
	}
}

func TestEngine_RemoveDoesNotAffectFloor(t *testing.T) {
	e := New[string, int](config.NewLFUDA(2))
	e.Put("a", 1)
	e.Put("b", 2)
	e.Put("c", 3) // evicts a, floor -> 1

	e.Remove("b")
	if e.Floor() != 1 {
		t.Fatalf("Floor() = %d, want 1 (Remove must not change the floor)", e.Floor())
	}
}

func TestEngine_ClearResetsFloor(t *testing.T) {
	e := New[string, int](config.NewLFUDA(2))
	e.Put("a", 1)
	e.Put("b", 2)
	e.Put("c", 3) // floor -> 1

	e.Clear()
	if e.Floor() != 0 {
		t.Fatalf("Floor() = %d, want 0 after Clear", e.Floor())
	}
	if !e.IsEmpty() {
		t.Fatal("engine must be empty after Clear")
	}
}
