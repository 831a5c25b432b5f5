package lfu

import (
	"testing"

	"github.com/evictcache/evictcache/config"
)

func TestEngine_NewEntryStartsAtFrequencyOne(t *testing.T) {
	e := New[string, int](config.NewLFU(4))
	e.Put("a", 1)
	if f, ok := e.Frequency("a"); !ok || f != 1 {
		t.Fatalf("Frequency(a) = (%d, %v), want (1, true)", f, ok)
	}
}

func TestEngine_GetIncrementsFrequency(t *testing.T) {
	e := New[string, int](config.NewLFU(4))
	e.Put("a", 1)
	e.Get("a")
	e.Get("a")
	if f, _ := e.Frequency("a"); f != 3 {
		t.Fatalf("Frequency(a) = %d, want 3", f)
	}
}

func TestEngine_EvictsLeastFrequentThenLeastRecent(t *testing.T) {
	e := New[string, int](config.NewLFU(2))
	e.Put("a", 1)
	e.Put("b", 2)
	e.Get("a") // a freq=2, b freq=1

	evicted, ok := e.Put("c", 3)
	if !ok || evicted.Key != "b" {
		t.Fatalf("Put(c) evicted = %v ok=%v, want b evicted (lowest frequency)", evicted, ok)
	}
}

func TestEngine_TiesWithinFrequencyEvictLRU(t *testing.T) {
	e := New[string, int](config.NewLFU(2))
	e.Put("a", 1) // both at freq 1
	e.Put("b", 2)

	evicted, ok := e.Put("c", 3)
	if !ok || evicted.Key != "a" {
		t.Fatalf("Put(c) evicted = %v ok=%v, want a (least-recent within freq 1)", evicted, ok)
	}
}

func TestEngine_RemoveUpdatesMinFrequency(t *testing.T) {
	e := New[string, int](config.NewLFU(4))
	e.Put("a", 1)
	e.Put("b", 2)
	e.Get("b")
	e.Get("b") // b freq=3, a freq=1

	e.Remove("a")
	if e.MinFrequency() != 3 {
		t.Fatalf("MinFrequency() = %d, want 3 after removing the sole freq-1 entry", e.MinFrequency())
	}
}

func TestEngine_ClearResetsFrequencies(t *testing.T) {
	e := New[string, int](config.NewLFU(4))
	e.Put("a", 1)
	e.Get("a")
	e.Clear()

	if !e.IsEmpty() || e.MinFrequency() != 0 {
		t.Fatalf("engine not reset: Len()=%d MinFrequency()=%d", e.Len(), e.MinFrequency())
	}
}
