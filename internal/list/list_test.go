package list

import "testing"

func TestList_PushFrontOrder(t *testing.T) {
	l := New[string, int]()
	l.PushFront("a", 1)
	l.PushFront("b", 2)
	l.PushFront("c", 3)

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	if l.Front().Key != "c" {
		t.Fatalf("Front() = %q, want c", l.Front().Key)
	}
	if l.Back().Key != "a" {
		t.Fatalf("Back() = %q, want a", l.Back().Key)
	}
}

func TestList_MoveToFront(t *testing.T) {
	l := New[string, int]()
	na := l.PushFront("a", 1)
	nb := l.PushFront("b", 2)
	nc := l.PushFront("c", 3)
	_ = nc

	l.MoveToFront(na)
	if l.Front().Key != "a" {
		t.Fatalf("Front() = %q, want a", l.Front().Key)
	}
	var order []string
	l.Each(func(k string, _ int) { order = append(order, k) })
	if len(order) != 3 || order[0] != "a" || order[2] != nb.Key {
		t.Fatalf("unexpected order: %v", order)
	}
}

func TestList_Remove(t *testing.T) {
	l := New[string, int]()
	na := l.PushFront("a", 1)
	nb := l.PushFront("b", 2)
	l.PushFront("c", 3)

	l.Remove(nb)
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	var order []string
	l.Each(func(k string, _ int) { order = append(order, k) })
	if len(order) != 2 || order[0] != "c" || order[1] != na.Key {
		t.Fatalf("unexpected order after remove: %v", order)
	}
}

func TestList_PopBack(t *testing.T) {
	l := New[string, int]()
	l.PushFront("a", 1)
	l.PushFront("b", 2)

	n := l.PopBack()
	if n == nil || n.Key != "a" {
		t.Fatalf("PopBack() = %v, want a", n)
	}
	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
	if l.PopBack().Key != "b" {
		t.Fatal("second PopBack should return b")
	}
	if l.PopBack() != nil {
		t.Fatal("PopBack on empty list must return nil")
	}
}

func TestList_Splice(t *testing.T) {
	src := New[string, int]()
	dst := New[string, int]()

	na := src.PushFront("a", 1)
	src.PushFront("b", 2)

	dst.PushFront("x", 9)
	dst.Splice(na)

	if src.Len() != 1 {
		t.Fatalf("src.Len() = %d, want 1", src.Len())
	}
	if dst.Len() != 2 {
		t.Fatalf("dst.Len() = %d, want 2", dst.Len())
	}
	if dst.Front().Key != "a" {
		t.Fatalf("dst.Front() = %q, want a (spliced node lands at front)", dst.Front().Key)
	}
}
