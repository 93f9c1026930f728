package sevheap

import "testing"

func TestHeap_UnboundedKeepsEverythingSortedDescending(t *testing.T) {
	h := New[int, string](0)
	h.Add(3, "three")
	h.Add(1, "one")
	h.Add(5, "five")
	h.Add(2, "two")

	got := h.Sorted()
	want := []string{"five", "three", "two", "one"}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHeap_BoundedEvictsLowestScore(t *testing.T) {
	h := New[int, string](2)
	h.Add(1, "one")
	h.Add(5, "five")
	h.Add(3, "three")
	h.Add(0, "zero")

	if h.Len() != 2 {
		t.Fatalf("expected 2 retained entries, got %d", h.Len())
	}
	got := h.Sorted()
	want := []string{"five", "three"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHeap_EmptySortedIsEmpty(t *testing.T) {
	h := New[int, string](5)
	if got := h.Sorted(); len(got) != 0 {
		t.Errorf("expected no entries, got %v", got)
	}
}
