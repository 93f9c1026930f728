// Package sevheap provides a bounded max-heap keyed on severity score, used
// to answer --top N without sorting and materializing the full repeat list.
// Adapted from the priority-queue binary heap found elsewhere in the
// examined pack, narrowed to the one fixed-capacity use the CLI needs.
package sevheap

import "golang.org/x/exp/constraints"

// Heap is a fixed-capacity max-heap over a score of type S, carrying an
// arbitrary payload V alongside each score. Once Len reaches cap, adding a
// new entry with a higher score than the current minimum evicts the
// minimum; lower-scoring entries are dropped.
type Heap[S constraints.Ordered, V any] struct {
	cap     int
	scores  []S
	payload []V
}

// New creates a Heap that retains at most capacity entries. A non-positive
// capacity means unbounded: every Add is kept.
func New[S constraints.Ordered, V any](capacity int) *Heap[S, V] {
	return &Heap[S, V]{cap: capacity}
}

// Len reports the current number of retained entries.
func (h *Heap[S, V]) Len() int { return len(h.scores) }

// Add inserts (score, value). If the heap is at capacity and score is not
// greater than the current minimum retained score, the entry is dropped.
func (h *Heap[S, V]) Add(score S, value V) {
	if h.cap <= 0 {
		h.push(score, value)
		return
	}
	if len(h.scores) < h.cap {
		h.push(score, value)
		return
	}
	if score <= h.scores[0] {
		return
	}
	h.scores[0], h.payload[0] = score, value
	h.sinkMin(0)
}

// push appends a new entry and restores the min-heap property by swimming
// it up from the bottom.
func (h *Heap[S, V]) push(score S, value V) {
	h.scores = append(h.scores, score)
	h.payload = append(h.payload, value)
	h.swimMin(len(h.scores) - 1)
}

func (h *Heap[S, V]) swimMin(k int) {
	for k > 0 {
		parent := (k - 1) / 2
		if h.scores[k] < h.scores[parent] {
			h.swap(k, parent)
			k = parent
		} else {
			break
		}
	}
}

func (h *Heap[S, V]) sinkMin(k int) {
	n := len(h.scores)
	for {
		left, right := 2*k+1, 2*k+2
		smallest := k
		if left < n && h.scores[left] < h.scores[smallest] {
			smallest = left
		}
		if right < n && h.scores[right] < h.scores[smallest] {
			smallest = right
		}
		if smallest == k {
			return
		}
		h.swap(k, smallest)
		k = smallest
	}
}

func (h *Heap[S, V]) swap(i, j int) {
	h.scores[i], h.scores[j] = h.scores[j], h.scores[i]
	h.payload[i], h.payload[j] = h.payload[j], h.payload[i]
}

// Sorted drains the heap and returns its retained values ordered by
// descending score. The heap is empty after this call.
func (h *Heap[S, V]) Sorted() []V {
	n := len(h.scores)
	out := make([]V, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = h.payload[0]
		last := len(h.scores) - 1
		h.scores[0], h.payload[0] = h.scores[last], h.payload[last]
		h.scores = h.scores[:last]
		h.payload = h.payload[:last]
		if len(h.scores) > 0 {
			h.sinkMin(0)
		}
	}
	return out
}
