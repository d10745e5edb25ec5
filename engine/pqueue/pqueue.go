package pqueue

import "container/heap"

// Queue is a min-priority queue ordered by a caller-supplied comparator.
// cmp returns a negative value when a should be popped before b.
// Equal elements come out in no particular order.
type Queue[T any] struct {
	h *items[T]
}

// New creates an empty queue using cmp for ordering
func New[T any](cmp func(a, b T) int) *Queue[T] {
	return &Queue[T]{h: &items[T]{cmp: cmp}}
}

// Push adds an item
func (q *Queue[T]) Push(item T) {
	heap.Push(q.h, item)
}

// Pop removes and returns the minimal item. ok is false when the queue is empty.
func (q *Queue[T]) Pop() (item T, ok bool) {
	if q.h.Len() == 0 {
		return item, false
	}
	return heap.Pop(q.h).(T), true
}

// Peek returns the minimal item without removing it
func (q *Queue[T]) Peek() (item T, ok bool) {
	if q.h.Len() == 0 {
		return item, false
	}
	return q.h.data[0], true
}

// Len returns the number of queued items
func (q *Queue[T]) Len() int { return q.h.Len() }

// Remove deletes every item matching pred and returns how many were removed
func (q *Queue[T]) Remove(pred func(T) bool) int {
	kept := q.h.data[:0]
	removed := 0
	for _, it := range q.h.data {
		if pred(it) {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	var zero T
	for i := len(kept); i < len(q.h.data); i++ {
		q.h.data[i] = zero
	}
	q.h.data = kept
	if removed > 0 {
		heap.Init(q.h)
	}
	return removed
}

// --- heap adapter ---

type items[T any] struct {
	data []T
	cmp  func(a, b T) int
}

func (h items[T]) Len() int           { return len(h.data) }
func (h items[T]) Less(i, j int) bool { return h.cmp(h.data[i], h.data[j]) < 0 }
func (h items[T]) Swap(i, j int)      { h.data[i], h.data[j] = h.data[j], h.data[i] }
func (h *items[T]) Push(x any)        { h.data = append(h.data, x.(T)) }
func (h *items[T]) Pop() any {
	old := h.data
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero
	h.data = old[:n-1]
	return item
}
