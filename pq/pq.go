package pq

import (
	"container/heap"
	"errors"
)

// ErrEmptyQueue is returned by Pop and Peek when the queue holds no elements.
var ErrEmptyQueue = errors.New("pq: queue is empty")

// ErrNilLess is returned by constructors when no ordering function is given.
var ErrNilLess = errors.New("pq: less function is nil")

// Queue is a min-priority queue over T: Pop always returns the element for
// which less reports true against every other queued element.
// The zero value is not usable; construct via New or NewFromSlice.
type Queue[T any] struct {
	inner *innerHeap[T]
}

// New returns an empty Queue ordered by less.
// Returns ErrNilLess if less is nil.
func New[T any](less func(a, b T) bool) (*Queue[T], error) {
	if less == nil {
		return nil, ErrNilLess
	}

	return &Queue[T]{inner: &innerHeap[T]{less: less}}, nil
}

// NewFromSlice returns a Queue seeded with items, ordered by less.
// The input slice is copied; later mutation of items does not affect the queue.
// Returns ErrNilLess if less is nil.
// Complexity: O(N) via heap.Init.
func NewFromSlice[T any](items []T, less func(a, b T) bool) (*Queue[T], error) {
	if less == nil {
		return nil, ErrNilLess
	}
	ih := &innerHeap[T]{
		items: make([]T, len(items)),
		less:  less,
	}
	copy(ih.items, items)
	heap.Init(ih)

	return &Queue[T]{inner: ih}, nil
}

// Len reports the number of queued elements.
// Complexity: O(1).
func (q *Queue[T]) Len() int { return len(q.inner.items) }

// Push inserts item into the queue.
// Complexity: O(log N) amortized.
func (q *Queue[T]) Push(item T) {
	heap.Push(q.inner, item)
}

// Pop removes and returns the minimum element.
// Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(log N) amortized.
func (q *Queue[T]) Pop() (T, error) {
	if len(q.inner.items) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return heap.Pop(q.inner).(T), nil
}

// Peek returns the minimum element without removing it.
// Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(1).
func (q *Queue[T]) Peek() (T, error) {
	if len(q.inner.items) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.inner.items[0], nil
}

// innerHeap implements heap.Interface for a min-heap of T, ordered by less.
type innerHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// Len returns the number of elements in the heap.
func (h innerHeap[T]) Len() int { return len(h.items) }

// Less reports whether element i should sort before j under the queue order.
func (h innerHeap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }

// Swap swaps elements at indices i and j.
func (h innerHeap[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push appends a new element; called by heap.Push.
func (h *innerHeap[T]) Push(x interface{}) { h.items = append(h.items, x.(T)) }

// Pop removes and returns the last element after heap adjustments;
// called by heap.Pop.
func (h *innerHeap[T]) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]

	return item
}
