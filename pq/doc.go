// Package pq provides a generic min-priority queue over any element type,
// ordered by a user-supplied less function.
//
// What
//
//   - Queue[T] wraps container/heap behind a small, explicit API:
//   - New(less)        construct an empty queue
//   - NewFromSlice     construct and heapify an initial collection
//   - Push(item)       insert an element
//   - Pop()            remove and return the minimum element
//   - Peek()           return the minimum element without removing it
//   - Len()            number of queued elements
//
// Why
//
//   - Dijkstra-style frontiers, best-first searches, and "smallest next"
//     scheduling all reduce to the same extract-min discipline.
//   - The daily solvers own a fresh queue per invocation; nothing is shared.
//
// Determinism
//
//	Elements that compare equal under less come out in an unspecified but
//	reproducible order: the heap layout depends only on the sequence of
//	Push/Pop calls, never on randomness.
//
// Complexity (N = queued elements)
//
//   - Push:  O(log N)
//   - Pop:   O(log N)
//   - Peek:  O(1)
//   - NewFromSlice: O(N) heapify
//
// Errors
//
//   - ErrEmptyQueue from Pop or Peek on an empty queue; no zero-value
//     sentinel is ever returned silently.
package pq
