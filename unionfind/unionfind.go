// Package unionfind provides a disjoint-set forest (union-find) over any
// comparable element type, with path compression and union by rank.
//
// A Forest partitions the elements added to it into disjoint sets.
// Union merges the sets containing two elements; Find returns the canonical
// representative of an element's set; Sets flattens the current partition.
//
// Complexity: amortized near-O(1) (inverse Ackermann) per Find/Union.
// Memory: O(N) for N added elements.
//
// Operations on elements that were never added fail with ErrUnknownElement
// rather than inventing singleton sets on the fly.
package unionfind

import "errors"

// ErrUnknownElement is returned when Find, Union, or SameSet is called with
// an element that was never added to the forest.
var ErrUnknownElement = errors.New("unionfind: element not in forest")

// Forest is a disjoint-set forest over T.
// The zero value is not usable; construct via New.
type Forest[T comparable] struct {
	parent map[T]T
	rank   map[T]int
	elems  []T // insertion order, for deterministic Sets output
}

// New returns an empty Forest.
func New[T comparable]() *Forest[T] {
	return &Forest[T]{
		parent: make(map[T]T),
		rank:   make(map[T]int),
	}
}

// Add inserts x as a new singleton set and reports whether it was inserted.
// Adding an element that is already present is a no-op returning false, and
// never disturbs the set x currently belongs to.
func (f *Forest[T]) Add(x T) bool {
	if _, ok := f.parent[x]; ok {
		return false
	}
	f.parent[x] = x
	f.rank[x] = 0
	f.elems = append(f.elems, x)

	return true
}

// Len reports the number of elements added to the forest.
func (f *Forest[T]) Len() int { return len(f.elems) }

// Find returns the canonical representative of the set containing x.
// Representatives are stable between unions: two elements are in the same
// set exactly when their representatives are equal.
// Returns ErrUnknownElement if x was never added.
func (f *Forest[T]) Find(x T) (T, error) {
	if _, ok := f.parent[x]; !ok {
		var zero T
		return zero, ErrUnknownElement
	}

	return f.find(x), nil
}

// find walks to the root with iterative path compression
// (each step points x at its grandparent).
func (f *Forest[T]) find(x T) T {
	for f.parent[x] != x {
		f.parent[x] = f.parent[f.parent[x]]
		x = f.parent[x]
	}

	return x
}

// Union merges the sets containing a and b.
// Merging two elements already in the same set is a no-op.
// Returns ErrUnknownElement if either element was never added.
func (f *Forest[T]) Union(a, b T) error {
	if _, ok := f.parent[a]; !ok {
		return ErrUnknownElement
	}
	if _, ok := f.parent[b]; !ok {
		return ErrUnknownElement
	}

	rootA, rootB := f.find(a), f.find(b)
	if rootA == rootB {
		return nil
	}
	// Attach the smaller-rank tree under the larger-rank root.
	if f.rank[rootA] < f.rank[rootB] {
		f.parent[rootA] = rootB
	} else {
		f.parent[rootB] = rootA
		if f.rank[rootA] == f.rank[rootB] {
			f.rank[rootA]++
		}
	}

	return nil
}

// SameSet reports whether a and b currently belong to the same set.
// Returns ErrUnknownElement if either element was never added.
func (f *Forest[T]) SameSet(a, b T) (bool, error) {
	rootA, err := f.Find(a)
	if err != nil {
		return false, err
	}
	rootB, err := f.Find(b)
	if err != nil {
		return false, err
	}

	return rootA == rootB, nil
}

// Sets flattens the forest into its disjoint sets.
// Sets appear in order of their earliest-added member, and members within a
// set appear in insertion order, so repeated calls on an equivalent forest
// yield identical output.
// Complexity: O(N α(N)).
func (f *Forest[T]) Sets() [][]T {
	index := make(map[T]int, len(f.elems)) // root → position in out
	out := make([][]T, 0)
	for _, x := range f.elems {
		root := f.find(x)
		i, ok := index[root]
		if !ok {
			i = len(out)
			index[root] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], x)
	}

	return out
}
