package search

import "errors"

// Sentinel errors for search helpers.
var (
	// ErrNilNeighbors is returned when the neighbors function is nil.
	ErrNilNeighbors = errors.New("search: neighbors function is nil")

	// ErrNilPredicate is returned when a target predicate is nil.
	ErrNilPredicate = errors.New("search: target predicate is nil")

	// ErrNoPath is returned by ShortestPath when dst cannot be reached from src.
	ErrNoPath = errors.New("search: no path to destination")
)

// depthOf pairs a queued vertex with its distance from the source in edges.
type depthOf[T comparable] struct {
	v T
	d int
}

// CountReachable reports how many vertices satisfying isTarget are reachable
// from src, counting src itself if it is a target.
// Each vertex is counted once no matter how many paths lead to it.
// With WithMaxDepth(d), vertices more than d edges from src are not explored.
func CountReachable[T comparable](src T, isTarget func(T) bool, neighbors func(T) []T, opts ...Option) (int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if neighbors == nil {
		return 0, ErrNilNeighbors
	}
	if isTarget == nil {
		return 0, ErrNilPredicate
	}

	count := 0
	if isTarget(src) {
		count++
	}

	visited := map[T]bool{src: true}
	queue := []depthOf[T]{{v: src, d: 0}}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if !o.withinLimit(u.d + 1) {
			continue
		}
		for _, nbr := range neighbors(u.v) {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			queue = append(queue, depthOf[T]{v: nbr, d: u.d + 1})
			if isTarget(nbr) {
				count++
			}
		}
	}

	return count, nil
}

// PathExists reports whether any path leads from src to dst.
// A vertex trivially reaches itself.
// With WithMaxDepth(d), paths longer than d edges are not considered.
func PathExists[T comparable](src, dst T, neighbors func(T) []T, opts ...Option) (bool, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return false, err
	}
	if neighbors == nil {
		return false, ErrNilNeighbors
	}
	if src == dst {
		return true, nil
	}

	visited := map[T]bool{src: true}
	queue := []depthOf[T]{{v: src, d: 0}}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if !o.withinLimit(u.d + 1) {
			continue
		}
		for _, nbr := range neighbors(u.v) {
			if visited[nbr] {
				continue
			}
			if nbr == dst {
				return true, nil
			}
			visited[nbr] = true
			queue = append(queue, depthOf[T]{v: nbr, d: u.d + 1})
		}
	}

	return false, nil
}

// ShortestPath returns the vertices of one fewest-edge path from src to dst,
// inclusive of both endpoints. For src == dst the path is [src].
// Returns ErrNoPath if dst is unreachable; with WithMaxDepth(d) a destination
// more than d edges away counts as unreachable.
func ShortestPath[T comparable](src, dst T, neighbors func(T) []T, opts ...Option) ([]T, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}
	if src == dst {
		return []T{src}, nil
	}

	// parent[v] is the vertex from which v was first discovered;
	// src is present with itself as parent so membership doubles as "visited".
	parent := map[T]T{src: src}
	queue := []depthOf[T]{{v: src, d: 0}}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if !o.withinLimit(u.d + 1) {
			continue
		}
		for _, nbr := range neighbors(u.v) {
			if _, seen := parent[nbr]; seen {
				continue
			}
			parent[nbr] = u.v
			if nbr == dst {
				return buildPath(parent, src, dst), nil
			}
			queue = append(queue, depthOf[T]{v: nbr, d: u.d + 1})
		}
	}

	return nil, ErrNoPath
}

// buildPath walks parent links from dst back to src and reverses the result.
func buildPath[T comparable](parent map[T]T, src, dst T) []T {
	path := []T{dst}
	for cur := dst; cur != src; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// CountPaths returns the number of distinct paths from src to any vertex
// satisfying isTarget, where a path stops at the first target it reaches.
// The graph below src must be acyclic (up to targets) and src itself is
// assumed not to be a target.
func CountPaths[T comparable](src T, isTarget func(T) bool, neighbors func(T) []T) (int, error) {
	if neighbors == nil {
		return 0, ErrNilNeighbors
	}
	if isTarget == nil {
		return 0, ErrNilPredicate
	}

	return countPaths(src, isTarget, neighbors), nil
}

// countPaths is the validated recursive core of CountPaths.
func countPaths[T comparable](src T, isTarget func(T) bool, neighbors func(T) []T) int {
	count := 0
	for _, nbr := range neighbors(src) {
		if isTarget(nbr) {
			count++
		} else {
			count += countPaths(nbr, isTarget, neighbors)
		}
	}

	return count
}
