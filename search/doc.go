// Package search provides breadth-first helpers over implicit graphs:
// graphs described by a neighbors function rather than a stored structure.
//
// What
//
//   - CountReachable: how many target vertices can be reached from a source.
//   - PathExists:     is there any path from source to destination.
//   - ShortestPath:   one fewest-edge path from source to destination.
//   - CountPaths:     number of distinct source→target paths in an acyclic graph.
//
// Why
//
//	Puzzle graphs are usually implicit — a grid cell's neighbors, a state's
//	successors — and materializing them first is wasted work. Passing a
//	`func(T) []T` keeps each solver's adjacency rule next to its parsing code.
//
// Options
//
//	The breadth-first helpers accept functional options built on
//	DefaultOptions(). WithMaxDepth(d) bounds the traversal to d edges from
//	the source; d == 0 explicitly disables the limit.
//
// Determinism
//
//	Traversal follows the exact order in which the neighbors function returns
//	vertices, so for a deterministic neighbors function every result
//	(including ShortestPath's tie-breaking) is reproducible.
//
// Complexity (V = reachable vertices, E = edges among them)
//
//   - CountReachable, PathExists, ShortestPath: O(V + E) time, O(V) memory.
//   - CountPaths: O(paths) time worst case — it intentionally re-walks
//     shared suffixes, matching its "count every distinct path" contract.
//     Callers must guarantee acyclicity; a cycle reachable from src without
//     an intervening target does not terminate.
//
// Errors
//
//   - ErrOptionViolation if an invalid Option is supplied (negative depth).
//   - ErrNilNeighbors if the neighbors function is nil.
//   - ErrNilPredicate if a target predicate is nil.
//   - ErrNoPath from ShortestPath when the destination is unreachable
//     (or lies beyond the configured depth limit).
package search
