// Package advent is a yearly pile of daily puzzle solutions, together with
// the small, reusable data structures they lean on.
//
// 🚀 What is advent?
//
//	A plain-Go playground for an annual coding challenge:
//		• Solvers: one pure function per (day, part), registered in a static table
//		• Dispatch: solve/ maps a (day, part) pair to its solver or fails loudly
//		• Utilities: pq/ (min-priority queue), unionfind/ (disjoint sets),
//		  search/ (BFS over implicit graphs), grid/ (2D character grids)
//
// ✨ Why this shape?
//
//   - Each day is independent – no shared state, no ordering between solvers
//   - Utilities are standalone value types – construct, mutate, query, done
//   - Everything fails explicitly – unknown days, empty queues, ragged grids
//
// The packages:
//
//	cmd/advent/ — cobra CLI: `advent <day> <part> [input-path]`, `advent list`
//	solve/      — the (day, part) → solver registry
//	days/       — the per-day solver implementations
//	grid/       — rectangular rune grids, directions, neighbor caches
//	search/     — breadth-first helpers over neighbor functions
//	unionfind/  — disjoint-set forest with path compression
//	pq/         — generic min-priority queue
//	input/      — line reading and the inputs/input<day>.txt convention
//
// Run a day:
//
//	go run ./cmd/advent 12 1 days/testdata/day12.txt
//
//	go get github.com/katalvlaran/advent
package advent
