// Package grid provides rectangular rune grids parsed from puzzle input
// lines, plus the direction algebra and neighbor caches the grid puzzles
// share.
//
// What
//
//   - Grid: an immutable 2D field of runes with bounds-checked access.
//   - Coord: a (Row, Col) pair; Row grows downward, Col grows rightward.
//   - Direction: the eight compass directions with rotation, reflection,
//     and cardinal-pair combination (N+E → NE and so on).
//   - NeighborSet / MatchingNeighbors: a per-cell cache of the up-to-eight
//     adjacent cells holding the same rune. Connectivity is selectable via
//     functional options (DefaultNeighborOptions is Conn8;
//     WithConnectivity(Conn4) keeps cardinals only).
//
// Why
//
//	Most days start with "here is a grid of characters"; parsing,
//	rectangularity validation, and adjacency bookkeeping are identical every
//	time, so they live here once and the solvers keep only their own rules.
//
// Errors
//
//   - ErrEmptyGrid      from New on zero rows or zero columns.
//   - ErrRaggedGrid     from New when row lengths differ.
//   - ErrOutOfBounds    from At on a coordinate outside the grid.
//   - ErrNotPerpendicular from Combine on anything but two perpendicular
//     cardinal directions.
//   - ErrBadConnectivity from MatchingNeighbors on a connectivity other
//     than Conn4 or Conn8.
package grid
