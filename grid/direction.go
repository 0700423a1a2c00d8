package grid

import "errors"

// ErrNotPerpendicular is returned by Combine when the two directions are not
// perpendicular cardinals.
var ErrNotPerpendicular = errors.New("grid: directions do not form a corner")

// Direction is one of the eight compass directions.
// Values run clockwise from North so that cardinals are even and diagonals
// are odd, which makes rotation and reflection pure modular arithmetic.
type Direction int

// The eight compass directions, clockwise from North.
const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW

	numDirections = 8
)

var directionNames = [numDirections]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// directionOffsets maps each Direction to its (row, col) step.
var directionOffsets = [numDirections][2]int{
	{-1, 0},  // N
	{-1, 1},  // NE
	{0, 1},   // E
	{1, 1},   // SE
	{1, 0},   // S
	{1, -1},  // SW
	{0, -1},  // W
	{-1, -1}, // NW
}

// Cardinals lists the four cardinal directions in clockwise order.
func Cardinals() [4]Direction { return [4]Direction{N, E, S, W} }

// String returns the compass abbreviation for d, or "?" for invalid values.
func (d Direction) String() string {
	if d < 0 || d >= numDirections {
		return "?"
	}

	return directionNames[d]
}

// IsCardinal reports whether d is one of N, E, S, W.
func (d Direction) IsCardinal() bool { return d >= 0 && d < numDirections && d%2 == 0 }

// Offset returns the (row, col) step taken by one move in direction d,
// or (0, 0) for invalid values.
func (d Direction) Offset() (dRow, dCol int) {
	if d < 0 || d >= numDirections {
		return 0, 0
	}

	return directionOffsets[d][0], directionOffsets[d][1]
}

// TurnRight rotates d by 90° clockwise (N→E, NE→SE, …).
func (d Direction) TurnRight() Direction { return (d + 2) % numDirections }

// TurnLeft rotates d by 90° counter-clockwise.
func (d Direction) TurnLeft() Direction { return (d + numDirections - 2) % numDirections }

// Reflect returns the opposite direction (N→S, NE→SW, …).
func (d Direction) Reflect() Direction { return (d + 4) % numDirections }

// Combine merges two perpendicular cardinal directions into the diagonal
// between them (N+E → NE, W+S → SW, order irrelevant).
// Returns ErrNotPerpendicular for non-cardinal, equal, or opposite inputs.
func Combine(a, b Direction) (Direction, error) {
	if !a.IsCardinal() || !b.IsCardinal() || a == b || a == b.Reflect() {
		return 0, ErrNotPerpendicular
	}
	// Perpendicular cardinals differ by 2 mod 8; the diagonal sits between
	// them, except for the N/W pair which wraps around to NW.
	if (a == N && b == W) || (a == W && b == N) {
		return NW, nil
	}

	return (a + b) / 2, nil
}
