package grid

import "errors"

// Sentinel errors for grid construction and access.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrRaggedGrid indicates rows of differing lengths.
	ErrRaggedGrid = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Coord addresses a grid cell. Row 0 is the top line of the input and grows
// downward; Col 0 is the leftmost rune and grows rightward.
type Coord struct {
	Row, Col int
}

// Step returns the coordinate one move away in direction d.
// The result may lie outside any particular grid; pair with Grid.InBounds.
func (c Coord) Step(d Direction) Coord {
	dRow, dCol := d.Offset()
	return Coord{Row: c.Row + dRow, Col: c.Col + dCol}
}

// Grid is an immutable rectangular field of runes.
// Construct via New; the zero value is an empty grid.
type Grid struct {
	cells  [][]rune
	height int
	width  int
}

// New parses lines into a Grid, validating that the input is non-empty and
// rectangular (rune count per line, not byte count).
// The lines are copied; the Grid never aliases caller memory.
func New(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]rune, len(lines))
	for i, line := range lines {
		cells[i] = []rune(line)
	}
	width := len(cells[0])
	if width == 0 {
		return nil, ErrEmptyGrid
	}
	for _, row := range cells {
		if len(row) != width {
			return nil, ErrRaggedGrid
		}
	}

	return &Grid{cells: cells, height: len(cells), width: width}, nil
}

// Height reports the number of rows.
func (g *Grid) Height() int { return g.height }

// Width reports the number of columns.
func (g *Grid) Width() int { return g.width }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// At returns the rune stored at c.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) At(c Coord) (rune, error) {
	if !g.InBounds(c) {
		return 0, ErrOutOfBounds
	}

	return g.cells[c.Row][c.Col], nil
}

// Find returns the first coordinate (row-major order) holding r.
// The second result is false when r does not occur.
func (g *Grid) Find(r rune) (Coord, bool) {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.cells[row][col] == r {
				return Coord{Row: row, Col: col}, true
			}
		}
	}

	return Coord{}, false
}
