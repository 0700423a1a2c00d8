package grid

// NeighborSet records, for one cell, which of its eight adjacent cells hold
// the same rune, indexed by Direction.
type NeighborSet struct {
	coords  [numDirections]Coord
	present [numDirections]bool
	count   int
}

// add records c as the neighbor in direction d.
func (ns *NeighborSet) add(d Direction, c Coord) {
	if !ns.present[d] {
		ns.count++
	}
	ns.present[d] = true
	ns.coords[d] = c
}

// Get returns the matching neighbor in direction d, if any.
func (ns *NeighborSet) Get(d Direction) (Coord, bool) {
	if d < 0 || d >= numDirections || !ns.present[d] {
		return Coord{}, false
	}

	return ns.coords[d], true
}

// Has reports whether a matching neighbor exists in direction d.
func (ns *NeighborSet) Has(d Direction) bool {
	return d >= 0 && d < numDirections && ns.present[d]
}

// Count reports the total number of matching neighbors (all eight directions).
func (ns *NeighborSet) Count() int { return ns.count }

// NumCardinals reports how many of the four cardinal neighbors match.
func (ns *NeighborSet) NumCardinals() int {
	n := 0
	for _, d := range Cardinals() {
		if ns.present[d] {
			n++
		}
	}

	return n
}

// CardinalCoords returns the coordinates of the matching cardinal neighbors
// in clockwise order (N, E, S, W).
func (ns *NeighborSet) CardinalCoords() []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range Cardinals() {
		if ns.present[d] {
			out = append(out, ns.coords[d])
		}
	}

	return out
}

// MatchingNeighbors builds the per-cell neighbor cache for the whole grid:
// result[row][col] describes the adjacent cells whose rune equals the rune
// at (row, col). By default all eight directions are examined;
// WithConnectivity(Conn4) limits the cache to cardinal neighbors.
// Complexity: O(W×H) time and memory (up to eight lookups per cell).
func (g *Grid) MatchingNeighbors(opts ...NeighborOption) ([][]NeighborSet, error) {
	o, err := buildNeighborOptions(opts)
	if err != nil {
		return nil, err
	}

	dirs := o.directions()
	out := make([][]NeighborSet, g.height)
	for row := 0; row < g.height; row++ {
		out[row] = make([]NeighborSet, g.width)
		for col := 0; col < g.width; col++ {
			cur := g.cells[row][col]
			at := Coord{Row: row, Col: col}
			for _, d := range dirs {
				nbr := at.Step(d)
				if g.InBounds(nbr) && g.cells[nbr.Row][nbr.Col] == cur {
					out[row][col].add(d, nbr)
				}
			}
		}
	}

	return out, nil
}
