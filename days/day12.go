package days

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/solve"
	"github.com/katalvlaran/advent/unionfind"
)

func init() {
	solve.Register(12, 1, day12Part1)
	solve.Register(12, 2, day12Part2)
}

// Day 12: the grid is a map of plots labelled by letter; a region is a
// maximal 4-connected group of equal letters. Part 1 prices each region at
// area × perimeter, part 2 at area × number of straight fence sides.

// day12Regions parses the grid, builds the same-letter neighbor cache under
// the requested connectivity, and groups cells into regions with a union-find
// over cardinal matches.
func day12Regions(lines []string, conn grid.Connectivity) ([][]grid.NeighborSet, [][]grid.Coord, error) {
	g, err := grid.New(lines)
	if err != nil {
		return nil, nil, fmt.Errorf("day 12: %w", err)
	}

	nbrs, err := g.MatchingNeighbors(grid.WithConnectivity(conn))
	if err != nil {
		return nil, nil, fmt.Errorf("day 12: %w", err)
	}

	forest := unionfind.New[grid.Coord]()
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			forest.Add(grid.Coord{Row: row, Col: col})
		}
	}
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			at := grid.Coord{Row: row, Col: col}
			for _, w := range nbrs[row][col].CardinalCoords() {
				if err := forest.Union(at, w); err != nil {
					return nil, nil, fmt.Errorf("day 12: %w", err)
				}
			}
		}
	}

	return nbrs, forest.Sets(), nil
}

// day12Part1 sums area × perimeter over all regions. A cell contributes one
// fence unit per cardinal side not shared with its own region, so the
// cardinal-only cache suffices.
func day12Part1(lines []string) (string, error) {
	nbrs, regions, err := day12Regions(lines, grid.Conn4)
	if err != nil {
		return "", err
	}

	total := 0
	for _, region := range regions {
		area := len(region)
		perimeter := 0
		for _, v := range region {
			perimeter += 4 - nbrs[v.Row][v.Col].NumCardinals()
		}
		total += area * perimeter
	}

	return strconv.Itoa(total), nil
}

// day12Part2 sums area × number of sides. A region has exactly as many
// straight sides as corners, and corners are local: for each cell and each
// pair of adjacent cardinals, a convex corner has neither neighbor in the
// region, a concave corner has both but not the diagonal between them.
// The corner test consults diagonals, so this part needs the full cache.
func day12Part2(lines []string) (string, error) {
	nbrs, regions, err := day12Regions(lines, grid.Conn8)
	if err != nil {
		return "", err
	}

	cardinals := grid.Cardinals()

	total := 0
	for _, region := range regions {
		area := len(region)
		corners := 0
		for _, v := range region {
			ns := &nbrs[v.Row][v.Col]
			for i, d1 := range cardinals {
				d2 := cardinals[(i+1)%len(cardinals)]
				switch {
				case !ns.Has(d1) && !ns.Has(d2):
					corners++
				case ns.Has(d1) && ns.Has(d2):
					diagonal, err := grid.Combine(d1, d2)
					if err != nil {
						return "", fmt.Errorf("day 12: %w", err)
					}
					if !ns.Has(diagonal) {
						corners++
					}
				}
			}
		}
		total += area * corners
	}

	return strconv.Itoa(total), nil
}
