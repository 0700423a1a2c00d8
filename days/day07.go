package days

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/solve"
)

func init() {
	solve.Register(7, 1, day07Part1)
	solve.Register(7, 2, day07Part2)
}

// Day 7: beams fall from a start cell through a grid of splitters.
// Part 1 counts split events; part 2 counts distinct beam paths to the
// bottom of the grid.
const (
	day07Start    = 'S'
	day07Splitter = '^'
)

var errNoStart = errors.New("days: day 7 input has no start cell")

// manifold is the parsed day-7 field plus the running split counter.
type manifold struct {
	g      *grid.Grid
	start  grid.Coord
	splits int
}

func newManifold(lines []string) (*manifold, error) {
	g, err := grid.New(lines)
	if err != nil {
		return nil, fmt.Errorf("day 7: %w", err)
	}
	start, ok := g.Find(day07Start)
	if !ok {
		return nil, errNoStart
	}

	return &manifold{g: g, start: start}, nil
}

// runeAt reads a cell the caller already knows is in bounds.
func (m *manifold) runeAt(c grid.Coord) rune {
	r, _ := m.g.At(c)
	return r
}

// beamTargets returns where a beam at c continues: straight down through an
// empty cell, nowhere past the last row, or diagonally around a splitter
// directly below — which counts as one split event.
func (m *manifold) beamTargets(c grid.Coord) []grid.Coord {
	below := c.Step(grid.S)
	if !m.g.InBounds(below) {
		return nil
	}
	if m.runeAt(below) != day07Splitter {
		return []grid.Coord{below}
	}

	m.splits++
	out := make([]grid.Coord, 0, 2)
	if left := below.Step(grid.W); m.g.InBounds(left) {
		out = append(out, left)
	}
	if right := below.Step(grid.E); m.g.InBounds(right) {
		out = append(out, right)
	}

	return out
}

// day07Part1 advances the beam front row by row, merging beams that land on
// the same cell, until every beam has left the grid.
func day07Part1(lines []string) (string, error) {
	m, err := newManifold(lines)
	if err != nil {
		return "", err
	}

	beams := map[grid.Coord]struct{}{m.start: {}}
	for len(beams) > 0 {
		next := make(map[grid.Coord]struct{}, len(beams))
		for b := range beams {
			for _, t := range m.beamTargets(b) {
				next[t] = struct{}{}
			}
		}
		beams = next
	}

	return strconv.Itoa(m.splits), nil
}

// day07Part2 counts distinct beam paths from the start to the bottom edge.
// It builds a reverse adjacency map (each node's predecessors sit on smaller
// rows) over the splitters, a virtual bottom row, and a single sink below it,
// then accumulates path counts in row-major order.
func day07Part2(lines []string) (string, error) {
	m, err := newManifold(lines)
	if err != nil {
		return "", err
	}

	adj := m.reverseAdjacency()

	// Row-major order guarantees every predecessor is counted before the
	// nodes it feeds.
	nodes := make([]grid.Coord, 0, len(adj))
	for pos := range adj {
		nodes = append(nodes, pos)
	}
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Row != nodes[j].Row {
			return nodes[i].Row < nodes[j].Row
		}
		return nodes[i].Col < nodes[j].Col
	})

	paths := make(map[grid.Coord]int, len(nodes))
	for _, pos := range nodes {
		if pos == m.start {
			paths[pos] = 1
			continue
		}
		total := 0
		for _, pred := range adj[pos] {
			total += paths[pred]
		}
		paths[pos] = total
	}

	sink := grid.Coord{Row: m.g.Height() + 1, Col: 0}

	return strconv.Itoa(paths[sink]), nil
}

// reverseAdjacency maps each node to the nodes a beam can arrive from.
// Nodes are the start, every splitter a beam can reach, one virtual cell
// (H, c) per column for beams leaving the grid, and the sink (H+1, 0) fed by
// the whole virtual row. Predecessors of a node at (r, c): walk up column c;
// a splitter in the same column blocks the column, the start feeds it
// directly, and splitters in the adjacent columns feed it diagonally without
// blocking the walk.
func (m *manifold) reverseAdjacency() map[grid.Coord][]grid.Coord {
	height, width := m.g.Height(), m.g.Width()

	ends := make([]grid.Coord, width)
	for c := 0; c < width; c++ {
		ends[c] = grid.Coord{Row: height, Col: c}
	}

	adj := make(map[grid.Coord][]grid.Coord)
	scheduled := make(map[grid.Coord]struct{}, width)
	frontier := make([]grid.Coord, 0, width)
	for _, e := range ends {
		scheduled[e] = struct{}{}
		frontier = append(frontier, e)
	}

	schedule := func(next *[]grid.Coord, pos grid.Coord) {
		if _, ok := scheduled[pos]; !ok {
			scheduled[pos] = struct{}{}
			*next = append(*next, pos)
		}
	}

	for len(frontier) > 0 {
		var next []grid.Coord
		for _, pos := range frontier {
			var preds []grid.Coord
			for row := pos.Row - 1; row >= 0; row-- {
				same := grid.Coord{Row: row, Col: pos.Col}
				if m.runeAt(same) == day07Splitter {
					break
				}
				if m.runeAt(same) == day07Start {
					preds = append(preds, same)
					schedule(&next, same)
					break
				}
				if left := (grid.Coord{Row: row, Col: pos.Col - 1}); pos.Col > 0 && m.runeAt(left) == day07Splitter {
					preds = append(preds, left)
					schedule(&next, left)
				}
				if right := (grid.Coord{Row: row, Col: pos.Col + 1}); pos.Col+1 < width && m.runeAt(right) == day07Splitter {
					preds = append(preds, right)
					schedule(&next, right)
				}
			}
			adj[pos] = preds
		}
		frontier = next
	}

	adj[grid.Coord{Row: height + 1, Col: 0}] = ends

	return adj
}
