package days_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/solve"
)

// One splitter under the start: the beam splits once and both halves run off
// the bottom, giving exactly two distinct paths.
var day07Tiny = []string{
	".S.",
	"...",
	".^.",
	"...",
}

func TestDay07_TinyPart1(t *testing.T) {
	got, err := solve.Run(7, 1, day07Tiny)
	require.NoError(t, err)
	assert.Equal(t, "1", got)
}

func TestDay07_TinyPart2(t *testing.T) {
	got, err := solve.Run(7, 2, day07Tiny)
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

// TestDay07_Fixture is the recorded regression pair for day 7: a cascade of
// three splitters whose beams merge in the middle column.
func TestDay07_Fixture(t *testing.T) {
	lines, err := input.ReadLines(filepath.Join("testdata", "day07.txt"))
	require.NoError(t, err)

	got, err := solve.Run(7, 1, lines)
	require.NoError(t, err)
	assert.Equal(t, "3", got)

	got, err = solve.Run(7, 2, lines)
	require.NoError(t, err)
	assert.Equal(t, "4", got)
}

// TestDay07_BadInput verifies malformed inputs fail explicitly.
func TestDay07_BadInput(t *testing.T) {
	_, err := solve.Run(7, 1, []string{"...", "..."})
	require.Error(t, err, "input without a start cell must be rejected")

	_, err = solve.Run(7, 1, []string{"S..", ".."})
	assert.ErrorIs(t, err, grid.ErrRaggedGrid)

	_, err = solve.Run(7, 2, nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}
