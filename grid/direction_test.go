package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/grid"
)

// TestTurns verifies clockwise rotation and its inverse across all directions.
func TestTurns(t *testing.T) {
	wantRight := map[grid.Direction]grid.Direction{
		grid.N: grid.E, grid.E: grid.S, grid.S: grid.W, grid.W: grid.N,
		grid.NE: grid.SE, grid.SE: grid.SW, grid.SW: grid.NW, grid.NW: grid.NE,
	}
	for d, want := range wantRight {
		assert.Equal(t, want, d.TurnRight(), "%v.TurnRight()", d)
		assert.Equal(t, d, want.TurnLeft(), "%v.TurnLeft()", want)
	}
}

// TestReflect verifies reflection is an involution mapping to the opposite side.
func TestReflect(t *testing.T) {
	assert.Equal(t, grid.S, grid.N.Reflect())
	assert.Equal(t, grid.SW, grid.NE.Reflect())
	assert.Equal(t, grid.E, grid.W.Reflect())
	for d := grid.Direction(0); d < 8; d++ {
		assert.Equal(t, d, d.Reflect().Reflect(), "%v double reflect", d)
	}
}

// TestCombine covers every perpendicular cardinal pair and the failure modes.
func TestCombine(t *testing.T) {
	cases := []struct {
		a, b grid.Direction
		want grid.Direction
	}{
		{grid.N, grid.E, grid.NE},
		{grid.E, grid.N, grid.NE},
		{grid.E, grid.S, grid.SE},
		{grid.S, grid.W, grid.SW},
		{grid.W, grid.S, grid.SW},
		{grid.N, grid.W, grid.NW},
		{grid.W, grid.N, grid.NW},
	}
	for _, tc := range cases {
		got, err := grid.Combine(tc.a, tc.b)
		require.NoError(t, err, "Combine(%v, %v)", tc.a, tc.b)
		assert.Equal(t, tc.want, got, "Combine(%v, %v)", tc.a, tc.b)
	}

	// Equal, opposite, and diagonal inputs are rejected.
	for _, bad := range [][2]grid.Direction{
		{grid.N, grid.N},
		{grid.N, grid.S},
		{grid.NE, grid.S},
		{grid.E, grid.SW},
	} {
		_, err := grid.Combine(bad[0], bad[1])
		assert.ErrorIs(t, err, grid.ErrNotPerpendicular, "Combine(%v, %v)", bad[0], bad[1])
	}
}

// TestOffsets verifies each direction's step and its String form.
func TestOffsets(t *testing.T) {
	dRow, dCol := grid.N.Offset()
	assert.Equal(t, [2]int{-1, 0}, [2]int{dRow, dCol})
	dRow, dCol = grid.SE.Offset()
	assert.Equal(t, [2]int{1, 1}, [2]int{dRow, dCol})

	assert.Equal(t, "NW", grid.NW.String())
	assert.Equal(t, "?", grid.Direction(42).String())

	assert.True(t, grid.S.IsCardinal())
	assert.False(t, grid.SW.IsCardinal())
}

// TestOffset_InvalidDirection pins the zero step for out-of-range values,
// matching the "?" / false behavior of String and IsCardinal.
func TestOffset_InvalidDirection(t *testing.T) {
	for _, d := range []grid.Direction{grid.Direction(-1), grid.Direction(42)} {
		dRow, dCol := d.Offset()
		assert.Equal(t, [2]int{0, 0}, [2]int{dRow, dCol}, "Offset(%d)", int(d))
	}
}
