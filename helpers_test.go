package gridastar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestGrid builds a grid with the given endpoints and walls.
func newTestGrid(t testing.TB, width, height int, start, goal Point, walls ...Point) *Grid {
	t.Helper()
	grid, err := NewGrid(width, height)
	require.NoError(t, err)
	require.NoError(t, grid.SetType(start.X, start.Y, Start))
	require.NoError(t, grid.SetType(goal.X, goal.Y, Goal))
	for _, wall := range walls {
		require.NoError(t, grid.SetType(wall.X, wall.Y, Wall))
	}
	return grid
}

func chebyshev(a, b Point) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}
