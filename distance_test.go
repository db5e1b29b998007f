package gridastar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want int
	}{
		{"same", Point{2, 2}, Point{2, 2}, 0},
		{"straight x", Point{0, 0}, Point{1, 0}, D},
		{"straight y", Point{0, 0}, Point{0, 1}, D},
		{"diagonal", Point{0, 0}, Point{1, 1}, D2},
		{"wide", Point{0, 0}, Point{3, 1}, D2 + 2*D},
		{"tall", Point{0, 0}, Point{1, 3}, D2 + 2*D},
		{"negative direction", Point{4, 4}, Point{1, 2}, 2*D2 + D},
		{"long diagonal", Point{0, 0}, Point{2, 2}, 2 * D2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a))
		})
	}
}

func TestDistanceNonNegative(t *testing.T) {
	const size = 7
	for ax := 0; ax < size; ax++ {
		for ay := 0; ay < size; ay++ {
			for bx := 0; bx < size; bx++ {
				for by := 0; by < size; by++ {
					d := Distance(Point{ax, ay}, Point{bx, by})
					if d < 0 {
						t.Fatalf("Distance((%d,%d),(%d,%d)) = %d", ax, ay, bx, by, d)
					}
				}
			}
		}
	}
}

func TestAdjacent(t *testing.T) {
	grid, err := NewGrid(3, 3)
	require.NoError(t, err)

	tests := []struct {
		at   Point
		want int
	}{
		{Point{0, 0}, 3},
		{Point{2, 2}, 3},
		{Point{1, 0}, 5},
		{Point{0, 1}, 5},
		{Point{1, 1}, 8},
	}
	for _, tt := range tests {
		cell, err := grid.Cell(tt.at.X, tt.at.Y)
		require.NoError(t, err)
		neighbors := Adjacent(grid, cell)
		assert.Len(t, neighbors, tt.want, "%v", tt.at)
		for _, neighbor := range neighbors {
			assert.NotEqual(t, tt.at, neighbor.Point)
			assert.Equal(t, 1, chebyshev(tt.at, neighbor.Point))
		}
	}
}

func TestAdjacentOrderAndWalls(t *testing.T) {
	grid := newTestGrid(t, 3, 3, Point{0, 0}, Point{2, 2}, Point{1, 0})
	center, err := grid.Cell(1, 1)
	require.NoError(t, err)

	got := make([]Point, 0, 8)
	for _, neighbor := range Adjacent(grid, center) {
		got = append(got, neighbor.Point)
	}
	want := []Point{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	assert.Equal(t, want, got)
}
