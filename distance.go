package gridastar

// Movement costs: straight steps cost D, diagonal steps cost D2 (about D*sqrt(2)).
const (
	D  = 10
	D2 = 14
)

// Distance is the octile distance between a and b. It is both the cost of a
// step between adjacent cells and the heuristic estimate towards the goal.
func Distance(a, b Point) int {
	distanceX := abs(a.X - b.X)
	distanceY := abs(a.Y - b.Y)

	if distanceX > distanceY {
		return D2*distanceY + D*(distanceX-distanceY)
	}
	return abs(D2*distanceX + D*(distanceY-distanceX))
}

// Adjacent returns the in-bounds cells of the 3x3 block around cell, excluding
// cell itself, ordered by column then row. Walls are not filtered here.
func Adjacent(grid *Grid, cell *Cell) []*Cell {
	neighbors := make([]*Cell, 0, 8)
	for x := cell.X - 1; x <= cell.X+1; x++ {
		for y := cell.Y - 1; y <= cell.Y+1; y++ {
			if !grid.IsValid(x, y) || (x == cell.X && y == cell.Y) {
				continue
			}
			neighbors = append(neighbors, &grid.cells[grid.index(x, y)])
		}
	}
	return neighbors
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
