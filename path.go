package gridastar

import "github.com/pdrpinto/gridastar/internal"

// GeneratePath rebuilds the path recorded by the last search by walking
// parent links from goal. The result runs start-to-goal, start excluded.
// It is empty when the parent chain does not lead back to start.
func GeneratePath(grid *Grid, start, goal *Cell) []Point {
	startIndex := grid.index(start.X, start.Y)
	goalIndex := grid.index(goal.X, goal.Y)
	parentOf := func(index int) int { return grid.cells[index].Parent }

	indices := internal.WalkParents(parentOf, startIndex, goalIndex, len(grid.cells))
	path := make([]Point, 0, len(indices))
	for _, index := range indices {
		path = append(path, grid.cells[index].Point)
	}
	return path
}

// MarkPath tags every path cell as PathMarker except Start, Goal and Wall cells.
// Grid.Reset turns the markers back into Empty cells.
func MarkPath(grid *Grid, path []Point) error {
	for _, point := range path {
		cell, err := grid.Cell(point.X, point.Y)
		if err != nil {
			return err
		}
		switch cell.Type {
		case Start, Goal, Wall:
			continue
		}
		cell.Type = PathMarker
	}
	return nil
}

// PathCost sums the step costs of a path beginning next to start.
func PathCost(start Point, path []Point) int {
	total := 0
	previous := start
	for _, point := range path {
		total += Distance(previous, point)
		previous = point
	}
	return total
}
