package gridastar

import (
	"fmt"
	"iter"

	"github.com/zyedidia/generic/mapset"
)

// Grid owns a fixed width x height rectangle of cells stored row-major.
// It is not safe for concurrent use.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid allocates a grid with every cell Empty and unreached.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	grid := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for index := range grid.cells {
		grid.cells[index] = Cell{Point: grid.point(index), Type: Empty}
		grid.cells[index].clearSearchState()
	}
	return grid, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// IsValid reports whether (x, y) lies inside the grid.
func (g *Grid) IsValid(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Cell returns the cell at (x, y). The pointer stays valid for the grid's lifetime.
func (g *Grid) Cell(x, y int) (*Cell, error) {
	if !g.IsValid(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return &g.cells[g.index(x, y)], nil
}

func (g *Grid) Type(x, y int) (CellType, error) {
	cell, err := g.Cell(x, y)
	if err != nil {
		return Empty, err
	}
	return cell.Type, nil
}

func (g *Grid) SetType(x, y int, cellType CellType) error {
	if !cellType.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidCellType, uint8(cellType))
	}
	cell, err := g.Cell(x, y)
	if err != nil {
		return err
	}
	cell.Type = cellType
	return nil
}

// Reset clears search state on every cell and turns path markers back into
// Empty cells. Walls, Start and Goal are kept.
func (g *Grid) Reset() {
	for index := range g.cells {
		cell := &g.cells[index]
		if cell.Type == PathMarker {
			cell.Type = Empty
		}
		cell.clearSearchState()
	}
}

// FindFirst returns the first cell of the given type in row-major order.
func (g *Grid) FindFirst(cellType CellType) (*Cell, error) {
	for index := range g.cells {
		if g.cells[index].Type == cellType {
			return &g.cells[index], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrCellNotFound, cellType)
}

// Parent returns the predecessor recorded by the last search, or nil.
func (g *Grid) Parent(cell *Cell) *Cell {
	if cell == nil || cell.Parent == NoParent {
		return nil
	}
	return &g.cells[cell.Parent]
}

// All iterates every cell in row-major order.
func (g *Grid) All() iter.Seq2[Point, *Cell] {
	return func(yield func(Point, *Cell) bool) {
		for index := range g.cells {
			if !yield(g.cells[index].Point, &g.cells[index]) {
				return
			}
		}
	}
}

// CellsOfType collects the coordinates of every cell with the given type.
func (g *Grid) CellsOfType(cellType CellType) mapset.Set[Point] {
	set := mapset.New[Point]()
	for index := range g.cells {
		if g.cells[index].Type == cellType {
			set.Put(g.cells[index].Point)
		}
	}
	return set
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

func (g *Grid) point(index int) Point {
	return Point{X: index % g.width, Y: index / g.width}
}
