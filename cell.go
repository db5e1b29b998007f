package gridastar

import (
	"fmt"
	"math"
)

// CellType tags what occupies a grid cell.
type CellType uint8

const (
	Empty CellType = iota
	Wall
	Start
	Goal
	PathMarker
)

func (t CellType) String() string {
	switch t {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case Goal:
		return "goal"
	case PathMarker:
		return "path"
	}
	return fmt.Sprintf("CellType(%d)", uint8(t))
}

func (t CellType) valid() bool { return t <= PathMarker }

// Unreached is the sentinel cost of a cell the current search has not reached.
const Unreached = math.MaxInt

// NoParent marks a cell without a predecessor.
const NoParent = -1

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell is a single grid position plus the scratch state of the last search.
type Cell struct {
	Point
	Type CellType

	GCost int // cost from start along the best known path
	HCost int // octile estimate to goal

	// Parent is the grid index of the predecessor, or NoParent.
	Parent int
}

// FCost is GCost + HCost, saturating at Unreached.
func (c *Cell) FCost() int {
	if c.GCost == Unreached || c.HCost == Unreached {
		return Unreached
	}
	return c.GCost + c.HCost
}

func (c *Cell) clearSearchState() {
	c.GCost = Unreached
	c.HCost = Unreached
	c.Parent = NoParent
}
