// Package obstacle turns rectangular obstacle regions into grid walls.
//
// Obstacles are axis-aligned bounds in grid units: cell (x, y) covers
// [x, x+1) x [y, y+1) and is blocked when its centre lies inside (or on the
// edge of) any obstacle.
package obstacle

import (
	"errors"
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"github.com/pdrpinto/gridastar"
)

// ErrInvalidBound is returned for a bound whose Max lies below its Min.
var ErrInvalidBound = errors.New("obstacle: bound max below min")

// minExtent keeps degenerate (line or point) obstacles indexable.
const minExtent = 1e-9

// entry wraps an obstacle for R-tree storage
type entry struct {
	bound orb.Bound
	rect  rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *entry) Bounds() rtreego.Rect {
	return e.rect
}

// Index answers which obstacles cover a point or region.
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex builds an R-tree over the given obstacle bounds.
func NewIndex(bounds []orb.Bound) (*Index, error) {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	for i, bound := range bounds {
		rect, err := toRect(bound)
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		tree.Insert(&entry{bound: bound, rect: rect})
	}

	return &Index{tree: tree}, nil
}

// Len returns the number of indexed obstacles.
func (ix *Index) Len() int {
	return ix.tree.Size()
}

// Blocked reports whether the centre of cell (x, y) lies inside an obstacle.
func (ix *Index) Blocked(x, y int) bool {
	centre := orb.Point{float64(x) + 0.5, float64(y) + 0.5}
	for _, item := range ix.tree.SearchIntersect(rtreego.Point{centre.X(), centre.Y()}.ToRect(minExtent)) {
		if item.(*entry).bound.Contains(centre) {
			return true
		}
	}
	return false
}

// Query returns the obstacles intersecting bound.
func (ix *Index) Query(bound orb.Bound) []orb.Bound {
	rect, err := toRect(bound)
	if err != nil {
		return []orb.Bound{}
	}

	results := ix.tree.SearchIntersect(rect)
	bounds := make([]orb.Bound, 0, len(results))
	for _, item := range results {
		bounds = append(bounds, item.(*entry).bound)
	}
	return bounds
}

// Rasterize turns every blocked Empty or PathMarker cell of grid into a Wall
// and returns how many cells changed. Start and Goal are never overwritten.
func Rasterize(grid *gridastar.Grid, ix *Index) int {
	changed := 0
	for point, cell := range grid.All() {
		if cell.Type != gridastar.Empty && cell.Type != gridastar.PathMarker {
			continue
		}
		if ix.Blocked(point.X, point.Y) {
			cell.Type = gridastar.Wall
			changed++
		}
	}
	return changed
}

func toRect(bound orb.Bound) (rtreego.Rect, error) {
	width := bound.Max.X() - bound.Min.X()
	height := bound.Max.Y() - bound.Min.Y()
	if width < 0 || height < 0 {
		return rtreego.Rect{}, fmt.Errorf("%w: %v", ErrInvalidBound, bound)
	}

	return rtreego.NewRect(
		rtreego.Point{bound.Min.X(), bound.Min.Y()},
		[]float64{max(width, minExtent), max(height, minExtent)},
	)
}
