package gridastar

import "errors"

var (
	// ErrInvalidDimensions is returned by NewGrid for a non-positive width or height.
	ErrInvalidDimensions = errors.New("gridastar: grid dimensions must be positive")
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("gridastar: coordinate out of bounds")
	// ErrInvalidCellType is returned by SetType for an unknown CellType.
	ErrInvalidCellType = errors.New("gridastar: invalid cell type")
	// ErrCellNotFound is returned by FindFirst when no cell has the requested type.
	ErrCellNotFound = errors.New("gridastar: no cell of requested type")
	// ErrMissingEndpoint is returned by a search when the grid has no Start or no Goal cell.
	ErrMissingEndpoint = errors.New("gridastar: missing start or goal cell")
)
