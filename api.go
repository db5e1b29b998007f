package gridastar

import (
	"fmt"
	"runtime"
)

// Result contains the outcome of a search
type Result struct {
	// Path runs from the cell after Start through Goal. Empty when unreachable.
	Path          []Point
	TotalCost     int
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	LegacyScan      bool
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many grids RunBatch searches at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithLegacyScan selects the next open cell with a linear scan over the open
// list in insertion order instead of the binary heap. Among several equally
// cheap paths the two strategies can return different ones.
func WithLegacyScan() Option {
	return func(options *Options) { options.LegacyScan = true }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}

// Search runs A* from the grid's Start cell to its Goal cell.
// An unreachable goal is not an error: the Result has Found == false and an
// empty Path. A grid without Start or Goal yields ErrMissingEndpoint.
func Search(grid *Grid, options ...Option) (Result, error) {
	state, err := newSearch(grid, applyOptions(options))
	if err != nil {
		return Result{}, err
	}
	return state.run(), nil
}

// Run is Search returning only the path.
func Run(grid *Grid, options ...Option) ([]Point, error) {
	result, err := Search(grid, options...)
	if err != nil {
		return nil, err
	}
	return result.Path, nil
}

// search holds the state of one A* run. Costs and parents live on the grid.
type search struct {
	grid    *Grid
	start   int
	goal    int
	open    frontier
	visited []bool

	current       int // last expanded cell, -1 before the first expansion
	expandedNodes int
	done          bool
	found         bool
}

func newSearch(grid *Grid, options Options) (*search, error) {
	// --- Locate endpoints ---
	startCell, err := grid.FindFirst(Start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingEndpoint, err)
	}
	goalCell, err := grid.FindFirst(Goal)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingEndpoint, err)
	}

	// --- Initialize state ---
	state := &search{
		grid:    grid,
		start:   grid.index(startCell.X, startCell.Y),
		goal:    grid.index(goalCell.X, goalCell.Y),
		open:    newFrontier(grid, options.LegacyScan),
		visited: make([]bool, len(grid.cells)),
		current: -1,
	}
	startCell.GCost = 0
	startCell.HCost = Distance(startCell.Point, goalCell.Point)
	startCell.Parent = NoParent
	state.open.add(state.start)
	return state, nil
}

// expand finalizes the best open cell and relaxes its neighbors.
func (s *search) expand() {
	if s.done {
		return
	}
	if s.open.size() == 0 {
		s.done = true
		return
	}

	currentIndex := s.open.next()
	s.visited[currentIndex] = true
	s.current = currentIndex
	s.expandedNodes++

	// Goal check
	if currentIndex == s.goal {
		s.done = true
		s.found = true
		return
	}

	current := &s.grid.cells[currentIndex]
	goal := &s.grid.cells[s.goal]
	for _, neighbor := range Adjacent(s.grid, current) {
		neighborIndex := s.grid.index(neighbor.X, neighbor.Y)
		if neighbor.Type == Wall || s.visited[neighborIndex] {
			continue
		}

		tentativeG := current.GCost + Distance(current.Point, neighbor.Point)
		inOpen := s.open.has(neighborIndex)
		if tentativeG < neighbor.GCost || !inOpen {
			neighbor.GCost = tentativeG
			neighbor.HCost = Distance(neighbor.Point, goal.Point)
			neighbor.Parent = currentIndex
			if inOpen {
				s.open.fix(neighborIndex)
			} else {
				s.open.add(neighborIndex)
			}
		}
	}
}

func (s *search) run() Result {
	for !s.done {
		s.expand()
	}
	return s.result()
}

func (s *search) result() Result {
	if !s.found {
		return Result{Path: []Point{}, ExpandedNodes: s.expandedNodes}
	}
	return Result{
		Path:          s.path(),
		TotalCost:     s.grid.cells[s.goal].GCost,
		ExpandedNodes: s.expandedNodes,
		Found:         true,
	}
}

func (s *search) path() []Point {
	return GeneratePath(s.grid, &s.grid.cells[s.start], &s.grid.cells[s.goal])
}
