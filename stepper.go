package gridastar

import (
	"github.com/zyedidia/generic/mapset"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current   Point
	Open      mapset.Set[Point]
	Closed    mapset.Set[Point]
	Done      bool
	Found     bool
	Path      []Point
	StepIndex int
}

// Stepper runs a search one expansion at a time. Stepping until Done yields
// the same path Search would return for the same grid and options.
// The grid must not be modified while a Stepper is in use.
type Stepper struct {
	state *search
}

// NewStepper prepares a step-wise search over grid.
func NewStepper(grid *Grid, options ...Option) (*Stepper, error) {
	state, err := newSearch(grid, applyOptions(options))
	if err != nil {
		return nil, err
	}
	return &Stepper{state: state}, nil
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done further calls return the final snapshot again.
func (s *Stepper) Step() StepSnapshot {
	s.state.expand()
	return s.snapshot()
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.state.done }

// Result returns the outcome so far; it is final once Done reports true.
func (s *Stepper) Result() Result { return s.state.result() }

func (s *Stepper) snapshot() StepSnapshot {
	snapshot := StepSnapshot{
		Open:      mapset.New[Point](),
		Closed:    mapset.New[Point](),
		Done:      s.state.done,
		Found:     s.state.found,
		StepIndex: s.state.expandedNodes,
	}
	if s.state.current >= 0 {
		snapshot.Current = s.state.grid.cells[s.state.current].Point
	}
	for index := range s.state.grid.cells {
		switch {
		case s.state.visited[index]:
			snapshot.Closed.Put(s.state.grid.cells[index].Point)
		case s.state.open.has(index):
			snapshot.Open.Put(s.state.grid.cells[index].Point)
		}
	}
	if s.state.found {
		snapshot.Path = s.state.path()
	}
	return snapshot
}
