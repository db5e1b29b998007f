package gridastar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepperMatchesSearch(t *testing.T) {
	walls := []Point{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {4, 5}, {4, 4}, {4, 3}, {4, 2}}
	for _, mode := range selectionModes {
		t.Run(mode.name, func(t *testing.T) {
			grid := newTestGrid(t, 7, 6, Point{0, 0}, Point{6, 5}, walls...)
			want, err := Search(grid, mode.options...)
			require.NoError(t, err)
			require.True(t, want.Found)

			grid.Reset()
			stepper, err := NewStepper(grid, mode.options...)
			require.NoError(t, err)

			calls := 0
			var snapshot StepSnapshot
			for !snapshot.Done {
				snapshot = stepper.Step()
				calls++
				assert.Equal(t, calls, snapshot.StepIndex)
				assert.True(t, snapshot.Closed.Has(snapshot.Current))
				assert.False(t, snapshot.Open.Has(snapshot.Current))
				require.LessOrEqual(t, calls, 7*6)
			}

			assert.True(t, stepper.Done())
			assert.True(t, snapshot.Found)
			assert.Equal(t, Point{6, 5}, snapshot.Current)
			assert.Equal(t, want.Path, snapshot.Path)
			assert.Equal(t, want.ExpandedNodes, calls)
			assert.Equal(t, want, stepper.Result())
		})
	}
}

func TestStepperFirstStepExpandsStart(t *testing.T) {
	grid := newTestGrid(t, 3, 3, Point{1, 1}, Point{2, 2}, Point{0, 0})
	stepper, err := NewStepper(grid)
	require.NoError(t, err)

	snapshot := stepper.Step()
	assert.Equal(t, Point{1, 1}, snapshot.Current)
	assert.Equal(t, 1, snapshot.Closed.Size())
	// every neighbor except the wall
	assert.Equal(t, 7, snapshot.Open.Size())
	assert.False(t, snapshot.Open.Has(Point{0, 0}))
	assert.False(t, snapshot.Done)
	assert.Nil(t, snapshot.Path)
}

func TestStepperUnreachable(t *testing.T) {
	grid := newTestGrid(t, 3, 1, Point{0, 0}, Point{2, 0}, Point{1, 0})
	stepper, err := NewStepper(grid)
	require.NoError(t, err)

	first := stepper.Step()
	assert.False(t, first.Done)
	assert.Zero(t, first.Open.Size())

	final := stepper.Step()
	assert.True(t, final.Done)
	assert.False(t, final.Found)
	assert.Empty(t, final.Path)
	assert.Equal(t, final, stepper.Step())
	assert.Empty(t, stepper.Result().Path)
}

func TestNewStepperMissingEndpoint(t *testing.T) {
	grid, err := NewGrid(2, 2)
	require.NoError(t, err)
	require.NoError(t, grid.SetType(0, 0, Start))

	stepper, err := NewStepper(grid)
	assert.ErrorIs(t, err, ErrMissingEndpoint)
	assert.Nil(t, stepper)
}
