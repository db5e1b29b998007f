package gridastar

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RunBatch searches independent grids concurrently with at most
// NumberOfWorkers searches in flight. Each grid is owned by one goroutine for
// the duration of its search, so grids must not be shared between entries.
// results[i] belongs to grids[i]. The first failing grid or a cancelled
// context stops grids that have not started yet.
func RunBatch(contextObject context.Context, grids []*Grid, options ...Option) ([]Result, error) {
	searchOptions := applyOptions(options)
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}

	results := make([]Result, len(grids))
	group, groupContext := errgroup.WithContext(contextObject)
	group.SetLimit(searchOptions.NumberOfWorkers)

	for i, grid := range grids {
		group.Go(func() error {
			if err := groupContext.Err(); err != nil {
				return err
			}
			state, err := newSearch(grid, searchOptions)
			if err != nil {
				return fmt.Errorf("grid %d: %w", i, err)
			}
			results[i] = state.run()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
