// Package gridastar provides A* shortest-path search over a uniform 2D grid
// with 8-directional movement.
//
// It exposes three entry points:
//
//   - Search / Run: run the algorithm to completion and get a Result or a path.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//   - RunBatch: search many independent grids on a bounded worker pool.
//
// Search state (g cost, h cost, parent) lives on the Grid cells. Call
// Grid.Reset between runs to clear it along with any path markers.
package gridastar
