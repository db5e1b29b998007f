package gridastar

import (
	"container/heap"
	"slices"
)

// frontier is the open set. Cells are addressed by grid index and their
// costs are read from the grid at selection time.
type frontier interface {
	size() int
	add(index int)
	next() int
	has(index int) bool
	// fix restores ordering after the costs of an open cell changed.
	fix(index int)
}

func newFrontier(grid *Grid, legacyScan bool) frontier {
	if legacyScan {
		return &scanList{grid: grid, member: make([]bool, len(grid.cells))}
	}
	queue := &cellQueue{grid: grid, position: make([]int, len(grid.cells))}
	for index := range queue.position {
		queue.position[index] = -1
	}
	heap.Init(queue)
	return queue
}

// cellQueue is a binary heap of grid indices ordered by lowest f cost, then
// lowest h cost. Cells tied on both come out in heap order.
type cellQueue struct {
	grid     *Grid
	items    []int
	position []int
}

func (queue cellQueue) Len() int { return len(queue.items) }
func (queue cellQueue) Less(i, j int) bool {
	a, b := &queue.grid.cells[queue.items[i]], &queue.grid.cells[queue.items[j]]
	if fa, fb := a.FCost(), b.FCost(); fa != fb {
		return fa < fb
	}
	return a.HCost < b.HCost
}
func (queue cellQueue) Swap(i, j int) {
	queue.items[i], queue.items[j] = queue.items[j], queue.items[i]
	queue.position[queue.items[i]] = i
	queue.position[queue.items[j]] = j
}

func (queue *cellQueue) Push(x any) {
	index := x.(int)
	queue.position[index] = len(queue.items)
	queue.items = append(queue.items, index)
}

func (queue *cellQueue) Pop() any {
	n := len(queue.items)
	index := queue.items[n-1]
	queue.items = queue.items[:n-1]
	queue.position[index] = -1
	return index
}

func (queue *cellQueue) size() int          { return queue.Len() }
func (queue *cellQueue) add(index int)      { heap.Push(queue, index) }
func (queue *cellQueue) next() int          { return heap.Pop(queue).(int) }
func (queue *cellQueue) has(index int) bool { return queue.position[index] >= 0 }
func (queue *cellQueue) fix(index int)      { heap.Fix(queue, queue.position[index]) }

// scanList keeps open cells in insertion order and selects with a linear
// scan: a later cell replaces the current pick only when its f cost is not
// greater and its h cost is strictly lower. Output-compatible with the
// original list-based implementation.
type scanList struct {
	grid   *Grid
	items  []int
	member []bool
}

func (list *scanList) size() int          { return len(list.items) }
func (list *scanList) has(index int) bool { return list.member[index] }
func (list *scanList) fix(int)            {}

func (list *scanList) add(index int) {
	list.items = append(list.items, index)
	list.member[index] = true
}

func (list *scanList) next() int {
	selected := 0
	for i := 1; i < len(list.items); i++ {
		candidate := &list.grid.cells[list.items[i]]
		current := &list.grid.cells[list.items[selected]]
		if candidate.FCost() <= current.FCost() && candidate.HCost < current.HCost {
			selected = i
		}
	}
	index := list.items[selected]
	list.items = slices.Delete(list.items, selected, selected+1)
	list.member[index] = false
	return index
}
