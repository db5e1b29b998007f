package internal

// WalkParents follows parent links from goal back to start and returns the
// indices in start-to-goal order, start excluded and goal included.
// A chain that ends (negative parent) before reaching start, or that is longer
// than limit, yields nil.
func WalkParents(parentOf func(index int) int, start, goal, limit int) []int {
	path := make([]int, 0, 16)
	for current := goal; current != start; current = parentOf(current) {
		if current < 0 || len(path) >= limit {
			return nil
		}
		path = append(path, current)
	}

	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
