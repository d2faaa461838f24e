package gridpath

import "fmt"

// reconstructPath follows parent links from target until it reaches a cell
// without a parent. The result is in target-to-source order.
//
// A walk longer than the number of cells means the links contain a cycle;
// a walk that stops anywhere but source means a link is missing. Both are
// reported as ErrPathCorruption.
func reconstructPath(grid *Grid, relation []int, source, target Cell) ([]Cell, error) {
	limit := grid.width * grid.height
	path := []Cell{target}
	current := grid.index(target)
	for relation[current] != -1 {
		if len(path) >= limit {
			return nil, fmt.Errorf("%w: walk from %v exceeds %d cells", ErrPathCorruption, target, limit)
		}
		current = relation[current]
		path = append(path, grid.cellAt(current))
	}
	if end := path[len(path)-1]; end != source {
		return nil, fmt.Errorf("%w: walk from %v stopped at %v, not source %v", ErrPathCorruption, target, end, source)
	}
	return path, nil
}

// Reverse returns a copy of path in the opposite order, turning a Result
// path into source-to-target order.
func Reverse(path []Cell) []Cell {
	reversed := make([]Cell, len(path))
	for i, c := range path {
		reversed[len(path)-1-i] = c
	}
	return reversed
}

// PathCost sums StepCost over consecutive cells of path.
func PathCost(path []Cell) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += StepCost(path[i-1], path[i])
	}
	return total
}
