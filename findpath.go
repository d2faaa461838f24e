package gridpath

import (
	"context"
	"errors"
)

// FindPath is the host-callable entry point. It takes plain integers and a
// flat wall list of alternating x,y values, keeps no state between calls and
// returns the path as a flat x,y list in target-to-source order.
//
// When the target is unreachable it returns an empty, non-nil slice together
// with ErrNoPathFound. Invalid input yields a nil slice and a
// *ConfigurationError.
func FindPath(width, height, sourceX, sourceY, targetX, targetY int, wallCoordinates []int) ([]int, error) {
	grid, err := NewGridFromPairs(width, height, wallCoordinates)
	if err != nil {
		return nil, err
	}
	result, err := Search(context.Background(), grid,
		Cell{X: sourceX, Y: sourceY}, Cell{X: targetX, Y: targetY})
	switch {
	case errors.Is(err, ErrNoPathFound):
		return []int{}, err
	case err != nil:
		return nil, err
	}
	return FlattenCells(result.Path), nil
}

// FlattenCells turns cells into alternating x,y values, keeping their order.
func FlattenCells(cells []Cell) []int {
	flat := make([]int, 0, 2*len(cells))
	for _, c := range cells {
		flat = append(flat, c.X, c.Y)
	}
	return flat
}
