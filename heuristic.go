package gridpath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// HeuristicTable holds the straight-line distance from every cell to one target.
// It is built once per search and only read afterwards.
type HeuristicTable struct {
	width  int
	values []float64
}

// BuildHeuristic computes the Euclidean distance from each cell of a
// width x height grid to target.
func BuildHeuristic(width, height int, target Cell) HeuristicTable {
	table := HeuristicTable{width: width, values: make([]float64, width*height)}
	goal := r2.Vec{X: float64(target.X), Y: float64(target.Y)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			table.values[y*width+x] = r2.Norm(r2.Sub(r2.Vec{X: float64(x), Y: float64(y)}, goal))
		}
	}
	return table
}

// At returns h for c. c must be inside the table's grid.
func (h HeuristicTable) At(c Cell) float64 { return h.values[c.Y*h.width+c.X] }

// StepCost is the cost of moving between two adjacent cells:
// 1 for an axis-aligned move and √2 for a diagonal one.
func StepCost(from, to Cell) float64 {
	if from.X == to.X || from.Y == to.Y {
		return 1.0
	}
	return math.Sqrt2
}
