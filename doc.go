// Package gridpath finds shortest paths on fixed-size 2D grids with blocked
// cells using A* with a Euclidean heuristic.
//
// It exposes these entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//   - SearchAll: run many independent searches over one grid with a bounded worker pool.
//   - FindPath: a stateless function over plain integers for host environments.
//
// Moves go to the 8 surrounding cells; orthogonal steps cost 1 and diagonal
// steps cost √2. Paths are returned in target-to-source order; use Reverse
// when source-to-target order is needed.
package gridpath
