package gridpath

import (
	"fmt"

	"github.com/pdrpinto/gridpath/internal"
)

// Cell is a grid coordinate. X grows to the right, Y grows downwards.
type Cell struct {
	X int
	Y int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// MaxCells bounds width*height. A search allocates several tables of this
// many entries.
const MaxCells = 1 << 26

// Grid is a static occupancy map. It is never modified after NewGrid returns,
// so one Grid may be shared by any number of concurrent searches.
type Grid struct {
	width   int
	height  int
	blocked []bool
}

// NewGrid builds a width x height grid with every cell in walls blocked.
func NewGrid(width, height int, walls []Cell) (*Grid, error) {
	if width <= 0 {
		return nil, configErrorf("width", "must be positive, got %d", width)
	}
	if height <= 0 {
		return nil, configErrorf("height", "must be positive, got %d", height)
	}
	if width > MaxCells/height {
		return nil, configErrorf("size", "%dx%d exceeds %d cells", width, height, MaxCells)
	}
	grid := &Grid{
		width:   width,
		height:  height,
		blocked: make([]bool, width*height),
	}
	for i, wall := range walls {
		if !grid.InBounds(wall) {
			return nil, configErrorf("walls", "coordinate %d %v outside %dx%d grid", i, wall, width, height)
		}
		grid.blocked[grid.index(wall)] = true
	}
	return grid, nil
}

// NewGridFromPairs is NewGrid over a flat list of alternating x,y values.
func NewGridFromPairs(width, height int, flat []int) (*Grid, error) {
	pairs, err := internal.Pairs(flat)
	if err != nil {
		return nil, configErrorf("walls", "%v", err)
	}
	walls := make([]Cell, len(pairs))
	for i, p := range pairs {
		walls[i] = Cell{X: p[0], Y: p[1]}
	}
	return NewGrid(width, height, walls)
}

// Width is the number of columns.
func (g *Grid) Width() int { return g.width }

// Height is the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Blocked reports whether c is a wall. Cells outside the grid are not walls.
func (g *Grid) Blocked(c Cell) bool {
	return g.InBounds(c) && g.blocked[g.index(c)]
}

// Walls lists the blocked cells in row-major order.
func (g *Grid) Walls() []Cell {
	var walls []Cell
	for i, b := range g.blocked {
		if b {
			walls = append(walls, g.cellAt(i))
		}
	}
	return walls
}

func (g *Grid) index(c Cell) int { return c.Y*g.width + c.X }

func (g *Grid) cellAt(i int) Cell { return Cell{X: i % g.width, Y: i / g.width} }

// validateEndpoint rejects a source or target that is off the grid or on a wall.
func (g *Grid) validateEndpoint(field string, c Cell) error {
	if !g.InBounds(c) {
		return configErrorf(field, "%v outside %dx%d grid", c, g.width, g.height)
	}
	if g.blocked[g.index(c)] {
		return configErrorf(field, "%v is a wall", c)
	}
	return nil
}
