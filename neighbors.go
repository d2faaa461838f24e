package gridpath

// directions is the fixed expansion order: N, S, W, E, NW, NE, SW, SE.
// Order only matters for tie-breaking between equal-F frontier entries.
var directions = [8]Cell{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// neighbors appends to buf the in-bounds cells around c that are not yet
// finalized. Walls never appear because they start out finalized.
func neighbors(grid *Grid, closed []bool, c Cell, buf []Cell) []Cell {
	buf = buf[:0]
	for _, d := range directions {
		next := Cell{X: c.X + d.X, Y: c.Y + d.Y}
		if grid.InBounds(next) && !closed[grid.index(next)] {
			buf = append(buf, next)
		}
	}
	return buf
}
