package gridpath

// DemoWidth and DemoHeight size the built-in demo grid.
const (
	DemoWidth  = 10
	DemoHeight = 10
)

// demoWalls is a zig-zag wall cluster across rows 2 to 9, as x,y pairs.
var demoWalls = []int{
	7, 2, 8, 2,
	5, 3, 6, 3, 7, 3, 8, 3,
	4, 4, 5, 4, 6, 4,
	5, 5,
	3, 6, 4, 6, 5, 6,
	1, 7, 2, 7, 3, 7, 4, 7, 5, 7,
	0, 8, 1, 8, 2, 8, 3, 8,
	0, 9, 1, 9,
}

// DemoWalls returns a copy of the demo grid's flat wall list.
func DemoWalls() []int { return append([]int(nil), demoWalls...) }

// DemoGrid returns the fixed 10x10 grid used by the command-line tool.
func DemoGrid() *Grid {
	grid, err := NewGridFromPairs(DemoWidth, DemoHeight, demoWalls)
	if err != nil {
		panic(err)
	}
	return grid
}
