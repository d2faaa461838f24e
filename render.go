package gridpath

import (
	"bufio"
	"io"
	"strings"
)

const (
	ansiRed   = "\x1b[91m"
	ansiGreen = "\x1b[92m"
	ansiReset = "\x1b[0m"
)

// RenderOptions controls Render output.
type RenderOptions struct {
	// Color highlights walls in red and path cells in green with ANSI escapes.
	Color bool
}

// Render writes one line per grid row with space-separated tokens:
// 1 for a wall, 0 for a free cell. Cells on path are also written as 0 and
// are only distinguishable when Color is set.
func Render(w io.Writer, grid *Grid, path []Cell, options RenderOptions) error {
	onPath := make([]bool, grid.width*grid.height)
	for _, c := range path {
		if grid.InBounds(c) {
			onPath[grid.index(c)] = true
		}
	}

	out := bufio.NewWriter(w)
	tokens := make([]string, grid.width)
	for y := 0; y < grid.height; y++ {
		for x := 0; x < grid.width; x++ {
			i := y*grid.width + x
			switch {
			case grid.blocked[i]:
				tokens[x] = colorize("1", ansiRed, options.Color)
			case onPath[i]:
				tokens[x] = colorize("0", ansiGreen, options.Color)
			default:
				tokens[x] = "0"
			}
		}
		if _, err := out.WriteString(strings.Join(tokens, " ") + "\n"); err != nil {
			return err
		}
	}
	return out.Flush()
}

func colorize(token, color string, enabled bool) string {
	if !enabled {
		return token
	}
	return color + token + ansiReset
}
