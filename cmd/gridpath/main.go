// Command gridpath reads "sx sy tx ty" from standard input, searches the
// built-in 10x10 demo grid and prints it with the path highlighted.
// The -width, -height and -walls flags replace the demo grid.
//
// Exit status is 0 when a path is printed, 1 when the target is
// unreachable and 2 for unreadable or invalid input.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pdrpinto/gridpath"
)

const (
	exitOK = iota
	exitNoPath
	exitInvalid
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	flags.SetOutput(stderr)
	noColor := flags.Bool("no-color", false, "disable ANSI colors")
	showCost := flags.Bool("cost", false, "print the path cost after the grid")
	verbose := flags.Bool("v", false, "log search details to stderr")
	width := flags.Int("width", gridpath.DemoWidth, "grid width")
	height := flags.Int("height", gridpath.DemoHeight, "grid height")
	walls := flags.String("walls", "", "comma-separated x,y wall list (default: demo walls)")
	if err := flags.Parse(args); err != nil {
		return exitInvalid
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var sx, sy, tx, ty int
	if _, err := fmt.Fscan(stdin, &sx, &sy, &tx, &ty); err != nil {
		logger.Error("expected four integers: sx sy tx ty", "err", err)
		return exitInvalid
	}

	grid, err := buildGrid(*width, *height, *walls)
	if err != nil {
		logger.Error("invalid grid", "err", err)
		return exitInvalid
	}
	result, err := gridpath.Search(context.Background(), grid,
		gridpath.Cell{X: sx, Y: sy}, gridpath.Cell{X: tx, Y: ty},
		gridpath.WithLogger(logger))

	switch {
	case errors.Is(err, gridpath.ErrConfiguration):
		logger.Error("invalid input", "err", err)
		return exitInvalid
	case errors.Is(err, gridpath.ErrNoPathFound):
		// Still show the grid so the obstruction is visible.
		if renderErr := gridpath.Render(stdout, grid, nil, gridpath.RenderOptions{Color: !*noColor}); renderErr != nil {
			logger.Error("write failed", "err", renderErr)
		}
		logger.Warn("no path found", "source", gridpath.Cell{X: sx, Y: sy}, "target", gridpath.Cell{X: tx, Y: ty})
		return exitNoPath
	case err != nil:
		logger.Error("search failed", "err", err)
		return exitInvalid
	}

	if err := gridpath.Render(stdout, grid, result.Path, gridpath.RenderOptions{Color: !*noColor}); err != nil {
		logger.Error("write failed", "err", err)
		return exitInvalid
	}
	if *showCost {
		fmt.Fprintf(stdout, "cost %.6f\n", result.TotalCost)
	}
	return exitOK
}

// buildGrid returns the demo grid unless the flags describe another one.
func buildGrid(width, height int, walls string) (*gridpath.Grid, error) {
	if walls == "" {
		if width == gridpath.DemoWidth && height == gridpath.DemoHeight {
			return gridpath.DemoGrid(), nil
		}
		return gridpath.NewGrid(width, height, nil)
	}
	var flat []int
	for _, field := range strings.Split(walls, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("walls: %w", err)
		}
		flat = append(flat, v)
	}
	return gridpath.NewGridFromPairs(width, height, flat)
}
