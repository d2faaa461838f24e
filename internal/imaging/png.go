// Package imaging draws grids and paths as raster images.
package imaging

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"

	"github.com/pdrpinto/gridpath"
)

// Palette used for every rendered image.
const (
	FreeColor   = "#f5f5f5"
	WallColor   = "#2d2d2d"
	PathColor   = "#3cb44b"
	SourceColor = "#4363d8"
	TargetColor = "#e6194b"
	lineColor   = "#c8c8c8"
)

// MaxCellSize caps the side of one cell in pixels.
const MaxCellSize = 64

// RenderPNG draws grid with path highlighted and writes it as PNG.
// path is in the order Search returns it, target first and source last.
func RenderPNG(w io.Writer, grid *gridpath.Grid, path []gridpath.Cell, cellSize int) error {
	if cellSize < 1 || cellSize > MaxCellSize {
		return fmt.Errorf("imaging: cell size %d outside 1..%d", cellSize, MaxCellSize)
	}
	size := float64(cellSize)
	dc := gg.NewContext(grid.Width()*cellSize, grid.Height()*cellSize)
	dc.SetHexColor(FreeColor)
	dc.Clear()

	fillCell := func(c gridpath.Cell, hex string) {
		dc.DrawRectangle(float64(c.X)*size, float64(c.Y)*size, size, size)
		dc.SetHexColor(hex)
		dc.Fill()
	}
	for _, wall := range grid.Walls() {
		fillCell(wall, WallColor)
	}
	for _, c := range path {
		fillCell(c, PathColor)
	}

	if cellSize >= 4 {
		dc.SetHexColor(lineColor)
		dc.SetLineWidth(1)
		for x := 0; x <= grid.Width(); x++ {
			dc.DrawLine(float64(x)*size, 0, float64(x)*size, float64(grid.Height())*size)
		}
		for y := 0; y <= grid.Height(); y++ {
			dc.DrawLine(0, float64(y)*size, float64(grid.Width())*size, float64(y)*size)
		}
		dc.Stroke()
	}

	if len(path) > 0 {
		marker := func(c gridpath.Cell, hex string) {
			dc.DrawCircle((float64(c.X)+0.5)*size, (float64(c.Y)+0.5)*size, size/4)
			dc.SetHexColor(hex)
			dc.Fill()
		}
		marker(path[len(path)-1], SourceColor)
		marker(path[0], TargetColor)
	}

	return dc.EncodePNG(w)
}
