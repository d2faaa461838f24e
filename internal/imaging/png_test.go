package imaging

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridpath"
)

func hexColor(t *testing.T, hex string) color.NRGBA {
	t.Helper()
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	require.NoError(t, err)
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

func assertColorAt(t *testing.T, img image.Image, x, y int, want color.NRGBA) {
	t.Helper()
	got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	assert.InDelta(t, want.R, got.R, 2, "red at %d,%d", x, y)
	assert.InDelta(t, want.G, got.G, 2, "green at %d,%d", x, y)
	assert.InDelta(t, want.B, got.B, 2, "blue at %d,%d", x, y)
}

func TestRenderPNG(t *testing.T) {
	t.Parallel()

	grid := gridpath.DemoGrid()
	result, err := gridpath.Search(context.Background(), grid, gridpath.Cell{X: 0, Y: 0}, gridpath.Cell{X: 9, Y: 9})
	require.NoError(t, err)

	const cellSize = 16
	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, grid, result.Path, cellSize))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10*cellSize, 10*cellSize), img.Bounds())

	centre := func(c gridpath.Cell) (int, int) {
		return c.X*cellSize + cellSize/2, c.Y*cellSize + cellSize/2
	}
	x, y := centre(gridpath.Cell{X: 7, Y: 2})
	assertColorAt(t, img, x, y, hexColor(t, WallColor))
	x, y = centre(result.Path[1])
	assertColorAt(t, img, x, y, hexColor(t, PathColor))
	x, y = centre(result.Path[0])
	assertColorAt(t, img, x, y, hexColor(t, TargetColor))
	x, y = centre(result.Path[len(result.Path)-1])
	assertColorAt(t, img, x, y, hexColor(t, SourceColor))

	onPath := map[gridpath.Cell]bool{}
	for _, c := range result.Path {
		onPath[c] = true
	}
	for cy := 0; cy < grid.Height(); cy++ {
		for cx := 0; cx < grid.Width(); cx++ {
			c := gridpath.Cell{X: cx, Y: cy}
			if !onPath[c] && !grid.Blocked(c) {
				x, y := centre(c)
				assertColorAt(t, img, x, y, hexColor(t, FreeColor))
				return
			}
		}
	}
}

func TestRenderPNGRejectsCellSize(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Error(t, RenderPNG(&buf, gridpath.DemoGrid(), nil, 0))
	assert.Error(t, RenderPNG(&buf, gridpath.DemoGrid(), nil, MaxCellSize+1))
}
