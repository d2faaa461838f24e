package gridpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	t.Parallel()

	t.Run("marks listed walls only", func(t *testing.T) {
		t.Parallel()
		grid, err := NewGrid(4, 3, []Cell{{1, 0}, {3, 2}, {1, 0}})
		require.NoError(t, err)

		assert.Equal(t, 4, grid.Width())
		assert.Equal(t, 3, grid.Height())
		assert.True(t, grid.Blocked(Cell{1, 0}))
		assert.True(t, grid.Blocked(Cell{3, 2}))
		assert.False(t, grid.Blocked(Cell{0, 0}))
		assert.False(t, grid.Blocked(Cell{-1, 0}))
		if diff := cmp.Diff([]Cell{{1, 0}, {3, 2}}, grid.Walls()); diff != "" {
			t.Errorf("Walls() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rejects bad dimensions and walls", func(t *testing.T) {
		t.Parallel()
		cases := []struct {
			name   string
			width  int
			height int
			walls  []Cell
			field  string
		}{
			{"zero width", 0, 3, nil, "width"},
			{"negative height", 3, -1, nil, "height"},
			{"wall past right edge", 3, 3, []Cell{{3, 0}}, "walls"},
			{"wall above top", 3, 3, []Cell{{0, -1}}, "walls"},
			{"area wraps around", 1 << 32, 1 << 32, nil, "size"},
			{"huge width", 1 << 62, 4, nil, "size"},
			{"huge height", 3, 1 << 62, nil, "size"},
			{"area just over limit", MaxCells/2 + 1, 2, nil, "size"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				grid, err := NewGrid(tc.width, tc.height, tc.walls)
				assert.Nil(t, grid)
				require.ErrorIs(t, err, ErrConfiguration)
				var cfgErr *ConfigurationError
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, tc.field, cfgErr.Field)
			})
		}
	})
}

func TestNewGridFromPairs(t *testing.T) {
	t.Parallel()

	grid, err := NewGridFromPairs(3, 3, []int{0, 1, 2, 2})
	require.NoError(t, err)
	assert.True(t, grid.Blocked(Cell{0, 1}))
	assert.True(t, grid.Blocked(Cell{2, 2}))

	_, err = NewGridFromPairs(3, 3, []int{0, 1, 2})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestDemoGrid(t *testing.T) {
	t.Parallel()

	grid := DemoGrid()
	assert.Equal(t, DemoWidth, grid.Width())
	assert.Equal(t, DemoHeight, grid.Height())
	assert.Len(t, grid.Walls(), len(DemoWalls())/2)
	assert.True(t, grid.Blocked(Cell{7, 2}))
	assert.True(t, grid.Blocked(Cell{1, 9}))
	assert.False(t, grid.Blocked(Cell{0, 0}))
	assert.False(t, grid.Blocked(Cell{9, 9}))
}
