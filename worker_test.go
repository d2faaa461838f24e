package gridpath

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchAll(t *testing.T) {
	t.Parallel()

	grid := DemoGrid()
	queries := []Query{
		{Source: Cell{0, 0}, Target: Cell{9, 9}},
		{Source: Cell{9, 0}, Target: Cell{0, 7}},
		{Source: Cell{0, 0}, Target: Cell{7, 2}}, // wall
		{Source: Cell{4, 4}, Target: Cell{4, 4}}, // wall
		{Source: Cell{2, 2}, Target: Cell{2, 2}},
	}

	results, err := SearchAll(context.Background(), grid, queries, WithWorkers(3))
	require.NoError(t, err)
	require.Len(t, results, len(queries))

	for i, got := range results {
		assert.Equal(t, queries[i], got.Query)
		want, wantErr := Search(context.Background(), grid, queries[i].Source, queries[i].Target)
		if wantErr != nil {
			assert.ErrorIs(t, got.Err, ErrConfiguration)
			continue
		}
		require.NoError(t, got.Err)
		if diff := cmp.Diff(want, got.Result); diff != "" {
			t.Errorf("query %d differs from Search (-want +got):\n%s", i, diff)
		}
	}
}

func TestSearchAllCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := SearchAll(ctx, DemoGrid(), []Query{{Source: Cell{0, 0}, Target: Cell{9, 9}}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}
