package resolve

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBatch(t *testing.T) {
	items := make([]BatchItem, 20)
	for i := range items {
		items[i] = BatchItem{
			ID:    fmt.Sprintf("doc-%02d", i),
			Lines: []string{fmt.Sprintf("Invoice Number: INV-%d", i)},
		}
	}

	fields := []string{"Invoice Number", "Total"}

	for _, concurrency := range []int{0, 1, 4, 50} {
		t.Run(fmt.Sprintf("concurrency %d", concurrency), func(t *testing.T) {
			results, err := ResolveBatch(context.Background(), fields, items, concurrency)
			require.NoError(t, err)
			require.Len(t, results, len(items))

			for i, res := range results {
				assert.Equal(t, items[i].ID, res.ID)
				require.Len(t, res.Assignments, 2)
				assert.Equal(t, fmt.Sprintf("INV-%d", i), res.Assignments[0].Value)
				assert.Equal(t, NotFound, res.Assignments[1].Value)
			}
		})
	}
}

func TestResolveBatch_Empty(t *testing.T) {
	results, err := ResolveBatch(context.Background(), []string{"A"}, nil, 2)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestResolveBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ResolveBatch(ctx, []string{"A"}, []BatchItem{{ID: "x", Lines: []string{"A: 1"}}}, 1)
	require.ErrorIs(t, err, context.Canceled)
}
