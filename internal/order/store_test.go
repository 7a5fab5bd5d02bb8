package order

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"museum-shop/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_AppendAndAll(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	orders, err := store.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	require.NoError(t, store.Append(ctx, &model.Order{ID: "ORD-1", Total: 10}))
	require.NoError(t, store.Append(ctx, &model.Order{ID: "ORD-2", Total: 20}))

	orders, err = store.All(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-1", orders[0].ID)
	assert.Equal(t, "ORD-2", orders[1].ID)
}

func TestMemoryStore_AllReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, &model.Order{ID: "ORD-1"}))

	first, err := store.All(ctx)
	require.NoError(t, err)
	first[0].ID = "mutated"

	second, err := store.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", second[0].ID)
}

func TestMemoryStore_ConcurrentAppends(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Append(ctx, &model.Order{ID: fmt.Sprintf("ORD-%d", i)})
		}()
	}
	wg.Wait()

	orders, err := store.All(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, n)
}
