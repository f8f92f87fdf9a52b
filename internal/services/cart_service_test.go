// internal/services/cart_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atjshop/storefront/internal/store"
	"github.com/atjshop/storefront/internal/store/memory"
)

// newTestStore builds a seeded in-memory store with latency and snapshot
// persistence disabled.
func newTestStore(t *testing.T) *memory.Store {
	t.Helper()
	st := memory.New(memory.Options{})
	require.NoError(t, st.Seed("admin@example.com", "admin-password"))
	return st
}

func TestCartAddItemMergesSameLine(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newTestStore(t))

	cart, err := svc.AddItem(ctx, "owner-1", "p1", 1, "#000000")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	cart, err = svc.AddItem(ctx, "owner-1", "p1", 2, "#000000")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.InDelta(t, 99.99*3, cart.Total(), 0.001)
}

func TestCartAddItemDifferentColorIsDistinctLine(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newTestStore(t))

	_, err := svc.AddItem(ctx, "owner-1", "p1", 1, "#000000")
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "owner-1", "p1", 1, "#FF0000")
	require.NoError(t, err)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 2, cart.ItemCount())
}

func TestCartAddItemClampsQuantityToOne(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newTestStore(t))

	cart, err := svc.AddItem(ctx, "owner-1", "p2", 0, "")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestCartAddItemUnknownProduct(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newTestStore(t))

	_, err := svc.AddItem(ctx, "owner-1", "missing", 1, "")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCartGetCartUnknownOwnerIsEmpty(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newTestStore(t))

	cart, err := svc.GetCart(ctx, "never-seen")
	require.NoError(t, err)

	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total())
}

func TestCartRemoveItemByColor(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newTestStore(t))

	_, err := svc.AddItem(ctx, "owner-1", "p1", 1, "#000000")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "owner-1", "p1", 1, "#FF0000")
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, "owner-1", "p1", "#FF0000")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "#000000", cart.Items[0].Color)
}

func TestCartRemoveItemWithoutColorRemovesAllLines(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newTestStore(t))

	_, err := svc.AddItem(ctx, "owner-1", "p1", 1, "#000000")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "owner-1", "p1", 1, "#FF0000")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "owner-1", "p2", 1, "")
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, "owner-1", "p1", "")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].Product.ID)
}

func TestCartAddThenRemoveRestoresTotal(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newTestStore(t))

	before, err := svc.AddItem(ctx, "owner-1", "p2", 2, "")
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, "owner-1", "p4", 1, "#FFFFFF")
	require.NoError(t, err)
	after, err := svc.RemoveItem(ctx, "owner-1", "p4", "#FFFFFF")
	require.NoError(t, err)

	assert.InDelta(t, before.Total(), after.Total(), 0.001)
}

func TestCartUpdateQuantity(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newTestStore(t))

	_, err := svc.AddItem(ctx, "owner-1", "p1", 1, "#000000")
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(ctx, "owner-1", "p1", 5)
	require.NoError(t, err)

	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartUpdateQuantityBelowOneLeavesCartUntouched(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newTestStore(t))

	_, err := svc.AddItem(ctx, "owner-1", "p1", 2, "#000000")
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(ctx, "owner-1", "p1", 0)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCartClearCart(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newTestStore(t))

	_, err := svc.AddItem(ctx, "owner-1", "p1", 1, "#000000")
	require.NoError(t, err)
	require.NoError(t, svc.ClearCart(ctx, "owner-1"))

	cart, err := svc.GetCart(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
