package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camarim/pkg/memory"
	"camarim/pkg/types"
)

// Drives a small end-to-end scenario through the public constructor:
// catalog an item, receive stock, outfit a room, order a refill, and
// price the restock list.
func TestRegistryScenario(t *testing.T) {
	reg := memory.NewRegistry()

	itemID, err := reg.Catalog().Register("Water", 2.50)
	require.NoError(t, err)
	item, err := reg.Catalog().FindByID(itemID)
	require.NoError(t, err)

	require.NoError(t, reg.Stock().Add(item.ID, item.Name, 100))

	artistID, err := reg.Artists().Register("Alice", 0)
	require.NoError(t, err)
	roomID, err := reg.Rooms().Register("Main", artistID)
	require.NoError(t, err)
	require.NoError(t, reg.Artists().Update(artistID, "Alice", roomID))

	require.True(t, reg.Stock().CheckAvailability(item.ID, 10))
	require.NoError(t, reg.Stock().Remove(item.ID, 10))
	require.NoError(t, reg.Rooms().InsertItem(roomID, item.ID, item.Name, 10))

	room, err := reg.Rooms().FindByArtist(artistID)
	require.NoError(t, err)
	assert.Equal(t, 10, room.QuantityOf(item.ID))

	orderID, err := reg.Orders().Create(roomID, "Alice")
	require.NoError(t, err)
	require.NoError(t, reg.Orders().AddItem(orderID, item.ID, item.Name, 20))
	require.NoError(t, reg.Orders().MarkFulfilled(orderID))
	assert.Empty(t, reg.Orders().ListPending())

	listID, err := reg.ShoppingLists().Create("Weekly restock")
	require.NoError(t, err)
	require.NoError(t, reg.ShoppingLists().AddItem(listID, item.ID, item.Name, 20, item.Price))
	total, err := reg.ShoppingLists().Total(listID)
	require.NoError(t, err)
	assert.InDelta(t, 50.00, total, 1e-9)
}

// Separate registries never share state or id sequences.
func TestRegistryIsolation(t *testing.T) {
	first := memory.NewRegistry()
	second := memory.NewRegistry()

	id, err := first.Catalog().Register("Water", 2.50)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	_, err = second.Catalog().FindByID(id)
	require.ErrorIs(t, err, types.ErrNotFound)

	id, err = second.Catalog().Register("Towel", 5.00)
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}
