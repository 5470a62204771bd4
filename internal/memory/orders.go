package memory

import (
	"fmt"
	"log/slog"

	"camarim/pkg/types"
)

var _ types.Orders = (*Orders)(nil)

// Orders manages the purchase orders. Construct through NewRegistry.
type Orders struct {
	orders []*types.Order
	nextID int
}

func newOrders() *Orders {
	return &Orders{nextID: 1}
}

// Create opens a new pending order and returns its id.
func (m *Orders) Create(roomID int, artistName string) (int, error) {
	order, err := types.NewOrder(m.nextID, roomID, artistName)
	if err != nil {
		return 0, err
	}
	m.orders = append(m.orders, order)
	m.nextID++
	slog.Debug("order created", "order_id", order.ID, "room_id", roomID, "artist", artistName)
	return order.ID, nil
}

// FindByID returns a deep copy of the order with the given id.
func (m *Orders) FindByID(id int) (*types.Order, error) {
	order, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return order.Clone(), nil
}

// FindByRoom returns deep copies of all orders tied to the room.
func (m *Orders) FindByRoom(roomID int) []*types.Order {
	var out []*types.Order
	for _, order := range m.orders {
		if order.RoomID == roomID {
			out = append(out, order.Clone())
		}
	}
	return out
}

// ListPending returns deep copies of all unfulfilled orders.
func (m *Orders) ListPending() []*types.Order {
	var out []*types.Order
	for _, order := range m.orders {
		if !order.IsFulfilled() {
			out = append(out, order.Clone())
		}
	}
	return out
}

// Remove deletes the order and reports whether it existed.
func (m *Orders) Remove(id int) bool {
	for i, order := range m.orders {
		if order.ID == id {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			slog.Debug("order removed", "order_id", id)
			return true
		}
	}
	return false
}

// List returns deep copies of all orders in creation order.
func (m *Orders) List() []*types.Order {
	out := make([]*types.Order, len(m.orders))
	for i, order := range m.orders {
		out[i] = order.Clone()
	}
	return out
}

// AddItem requests a quantity of an item on a pending order.
func (m *Orders) AddItem(orderID, itemID int, itemName string, quantity int) error {
	order, err := m.lookup(orderID)
	if err != nil {
		return err
	}
	if err := order.AddItem(itemID, itemName, quantity); err != nil {
		return err
	}
	slog.Debug("order item added", "order_id", orderID, "item_id", itemID, "quantity", quantity)
	return nil
}

// RemoveItem drops a whole line from a pending order and reports
// whether it existed.
func (m *Orders) RemoveItem(orderID, itemID int) (bool, error) {
	order, err := m.lookup(orderID)
	if err != nil {
		return false, err
	}
	removed, err := order.RemoveItem(itemID)
	if err != nil {
		return false, err
	}
	if removed {
		slog.Debug("order item removed", "order_id", orderID, "item_id", itemID)
	}
	return removed, nil
}

// MarkFulfilled closes the order. Closing an already-closed order is a
// no-op.
func (m *Orders) MarkFulfilled(orderID int) error {
	order, err := m.lookup(orderID)
	if err != nil {
		return err
	}
	order.MarkFulfilled()
	slog.Debug("order fulfilled", "order_id", orderID)
	return nil
}

// lookup returns the stored order, not a copy.
func (m *Orders) lookup(id int) (*types.Order, error) {
	for _, order := range m.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return nil, fmt.Errorf("%w: order with id %d", types.ErrNotFound, id)
}
