package types

import (
	"fmt"
	"sort"
)

// OrderItem is one requested line of a purchase order.
type OrderItem struct {
	ItemID   int
	ItemName string
	Quantity int
}

// Order is a purchase request tied to a room and performer. Once
// fulfilled, the flag never reverts and the lines become immutable.
type Order struct {
	ID         int
	RoomID     int
	ArtistName string

	fulfilled bool
	items     map[int]OrderItem
}

// NewOrder builds a validated pending order. The id is assigned by the
// manager.
func NewOrder(id, roomID int, artistName string) (*Order, error) {
	if roomID < 0 {
		return nil, fmt.Errorf("%w: room id must not be negative", ErrValidation)
	}
	if artistName == "" {
		return nil, fmt.Errorf("%w: artist name must not be empty", ErrValidation)
	}
	return &Order{ID: id, RoomID: roomID, ArtistName: artistName, items: make(map[int]OrderItem)}, nil
}

// AddItem requests a quantity of an item. An existing line sums with
// the incoming quantity. Fails with ErrOrderFulfilled once the order
// has been marked fulfilled.
func (o *Order) AddItem(itemID int, itemName string, quantity int) error {
	if o.fulfilled {
		return fmt.Errorf("%w: cannot add items", ErrOrderFulfilled)
	}
	if itemID < 0 {
		return fmt.Errorf("%w: item id must not be negative", ErrValidation)
	}
	if itemName == "" {
		return fmt.Errorf("%w: item name must not be empty", ErrValidation)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if o.items == nil {
		o.items = make(map[int]OrderItem)
	}
	if line, ok := o.items[itemID]; ok {
		line.Quantity += quantity
		o.items[itemID] = line
		return nil
	}
	o.items[itemID] = OrderItem{ItemID: itemID, ItemName: itemName, Quantity: quantity}
	return nil
}

// RemoveItem drops a whole line from the order and reports whether it
// existed. Fails with ErrOrderFulfilled once the order has been marked
// fulfilled.
func (o *Order) RemoveItem(itemID int) (bool, error) {
	if o.fulfilled {
		return false, fmt.Errorf("%w: cannot remove items", ErrOrderFulfilled)
	}
	if _, ok := o.items[itemID]; !ok {
		return false, nil
	}
	delete(o.items, itemID)
	return true, nil
}

// MarkFulfilled closes the order. Idempotent; there is no way back to
// pending.
func (o *Order) MarkFulfilled() {
	o.fulfilled = true
}

// IsFulfilled reports whether the order has been closed.
func (o *Order) IsFulfilled() bool {
	return o.fulfilled
}

// Items returns a snapshot of the order lines ordered by item id.
func (o *Order) Items() []OrderItem {
	lines := make([]OrderItem, 0, len(o.items))
	for _, line := range o.items {
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ItemID < lines[j].ItemID })
	return lines
}

// Clone returns a deep copy, so callers cannot mutate manager-owned state.
func (o *Order) Clone() *Order {
	c := &Order{ID: o.ID, RoomID: o.RoomID, ArtistName: o.ArtistName, fulfilled: o.fulfilled, items: make(map[int]OrderItem, len(o.items))}
	for id, line := range o.items {
		c.items[id] = line
	}
	return c
}

// Display returns a one-line summary of the order.
func (o *Order) Display() string {
	status := "PENDING"
	if o.fulfilled {
		status = "FULFILLED"
	}
	return fmt.Sprintf("Order [ID: %d, Room ID: %d, Artist: %s, Status: %s]", o.ID, o.RoomID, o.ArtistName, status)
}
