package memory

import (
	"fmt"
	"log/slog"

	"camarim/pkg/types"
)

var _ types.ShoppingLists = (*ShoppingLists)(nil)

// ShoppingLists manages the shopping lists. Construct through
// NewRegistry.
type ShoppingLists struct {
	lists  []*types.ShoppingList
	nextID int
}

func newShoppingLists() *ShoppingLists {
	return &ShoppingLists{nextID: 1}
}

// Create opens a new empty list and returns its id.
func (m *ShoppingLists) Create(description string) (int, error) {
	list, err := types.NewShoppingList(m.nextID, description)
	if err != nil {
		return 0, err
	}
	m.lists = append(m.lists, list)
	m.nextID++
	slog.Debug("shopping list created", "list_id", list.ID, "description", description)
	return list.ID, nil
}

// FindByID returns a deep copy of the list with the given id.
func (m *ShoppingLists) FindByID(id int) (*types.ShoppingList, error) {
	list, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return list.Clone(), nil
}

// Remove deletes the list and reports whether it existed.
func (m *ShoppingLists) Remove(id int) bool {
	for i, list := range m.lists {
		if list.ID == id {
			m.lists = append(m.lists[:i], m.lists[i+1:]...)
			slog.Debug("shopping list removed", "list_id", id)
			return true
		}
	}
	return false
}

// List returns deep copies of all lists in creation order.
func (m *ShoppingLists) List() []*types.ShoppingList {
	out := make([]*types.ShoppingList, len(m.lists))
	for i, list := range m.lists {
		out[i] = list.Clone()
	}
	return out
}

// AddItem puts a priced quantity of an item on a list.
func (m *ShoppingLists) AddItem(listID, itemID int, itemName string, quantity int, unitPrice float64) error {
	list, err := m.lookup(listID)
	if err != nil {
		return err
	}
	if err := list.AddItem(itemID, itemName, quantity, unitPrice); err != nil {
		return err
	}
	slog.Debug("shopping list item added", "list_id", listID, "item_id", itemID, "quantity", quantity, "unit_price", unitPrice)
	return nil
}

// RemoveItem drops a whole line from a list and reports whether it
// existed.
func (m *ShoppingLists) RemoveItem(listID, itemID int) (bool, error) {
	list, err := m.lookup(listID)
	if err != nil {
		return false, err
	}
	removed := list.RemoveItem(itemID)
	if removed {
		slog.Debug("shopping list item removed", "list_id", listID, "item_id", itemID)
	}
	return removed, nil
}

// UpdateQuantity replaces a line's quantity and recomputes its subtotal.
func (m *ShoppingLists) UpdateQuantity(listID, itemID, quantity int) error {
	list, err := m.lookup(listID)
	if err != nil {
		return err
	}
	if err := list.UpdateQuantity(itemID, quantity); err != nil {
		return err
	}
	slog.Debug("shopping list quantity updated", "list_id", listID, "item_id", itemID, "quantity", quantity)
	return nil
}

// Clear empties a list unconditionally.
func (m *ShoppingLists) Clear(listID int) error {
	list, err := m.lookup(listID)
	if err != nil {
		return err
	}
	list.Clear()
	slog.Debug("shopping list cleared", "list_id", listID)
	return nil
}

// Total returns the list's grand total.
func (m *ShoppingLists) Total(listID int) (float64, error) {
	list, err := m.lookup(listID)
	if err != nil {
		return 0, err
	}
	return list.Total(), nil
}

// lookup returns the stored list, not a copy.
func (m *ShoppingLists) lookup(id int) (*types.ShoppingList, error) {
	for _, list := range m.lists {
		if list.ID == id {
			return list, nil
		}
	}
	return nil, fmt.Errorf("%w: shopping list with id %d", types.ErrNotFound, id)
}
