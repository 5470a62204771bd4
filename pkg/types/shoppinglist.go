package types

import (
	"fmt"
	"sort"
)

// ShoppingListItem is one priced line of a shopping list. Subtotal is
// always Quantity * UnitPrice and is recomputed on every mutation.
type ShoppingListItem struct {
	ItemID    int
	ItemName  string
	Quantity  int
	UnitPrice float64
	Subtotal  float64
}

// ShoppingList is an itemized list with price snapshots and a computed
// grand total, independent of warehouse and room state.
type ShoppingList struct {
	ID          int
	Description string

	items map[int]ShoppingListItem
}

// NewShoppingList builds a validated list. The id is assigned by the
// manager.
func NewShoppingList(id int, description string) (*ShoppingList, error) {
	l := &ShoppingList{ID: id, items: make(map[int]ShoppingListItem)}
	if err := l.SetDescription(description); err != nil {
		return nil, err
	}
	return l, nil
}

// SetDescription replaces the description. Empty descriptions are rejected.
func (l *ShoppingList) SetDescription(description string) error {
	if description == "" {
		return fmt.Errorf("%w: description must not be empty", ErrValidation)
	}
	l.Description = description
	return nil
}

// AddItem puts a priced quantity of an item on the list. Merging into
// an existing line sums the quantities and recomputes the subtotal with
// the incoming unit price applied to the whole merged quantity: the
// last written price wins, deliberately not a weighted average.
func (l *ShoppingList) AddItem(itemID int, itemName string, quantity int, unitPrice float64) error {
	if itemID < 0 {
		return fmt.Errorf("%w: item id must not be negative", ErrValidation)
	}
	if itemName == "" {
		return fmt.Errorf("%w: item name must not be empty", ErrValidation)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if unitPrice < 0 {
		return fmt.Errorf("%w: unit price must not be negative", ErrValidation)
	}
	if l.items == nil {
		l.items = make(map[int]ShoppingListItem)
	}
	line, ok := l.items[itemID]
	if !ok {
		line = ShoppingListItem{ItemID: itemID, ItemName: itemName}
	}
	line.Quantity += quantity
	line.UnitPrice = unitPrice
	line.Subtotal = float64(line.Quantity) * line.UnitPrice
	l.items[itemID] = line
	return nil
}

// RemoveItem drops a whole line and reports whether it existed.
func (l *ShoppingList) RemoveItem(itemID int) bool {
	if _, ok := l.items[itemID]; !ok {
		return false
	}
	delete(l.items, itemID)
	return true
}

// UpdateQuantity replaces a line's quantity and recomputes its subtotal
// at the stored unit price.
func (l *ShoppingList) UpdateQuantity(itemID, quantity int) error {
	line, ok := l.items[itemID]
	if !ok {
		return fmt.Errorf("%w: item %d is not on the list", ErrNotFound, itemID)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	line.Quantity = quantity
	line.Subtotal = float64(quantity) * line.UnitPrice
	l.items[itemID] = line
	return nil
}

// Total sums all subtotals. An empty list totals 0.
func (l *ShoppingList) Total() float64 {
	total := 0.0
	for _, line := range l.items {
		total += line.Subtotal
	}
	return total
}

// Clear empties the list unconditionally.
func (l *ShoppingList) Clear() {
	l.items = make(map[int]ShoppingListItem)
}

// Items returns a snapshot of the list lines ordered by item id.
func (l *ShoppingList) Items() []ShoppingListItem {
	lines := make([]ShoppingListItem, 0, len(l.items))
	for _, line := range l.items {
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ItemID < lines[j].ItemID })
	return lines
}

// Clone returns a deep copy, so callers cannot mutate manager-owned state.
func (l *ShoppingList) Clone() *ShoppingList {
	c := &ShoppingList{ID: l.ID, Description: l.Description, items: make(map[int]ShoppingListItem, len(l.items))}
	for id, line := range l.items {
		c.items[id] = line
	}
	return c
}

// Display returns a one-line summary of the list.
func (l *ShoppingList) Display() string {
	return fmt.Sprintf("Shopping List [ID: %d, Description: %s, Total: %.2f]", l.ID, l.Description, l.Total())
}
