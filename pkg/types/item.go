package types

import "fmt"

// Item is a purchasable catalog entry. Names are unique within the
// catalog; prices are unit prices in the local currency.
type Item struct {
	ID    int
	Name  string
	Price float64
}

// NewItem builds a validated catalog item. The id is assigned by the manager.
func NewItem(id int, name string, price float64) (*Item, error) {
	it := &Item{ID: id}
	if err := it.SetName(name); err != nil {
		return nil, err
	}
	if err := it.SetPrice(price); err != nil {
		return nil, err
	}
	return it, nil
}

// SetName replaces the item name. Empty names are rejected.
func (i *Item) SetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: item name must not be empty", ErrValidation)
	}
	i.Name = name
	return nil
}

// SetPrice replaces the unit price. Negative prices are rejected.
func (i *Item) SetPrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("%w: item price must not be negative", ErrValidation)
	}
	i.Price = price
	return nil
}

// Equal reports whether both items share the same id.
// Name and price do not participate in equality.
func (i Item) Equal(other Item) bool {
	return i.ID == other.ID
}

// Display returns a one-line summary of the item.
func (i Item) Display() string {
	return fmt.Sprintf("Item [ID: %d, Name: %s, Price: %.2f]", i.ID, i.Name, i.Price)
}
