package memory

import (
	"fmt"
	"log/slog"

	"camarim/pkg/types"
)

var _ types.Catalog = (*Catalog)(nil)

// Catalog is the in-memory item catalog. Construct through NewRegistry.
type Catalog struct {
	items  []types.Item
	nextID int
}

func newCatalog() *Catalog {
	return &Catalog{nextID: 1}
}

// Register adds a new item and returns its id.
func (c *Catalog) Register(name string, price float64) (int, error) {
	item, err := types.NewItem(c.nextID, name, price)
	if err != nil {
		return 0, err
	}
	if _, err := c.FindByName(name); err == nil {
		return 0, fmt.Errorf("%w: item with name %q", types.ErrDuplicate, name)
	}
	c.items = append(c.items, *item)
	c.nextID++
	slog.Debug("item registered", "item_id", item.ID, "name", name, "price", price)
	return item.ID, nil
}

// FindByID returns a copy of the item with the given id.
func (c *Catalog) FindByID(id int) (types.Item, error) {
	for _, item := range c.items {
		if item.ID == id {
			return item, nil
		}
	}
	return types.Item{}, fmt.Errorf("%w: item with id %d", types.ErrNotFound, id)
}

// FindByName returns a copy of the first item with the given name.
func (c *Catalog) FindByName(name string) (types.Item, error) {
	for _, item := range c.items {
		if item.Name == name {
			return item, nil
		}
	}
	return types.Item{}, fmt.Errorf("%w: item with name %q", types.ErrNotFound, name)
}

// Remove deletes the item and reports whether it existed.
func (c *Catalog) Remove(id int) bool {
	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			slog.Debug("item removed", "item_id", id)
			return true
		}
	}
	return false
}

// Update replaces the item's name and price atomically.
func (c *Catalog) Update(id int, name string, price float64) error {
	idx := -1
	for i, item := range c.items {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: item with id %d", types.ErrNotFound, id)
	}
	// Validate everything before touching the stored entity.
	updated, err := types.NewItem(id, name, price)
	if err != nil {
		return err
	}
	if other, err := c.FindByName(name); err == nil && other.ID != id {
		return fmt.Errorf("%w: item with name %q", types.ErrDuplicate, name)
	}
	c.items[idx] = *updated
	slog.Debug("item updated", "item_id", id, "name", name, "price", price)
	return nil
}

// List returns a snapshot of all items in registration order.
func (c *Catalog) List() []types.Item {
	out := make([]types.Item, len(c.items))
	copy(out, c.items)
	return out
}
