package memory

import (
	"fmt"
	"log/slog"
	"sort"

	"camarim/pkg/types"
)

var _ types.Stock = (*Stock)(nil)

// Stock is the single warehouse quantity table, keyed by item id.
// Construct through NewRegistry.
type Stock struct {
	lines map[int]types.StockLine
}

func newStock() *Stock {
	return &Stock{lines: make(map[int]types.StockLine)}
}

// Add merges a quantity into the warehouse. An existing line sums with
// the incoming quantity; otherwise a new line is created. Zero is a
// valid quantity here, unlike in rooms.
func (s *Stock) Add(itemID int, itemName string, quantity int) error {
	if itemID < 0 {
		return fmt.Errorf("%w: item id must not be negative", types.ErrValidation)
	}
	if itemName == "" {
		return fmt.Errorf("%w: item name must not be empty", types.ErrValidation)
	}
	if quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", types.ErrValidation)
	}
	if line, ok := s.lines[itemID]; ok {
		line.Quantity += quantity
		s.lines[itemID] = line
	} else {
		s.lines[itemID] = types.StockLine{ItemID: itemID, ItemName: itemName, Quantity: quantity}
	}
	slog.Debug("stock added", "item_id", itemID, "quantity", quantity, "held", s.lines[itemID].Quantity)
	return nil
}

// Remove decrements a line, deleting it when the quantity reaches
// exactly zero. The stored quantity is untouched on any failure.
func (s *Stock) Remove(itemID, quantity int) error {
	line, ok := s.lines[itemID]
	if !ok {
		return fmt.Errorf("%w: item %d is not in stock", types.ErrNotFound, itemID)
	}
	if quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", types.ErrValidation)
	}
	if line.Quantity < quantity {
		return fmt.Errorf("%w: available %d, requested %d", types.ErrInsufficientStock, line.Quantity, quantity)
	}
	line.Quantity -= quantity
	if line.Quantity == 0 {
		delete(s.lines, itemID)
	} else {
		s.lines[itemID] = line
	}
	slog.Debug("stock removed", "item_id", itemID, "quantity", quantity, "held", line.Quantity)
	return nil
}

// CheckAvailability reports whether the held quantity covers the
// requested one.
func (s *Stock) CheckAvailability(itemID, quantity int) bool {
	line, ok := s.lines[itemID]
	if !ok {
		return false
	}
	return line.Quantity >= quantity
}

// Quantity returns the held quantity, or 0 when the item is absent.
func (s *Stock) Quantity(itemID int) int {
	return s.lines[itemID].Quantity
}

// SetQuantity overwrites a line's quantity. Zero deletes the line.
func (s *Stock) SetQuantity(itemID, quantity int) error {
	line, ok := s.lines[itemID]
	if !ok {
		return fmt.Errorf("%w: item %d is not in stock", types.ErrNotFound, itemID)
	}
	if quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", types.ErrValidation)
	}
	if quantity == 0 {
		delete(s.lines, itemID)
	} else {
		line.Quantity = quantity
		s.lines[itemID] = line
	}
	slog.Debug("stock quantity set", "item_id", itemID, "quantity", quantity)
	return nil
}

// Drop deletes a whole line regardless of quantity and reports whether
// it existed.
func (s *Stock) Drop(itemID int) bool {
	if _, ok := s.lines[itemID]; !ok {
		return false
	}
	delete(s.lines, itemID)
	slog.Debug("stock line dropped", "item_id", itemID)
	return true
}

// List returns a snapshot of all lines ordered by item id.
func (s *Stock) List() []types.StockLine {
	out := make([]types.StockLine, 0, len(s.lines))
	for _, line := range s.lines {
		out = append(out, line)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}
