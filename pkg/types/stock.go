package types

import "fmt"

// StockLine is one warehouse row: quantity on hand for a catalog item.
// The item name is a denormalized copy taken when the line is created.
type StockLine struct {
	ItemID   int
	ItemName string
	Quantity int
}

// Display returns a one-line summary of the stock line.
func (s StockLine) Display() string {
	return fmt.Sprintf("Stock [Item ID: %d, Name: %s, Quantity: %d]", s.ItemID, s.ItemName, s.Quantity)
}
