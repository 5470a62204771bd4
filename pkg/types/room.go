package types

import (
	"fmt"
	"sort"
)

// RoomItem is one line of a room's local inventory. Quantity is always
// positive; a line that reaches zero is removed from the room.
type RoomItem struct {
	ItemID   int
	ItemName string
	Quantity int
}

// Room is a dressing room with its own item quantities, independent of
// the warehouse. ArtistID is a plain foreign key.
type Room struct {
	ID       int
	Name     string
	ArtistID int

	items map[int]RoomItem
}

// NewRoom builds a validated room. The id is assigned by the manager.
func NewRoom(id int, name string, artistID int) (*Room, error) {
	r := &Room{ID: id, ArtistID: artistID, items: make(map[int]RoomItem)}
	if err := r.SetName(name); err != nil {
		return nil, err
	}
	return r, nil
}

// SetName replaces the room name. Empty names are rejected.
func (r *Room) SetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: room name must not be empty", ErrValidation)
	}
	r.Name = name
	return nil
}

// SetArtistID replaces the assigned artist.
func (r *Room) SetArtistID(artistID int) {
	r.ArtistID = artistID
}

// InsertItem stocks the room with a quantity of an item. An existing
// line sums with the incoming quantity; otherwise a new line is created.
// Unlike the warehouse, rooms reject zero quantities.
func (r *Room) InsertItem(itemID int, itemName string, quantity int) error {
	if itemID < 0 {
		return fmt.Errorf("%w: item id must not be negative", ErrValidation)
	}
	if itemName == "" {
		return fmt.Errorf("%w: item name must not be empty", ErrValidation)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if r.items == nil {
		r.items = make(map[int]RoomItem)
	}
	if line, ok := r.items[itemID]; ok {
		line.Quantity += quantity
		r.items[itemID] = line
		return nil
	}
	r.items[itemID] = RoomItem{ItemID: itemID, ItemName: itemName, Quantity: quantity}
	return nil
}

// RemoveItem takes a quantity of an item out of the room. The line is
// deleted when its quantity reaches exactly zero. Fails with
// ErrRoomShortage when more is requested than the room holds.
func (r *Room) RemoveItem(itemID, quantity int) error {
	line, ok := r.items[itemID]
	if !ok {
		return fmt.Errorf("%w: item %d is not in the room", ErrNotFound, itemID)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if line.Quantity < quantity {
		return fmt.Errorf("%w: available %d, requested %d", ErrRoomShortage, line.Quantity, quantity)
	}
	line.Quantity -= quantity
	if line.Quantity == 0 {
		delete(r.items, itemID)
		return nil
	}
	r.items[itemID] = line
	return nil
}

// ContainsItem reports whether the room holds any quantity of the item.
func (r *Room) ContainsItem(itemID int) bool {
	_, ok := r.items[itemID]
	return ok
}

// QuantityOf returns the held quantity, or 0 when the item is absent.
func (r *Room) QuantityOf(itemID int) int {
	return r.items[itemID].Quantity
}

// Items returns a snapshot of the room lines ordered by item id.
func (r *Room) Items() []RoomItem {
	lines := make([]RoomItem, 0, len(r.items))
	for _, line := range r.items {
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ItemID < lines[j].ItemID })
	return lines
}

// TotalItemCount returns the sum of all held quantities.
func (r *Room) TotalItemCount() int {
	total := 0
	for _, line := range r.items {
		total += line.Quantity
	}
	return total
}

// Clone returns a deep copy, so callers cannot mutate manager-owned state.
func (r *Room) Clone() *Room {
	c := &Room{ID: r.ID, Name: r.Name, ArtistID: r.ArtistID, items: make(map[int]RoomItem, len(r.items))}
	for id, line := range r.items {
		c.items[id] = line
	}
	return c
}

// Display returns a one-line summary of the room.
func (r *Room) Display() string {
	return fmt.Sprintf("Room [ID: %d, Name: %s, Artist ID: %d, Items: %d]", r.ID, r.Name, r.ArtistID, r.TotalItemCount())
}
