package types

// Registry provides access to the full manager set. A registry is
// built by the composition root (CLI or test harness); there is no
// process-wide instance. Managers are not safe for concurrent use:
// the design assumes single-threaded call-response execution, and a
// caller that shares a registry across goroutines must serialize
// access per manager.
type Registry interface {
	Catalog() Catalog
	Stock() Stock
	Rooms() Rooms
	Orders() Orders
	ShoppingLists() ShoppingLists
	Artists() Artists
	Users() Users
}

// Catalog owns the canonical list of purchasable items. Ids start at 1
// and strictly increase; deleted ids are never reused. Item names are
// unique (exact, case-sensitive match).
type Catalog interface {
	// Register adds an item and returns its id.
	Register(name string, price float64) (int, error)

	// FindByID returns a copy of the item, or ErrNotFound.
	FindByID(id int) (Item, error)

	// FindByName returns a copy of the first item with the name, or
	// ErrNotFound.
	FindByName(name string) (Item, error)

	// Remove deletes the item and reports whether it existed.
	Remove(id int) bool

	// Update replaces name and price. Returns ErrNotFound if the id is
	// absent, ErrDuplicate if the name belongs to a different item.
	Update(id int, name string, price float64) error

	// List returns a snapshot of all items.
	List() []Item
}

// Stock owns the single warehouse quantity table, keyed by item id.
type Stock interface {
	// Add merges a quantity into the warehouse. A quantity of zero is
	// accepted and creates or keeps the line.
	Add(itemID int, itemName string, quantity int) error

	// Remove decrements a line. The line is deleted when it reaches
	// exactly zero. Returns ErrInsufficientStock when more is requested
	// than is held.
	Remove(itemID, quantity int) error

	// CheckAvailability reports whether the held quantity covers the
	// requested one. Absent lines are simply unavailable.
	CheckAvailability(itemID, quantity int) bool

	// Quantity returns the held quantity, or 0 when absent. Never an
	// error.
	Quantity(itemID int) int

	// SetQuantity overwrites a line. Setting zero deletes the line.
	SetQuantity(itemID, quantity int) error

	// Drop deletes a whole line regardless of quantity and reports
	// whether it existed.
	Drop(itemID int) bool

	// List returns a snapshot of all lines ordered by item id.
	List() []StockLine
}

// Rooms owns the dressing rooms. Line-item mutations go through the
// manager so callers never hold references into manager-owned state.
type Rooms interface {
	Register(name string, artistID int) (int, error)

	// FindByID returns a deep copy of the room, or ErrNotFound.
	FindByID(id int) (*Room, error)

	// FindByArtist returns a deep copy of the first room assigned to
	// the artist, or ErrNotFound.
	FindByArtist(artistID int) (*Room, error)

	Remove(id int) bool
	Update(id int, name string, artistID int) error
	List() []*Room

	// InsertItem stocks a room; see Room.InsertItem.
	InsertItem(roomID, itemID int, itemName string, quantity int) error

	// RemoveItem takes items out of a room; see Room.RemoveItem.
	RemoveItem(roomID, itemID, quantity int) error
}

// Orders owns the purchase orders.
type Orders interface {
	Create(roomID int, artistName string) (int, error)

	// FindByID returns a deep copy of the order, or ErrNotFound.
	FindByID(id int) (*Order, error)

	// FindByRoom returns copies of all orders tied to the room.
	FindByRoom(roomID int) []*Order

	// ListPending returns copies of all unfulfilled orders.
	ListPending() []*Order

	Remove(id int) bool
	List() []*Order

	// AddItem requests items on an order; see Order.AddItem.
	AddItem(orderID, itemID int, itemName string, quantity int) error

	// RemoveItem drops a whole order line; see Order.RemoveItem.
	RemoveItem(orderID, itemID int) (bool, error)

	// MarkFulfilled closes the order. Returns ErrNotFound if the id is
	// absent; closing an already-closed order succeeds.
	MarkFulfilled(orderID int) error
}

// ShoppingLists owns the shopping lists.
type ShoppingLists interface {
	Create(description string) (int, error)

	// FindByID returns a deep copy of the list, or ErrNotFound.
	FindByID(id int) (*ShoppingList, error)

	Remove(id int) bool
	List() []*ShoppingList

	// AddItem puts a priced quantity on a list; see ShoppingList.AddItem.
	AddItem(listID, itemID int, itemName string, quantity int, unitPrice float64) error

	// RemoveItem drops a whole list line; see ShoppingList.RemoveItem.
	RemoveItem(listID, itemID int) (bool, error)

	// UpdateQuantity replaces a line quantity; see ShoppingList.UpdateQuantity.
	UpdateQuantity(listID, itemID, quantity int) error

	// Clear empties a list.
	Clear(listID int) error

	// Total returns the list's grand total.
	Total(listID int) (float64, error)
}

// Artists owns the performers.
type Artists interface {
	Register(name string, roomID int) (int, error)
	FindByID(id int) (Artist, error)

	// FindByRoom returns copies of every artist assigned to the room.
	FindByRoom(roomID int) []Artist

	Remove(id int) bool
	Update(id int, name string, roomID int) error
	List() []Artist
}

// Users owns the system operators.
type Users interface {
	Register(name, login, password string) (int, error)
	FindByID(id int) (User, error)
	FindByLogin(login string) (User, error)
	Remove(id int) bool

	// Update replaces all mutable fields. Returns ErrNotFound if the id
	// is absent, ErrDuplicate if the login belongs to a different user.
	Update(id int, name, login, password string) error

	// Authenticate reports whether some user matches both credentials
	// exactly.
	Authenticate(login, password string) bool

	List() []User
}
