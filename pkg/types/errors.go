package types

import "errors"

// Error kinds shared by all managers. Operations wrap these with
// context using fmt.Errorf and %w; callers branch with errors.Is.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("already exists")
)

// Quantity and state errors. The warehouse and the rooms run the same
// availability check but report distinct kinds, so callers can tell a
// warehouse shortfall apart from a room shortfall.
var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrRoomShortage      = errors.New("not enough of the item in the room")
	ErrOrderFulfilled    = errors.New("order is already fulfilled")
)
