package types

import "fmt"

var _ Person = (*Artist)(nil)

// Artist is a performer assigned to a dressing room.
// RoomID is a plain foreign key; no referential integrity is enforced.
type Artist struct {
	ID     int
	Name   string
	RoomID int
}

// NewArtist builds a validated artist. The id is assigned by the manager.
func NewArtist(id int, name string, roomID int) (*Artist, error) {
	a := &Artist{ID: id}
	if err := a.SetName(name); err != nil {
		return nil, err
	}
	if err := a.SetRoomID(roomID); err != nil {
		return nil, err
	}
	return a, nil
}

// SetName replaces the artist name. Empty names are rejected.
func (a *Artist) SetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: artist name must not be empty", ErrValidation)
	}
	a.Name = name
	return nil
}

// SetRoomID replaces the assigned room. Negative ids are rejected.
func (a *Artist) SetRoomID(roomID int) error {
	if roomID < 0 {
		return fmt.Errorf("%w: room id must not be negative", ErrValidation)
	}
	a.RoomID = roomID
	return nil
}

// Display returns a one-line summary of the artist.
func (a *Artist) Display() string {
	return fmt.Sprintf("Artist [ID: %d, Name: %s, Room ID: %d]", a.ID, a.Name, a.RoomID)
}
