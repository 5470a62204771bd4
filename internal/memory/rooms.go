package memory

import (
	"fmt"
	"log/slog"

	"camarim/pkg/types"
)

var _ types.Rooms = (*Rooms)(nil)

// Rooms manages the dressing rooms. Construct through NewRegistry.
type Rooms struct {
	rooms  []*types.Room
	nextID int
}

func newRooms() *Rooms {
	return &Rooms{nextID: 1}
}

// Register adds a new room and returns its id.
func (m *Rooms) Register(name string, artistID int) (int, error) {
	room, err := types.NewRoom(m.nextID, name, artistID)
	if err != nil {
		return 0, err
	}
	m.rooms = append(m.rooms, room)
	m.nextID++
	slog.Debug("room registered", "room_id", room.ID, "name", name, "artist_id", artistID)
	return room.ID, nil
}

// FindByID returns a deep copy of the room with the given id.
func (m *Rooms) FindByID(id int) (*types.Room, error) {
	room, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return room.Clone(), nil
}

// FindByArtist returns a deep copy of the first room assigned to the
// artist.
func (m *Rooms) FindByArtist(artistID int) (*types.Room, error) {
	for _, room := range m.rooms {
		if room.ArtistID == artistID {
			return room.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: room for artist %d", types.ErrNotFound, artistID)
}

// Remove deletes the room and reports whether it existed. Orders that
// reference the room keep their room id; there is no cascade.
func (m *Rooms) Remove(id int) bool {
	for i, room := range m.rooms {
		if room.ID == id {
			m.rooms = append(m.rooms[:i], m.rooms[i+1:]...)
			slog.Debug("room removed", "room_id", id)
			return true
		}
	}
	return false
}

// Update replaces the room's name and artist assignment.
func (m *Rooms) Update(id int, name string, artistID int) error {
	room, err := m.lookup(id)
	if err != nil {
		return err
	}
	if err := room.SetName(name); err != nil {
		return err
	}
	room.SetArtistID(artistID)
	slog.Debug("room updated", "room_id", id, "name", name, "artist_id", artistID)
	return nil
}

// List returns deep copies of all rooms in registration order.
func (m *Rooms) List() []*types.Room {
	out := make([]*types.Room, len(m.rooms))
	for i, room := range m.rooms {
		out[i] = room.Clone()
	}
	return out
}

// InsertItem stocks a room with a quantity of an item.
func (m *Rooms) InsertItem(roomID, itemID int, itemName string, quantity int) error {
	room, err := m.lookup(roomID)
	if err != nil {
		return err
	}
	if err := room.InsertItem(itemID, itemName, quantity); err != nil {
		return err
	}
	slog.Debug("room item inserted", "room_id", roomID, "item_id", itemID, "quantity", quantity)
	return nil
}

// RemoveItem takes a quantity of an item out of a room.
func (m *Rooms) RemoveItem(roomID, itemID, quantity int) error {
	room, err := m.lookup(roomID)
	if err != nil {
		return err
	}
	if err := room.RemoveItem(itemID, quantity); err != nil {
		return err
	}
	slog.Debug("room item removed", "room_id", roomID, "item_id", itemID, "quantity", quantity)
	return nil
}

// lookup returns the stored room, not a copy.
func (m *Rooms) lookup(id int) (*types.Room, error) {
	for _, room := range m.rooms {
		if room.ID == id {
			return room, nil
		}
	}
	return nil, fmt.Errorf("%w: room with id %d", types.ErrNotFound, id)
}
