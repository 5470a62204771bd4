package memory

import (
	"fmt"
	"log/slog"

	"camarim/pkg/types"
)

var _ types.Artists = (*Artists)(nil)

// Artists manages the performers. Construct through NewRegistry.
type Artists struct {
	artists []types.Artist
	nextID  int
}

func newArtists() *Artists {
	return &Artists{nextID: 1}
}

// Register adds a new artist and returns their id.
func (m *Artists) Register(name string, roomID int) (int, error) {
	artist, err := types.NewArtist(m.nextID, name, roomID)
	if err != nil {
		return 0, err
	}
	m.artists = append(m.artists, *artist)
	m.nextID++
	slog.Debug("artist registered", "artist_id", artist.ID, "name", name, "room_id", roomID)
	return artist.ID, nil
}

// FindByID returns a copy of the artist with the given id.
func (m *Artists) FindByID(id int) (types.Artist, error) {
	for _, artist := range m.artists {
		if artist.ID == id {
			return artist, nil
		}
	}
	return types.Artist{}, fmt.Errorf("%w: artist with id %d", types.ErrNotFound, id)
}

// FindByRoom returns copies of every artist assigned to the room.
func (m *Artists) FindByRoom(roomID int) []types.Artist {
	var out []types.Artist
	for _, artist := range m.artists {
		if artist.RoomID == roomID {
			out = append(out, artist)
		}
	}
	return out
}

// Remove deletes the artist and reports whether they existed.
func (m *Artists) Remove(id int) bool {
	for i, artist := range m.artists {
		if artist.ID == id {
			m.artists = append(m.artists[:i], m.artists[i+1:]...)
			slog.Debug("artist removed", "artist_id", id)
			return true
		}
	}
	return false
}

// Update replaces the artist's name and room assignment atomically.
func (m *Artists) Update(id int, name string, roomID int) error {
	idx := -1
	for i, artist := range m.artists {
		if artist.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: artist with id %d", types.ErrNotFound, id)
	}
	updated, err := types.NewArtist(id, name, roomID)
	if err != nil {
		return err
	}
	m.artists[idx] = *updated
	slog.Debug("artist updated", "artist_id", id, "name", name, "room_id", roomID)
	return nil
}

// List returns a snapshot of all artists in registration order.
func (m *Artists) List() []types.Artist {
	out := make([]types.Artist, len(m.artists))
	copy(out, m.artists)
	return out
}
