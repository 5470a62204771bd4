package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camarim/pkg/types"
)

func TestRooms(t *testing.T) {
	testCases := []struct {
		name  string
		check func(t *testing.T, m *Rooms)
	}{
		{
			name: "register assigns ids from one",
			check: func(t *testing.T, m *Rooms) {
				id, err := m.Register("Main", 1)
				require.NoError(t, err)
				assert.Equal(t, 1, id)

				id, err = m.Register("Annex", 2)
				require.NoError(t, err)
				assert.Equal(t, 2, id)
			},
		},
		{
			name: "find by id returns an independent copy",
			check: func(t *testing.T, m *Rooms) {
				id, err := m.Register("Main", 1)
				require.NoError(t, err)
				require.NoError(t, m.InsertItem(id, 1, "Towel", 5))

				room, err := m.FindByID(id)
				require.NoError(t, err)
				require.NoError(t, room.InsertItem(1, "Towel", 5))

				stored, err := m.FindByID(id)
				require.NoError(t, err)
				assert.Equal(t, 5, stored.QuantityOf(1))
			},
		},
		{
			name: "find by artist returns the first assigned room",
			check: func(t *testing.T, m *Rooms) {
				_, err := m.Register("Main", 1)
				require.NoError(t, err)
				_, err = m.Register("Annex", 7)
				require.NoError(t, err)

				room, err := m.FindByArtist(7)
				require.NoError(t, err)
				assert.Equal(t, "Annex", room.Name)

				_, err = m.FindByArtist(99)
				require.ErrorIs(t, err, types.ErrNotFound)
			},
		},
		{
			name: "remove reports whether the room existed",
			check: func(t *testing.T, m *Rooms) {
				id, err := m.Register("Main", 1)
				require.NoError(t, err)

				assert.True(t, m.Remove(id))
				assert.False(t, m.Remove(id))
			},
		},
		{
			name: "ids are never reused after removal",
			check: func(t *testing.T, m *Rooms) {
				id, err := m.Register("Main", 1)
				require.NoError(t, err)
				require.True(t, m.Remove(id))

				next, err := m.Register("Annex", 2)
				require.NoError(t, err)
				assert.Equal(t, id+1, next)
			},
		},
		{
			name: "update replaces name and artist assignment",
			check: func(t *testing.T, m *Rooms) {
				id, err := m.Register("Main", 1)
				require.NoError(t, err)

				require.NoError(t, m.Update(id, "Star Suite", 9))

				room, err := m.FindByID(id)
				require.NoError(t, err)
				assert.Equal(t, "Star Suite", room.Name)
				assert.Equal(t, 9, room.ArtistID)
			},
		},
		{
			name: "insert and remove round-trip through the manager",
			check: func(t *testing.T, m *Rooms) {
				id, err := m.Register("Main", 1)
				require.NoError(t, err)

				require.NoError(t, m.InsertItem(id, 1, "Towel", 5))
				require.NoError(t, m.RemoveItem(id, 1, 5))

				room, err := m.FindByID(id)
				require.NoError(t, err)
				assert.False(t, room.ContainsItem(1))
			},
		},
		{
			name: "shortage surfaces through the manager",
			check: func(t *testing.T, m *Rooms) {
				id, err := m.Register("Main", 1)
				require.NoError(t, err)
				require.NoError(t, m.InsertItem(id, 1, "Towel", 2))

				err = m.RemoveItem(id, 1, 3)
				require.ErrorIs(t, err, types.ErrRoomShortage)
			},
		},
		{
			name: "item operations on an unknown room",
			check: func(t *testing.T, m *Rooms) {
				require.ErrorIs(t, m.InsertItem(9, 1, "Towel", 1), types.ErrNotFound)
				require.ErrorIs(t, m.RemoveItem(9, 1, 1), types.ErrNotFound)
			},
		},
		{
			name: "list returns deep copies in registration order",
			check: func(t *testing.T, m *Rooms) {
				id, err := m.Register("Main", 1)
				require.NoError(t, err)
				_, err = m.Register("Annex", 2)
				require.NoError(t, err)

				rooms := m.List()
				require.Len(t, rooms, 2)
				assert.Equal(t, "Main", rooms[0].Name)

				require.NoError(t, rooms[0].InsertItem(1, "Towel", 1))
				stored, err := m.FindByID(id)
				require.NoError(t, err)
				assert.False(t, stored.ContainsItem(1))
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.check(t, newRooms())
		})
	}
}
