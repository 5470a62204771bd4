package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camarim/pkg/types"
)

func TestUsers(t *testing.T) {
	testCases := []struct {
		name  string
		check func(t *testing.T, m *Users)
	}{
		{
			name: "register assigns ids from one",
			check: func(t *testing.T, m *Users) {
				id, err := m.Register("Alice", "alice", "secret1")
				require.NoError(t, err)
				assert.Equal(t, 1, id)

				id, err = m.Register("Bob", "bob75", "secret2")
				require.NoError(t, err)
				assert.Equal(t, 2, id)
			},
		},
		{
			name: "duplicate logins are rejected",
			check: func(t *testing.T, m *Users) {
				_, err := m.Register("Alice", "alice", "secret1")
				require.NoError(t, err)

				_, err = m.Register("Another Alice", "alice", "secret2")
				require.ErrorIs(t, err, types.ErrDuplicate)
			},
		},
		{
			name: "register rejects short credentials",
			check: func(t *testing.T, m *Users) {
				_, err := m.Register("Alice", "al", "secret1")
				require.ErrorIs(t, err, types.ErrValidation)

				_, err = m.Register("Alice", "alice", "abc")
				require.ErrorIs(t, err, types.ErrValidation)
			},
		},
		{
			name: "authenticate matches exact credentials only",
			check: func(t *testing.T, m *Users) {
				_, err := m.Register("Alice", "alice", "secret1")
				require.NoError(t, err)

				assert.True(t, m.Authenticate("alice", "secret1"))
				assert.False(t, m.Authenticate("alice", "wrong"))
				assert.False(t, m.Authenticate("bob75", "secret1"))
			},
		},
		{
			name: "find by login",
			check: func(t *testing.T, m *Users) {
				id, err := m.Register("Alice", "alice", "secret1")
				require.NoError(t, err)

				user, err := m.FindByLogin("alice")
				require.NoError(t, err)
				assert.Equal(t, id, user.ID)

				_, err = m.FindByLogin("bob75")
				require.ErrorIs(t, err, types.ErrNotFound)
			},
		},
		{
			name: "update may not steal another user's login",
			check: func(t *testing.T, m *Users) {
				_, err := m.Register("Alice", "alice", "secret1")
				require.NoError(t, err)
				id, err := m.Register("Bob", "bob75", "secret2")
				require.NoError(t, err)

				err = m.Update(id, "Bob", "alice", "secret2")
				require.ErrorIs(t, err, types.ErrDuplicate)
			},
		},
		{
			name: "update keeping the same login is allowed",
			check: func(t *testing.T, m *Users) {
				id, err := m.Register("Alice", "alice", "secret1")
				require.NoError(t, err)

				require.NoError(t, m.Update(id, "Alice Cooper", "alice", "newsecret"))
				assert.True(t, m.Authenticate("alice", "newsecret"))
			},
		},
		{
			name: "ids are never reused after removal",
			check: func(t *testing.T, m *Users) {
				id, err := m.Register("Alice", "alice", "secret1")
				require.NoError(t, err)
				require.True(t, m.Remove(id))

				next, err := m.Register("Bob", "bob75", "secret2")
				require.NoError(t, err)
				assert.Equal(t, id+1, next)
			},
		},
		{
			name: "removed users no longer authenticate",
			check: func(t *testing.T, m *Users) {
				id, err := m.Register("Alice", "alice", "secret1")
				require.NoError(t, err)
				require.True(t, m.Remove(id))

				assert.False(t, m.Authenticate("alice", "secret1"))
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.check(t, newUsers())
		})
	}
}
