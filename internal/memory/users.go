package memory

import (
	"fmt"
	"log/slog"

	"camarim/pkg/types"
)

var _ types.Users = (*Users)(nil)

// Users manages the system operators. Construct through NewRegistry.
type Users struct {
	users  []types.User
	nextID int
}

func newUsers() *Users {
	return &Users{nextID: 1}
}

// Register adds a new user and returns their id. Logins are unique.
func (m *Users) Register(name, login, password string) (int, error) {
	user, err := types.NewUser(m.nextID, name, login, password)
	if err != nil {
		return 0, err
	}
	if _, err := m.FindByLogin(login); err == nil {
		return 0, fmt.Errorf("%w: login %q is already in use", types.ErrDuplicate, login)
	}
	m.users = append(m.users, *user)
	m.nextID++
	slog.Debug("user registered", "user_id", user.ID, "login", login)
	return user.ID, nil
}

// FindByID returns a copy of the user with the given id.
func (m *Users) FindByID(id int) (types.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return types.User{}, fmt.Errorf("%w: user with id %d", types.ErrNotFound, id)
}

// FindByLogin returns a copy of the user with the given login.
func (m *Users) FindByLogin(login string) (types.User, error) {
	for _, user := range m.users {
		if user.Login == login {
			return user, nil
		}
	}
	return types.User{}, fmt.Errorf("%w: user with login %q", types.ErrNotFound, login)
}

// Remove deletes the user and reports whether they existed.
func (m *Users) Remove(id int) bool {
	for i, user := range m.users {
		if user.ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			slog.Debug("user removed", "user_id", id)
			return true
		}
	}
	return false
}

// Update replaces the user's fields atomically. The new login must not
// belong to a different user.
func (m *Users) Update(id int, name, login, password string) error {
	idx := -1
	for i, user := range m.users {
		if user.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: user with id %d", types.ErrNotFound, id)
	}
	updated, err := types.NewUser(id, name, login, password)
	if err != nil {
		return err
	}
	if other, err := m.FindByLogin(login); err == nil && other.ID != id {
		return fmt.Errorf("%w: login %q is already in use", types.ErrDuplicate, login)
	}
	m.users[idx] = *updated
	slog.Debug("user updated", "user_id", id, "login", login)
	return nil
}

// Authenticate reports whether some registered user matches both
// credentials exactly.
func (m *Users) Authenticate(login, password string) bool {
	for _, user := range m.users {
		if user.ValidateCredentials(login, password) {
			return true
		}
	}
	return false
}

// List returns a snapshot of all users in registration order.
func (m *Users) List() []types.User {
	out := make([]types.User, len(m.users))
	copy(out, m.users)
	return out
}
