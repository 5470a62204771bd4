package types

import "fmt"

// Minimum credential lengths enforced by the user setters.
const (
	MinLoginLen    = 3
	MinPasswordLen = 4
)

var _ Person = (*User)(nil)

// User is a system operator with login credentials.
// The password is stored and compared in clear text.
type User struct {
	ID       int
	Name     string
	Login    string
	Password string
}

// NewUser builds a validated user. The id is assigned by the manager.
func NewUser(id int, name, login, password string) (*User, error) {
	u := &User{ID: id}
	if err := u.SetName(name); err != nil {
		return nil, err
	}
	if err := u.SetLogin(login); err != nil {
		return nil, err
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetName replaces the user name. Empty names are rejected.
func (u *User) SetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: user name must not be empty", ErrValidation)
	}
	u.Name = name
	return nil
}

// SetLogin replaces the login. Logins shorter than MinLoginLen are rejected.
func (u *User) SetLogin(login string) error {
	if login == "" {
		return fmt.Errorf("%w: login must not be empty", ErrValidation)
	}
	if len(login) < MinLoginLen {
		return fmt.Errorf("%w: login must have at least %d characters", ErrValidation, MinLoginLen)
	}
	u.Login = login
	return nil
}

// SetPassword replaces the password. Passwords shorter than
// MinPasswordLen are rejected.
func (u *User) SetPassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password must not be empty", ErrValidation)
	}
	if len(password) < MinPasswordLen {
		return fmt.Errorf("%w: password must have at least %d characters", ErrValidation, MinPasswordLen)
	}
	u.Password = password
	return nil
}

// ValidateCredentials reports whether both fields match exactly.
func (u *User) ValidateCredentials(login, password string) bool {
	return u.Login == login && u.Password == password
}

// Display returns a one-line summary without the password.
func (u *User) Display() string {
	return fmt.Sprintf("User [ID: %d, Name: %s, Login: %s]", u.ID, u.Name, u.Login)
}
