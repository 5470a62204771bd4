package types

import (
	"errors"
	"strings"
	"testing"
)

func TestNewUserValidation(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		u, err := NewUser(1, "Alice", "alice", "secret1")
		if err != nil {
			t.Fatal(err)
		}
		if u.ID != 1 || u.Login != "alice" {
			t.Fatalf("unexpected user %+v", u)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		if _, err := NewUser(1, "", "alice", "secret1"); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("short login", func(t *testing.T) {
		if _, err := NewUser(1, "Alice", "al", "secret1"); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("short password", func(t *testing.T) {
		if _, err := NewUser(1, "Alice", "alice", "abc"); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestUserValidateCredentials(t *testing.T) {
	u, _ := NewUser(1, "Alice", "alice", "secret1")

	if !u.ValidateCredentials("alice", "secret1") {
		t.Fatal("expected matching credentials to validate")
	}
	if u.ValidateCredentials("alice", "wrong") {
		t.Fatal("expected wrong password to fail")
	}
	if u.ValidateCredentials("Alice", "secret1") {
		t.Fatal("login comparison must be case sensitive")
	}
}

func TestUserDisplayOmitsPassword(t *testing.T) {
	u, _ := NewUser(1, "Alice", "alice", "secret1")
	if strings.Contains(u.Display(), "secret1") {
		t.Fatal("display must not expose the password")
	}
}
