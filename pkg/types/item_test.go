package types

import (
	"errors"
	"testing"
)

func TestNewItemValidation(t *testing.T) {
	if _, err := NewItem(1, "", 2.50); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty name, got %v", err)
	}
	if _, err := NewItem(1, "Water", -1); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for negative price, got %v", err)
	}
	if _, err := NewItem(1, "Water", 0); err != nil {
		t.Fatalf("zero price is allowed, got %v", err)
	}
}

func TestItemEqual(t *testing.T) {
	a := Item{ID: 1, Name: "Water", Price: 2.50}
	b := Item{ID: 1, Name: "Sparkling Water", Price: 3.00}
	c := Item{ID: 2, Name: "Water", Price: 2.50}

	if !a.Equal(b) {
		t.Fatal("items with the same id must be equal")
	}
	if a.Equal(c) {
		t.Fatal("items with different ids must not be equal")
	}
}
