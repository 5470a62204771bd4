package types

import (
	"errors"
	"testing"
)

func TestNewOrderValidation(t *testing.T) {
	if _, err := NewOrder(1, -1, "Alice"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for negative room id, got %v", err)
	}
	if _, err := NewOrder(1, 1, ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty artist name, got %v", err)
	}
}

func TestOrderAddItem(t *testing.T) {
	t.Run("merges quantities", func(t *testing.T) {
		o, err := NewOrder(1, 1, "Alice")
		if err != nil {
			t.Fatal(err)
		}
		_ = o.AddItem(1, "Water", 2)
		if err := o.AddItem(1, "Water", 3); err != nil {
			t.Fatal(err)
		}
		items := o.Items()
		if len(items) != 1 || items[0].Quantity != 5 {
			t.Fatalf("expected one line with quantity 5, got %+v", items)
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		o, _ := NewOrder(1, 1, "Alice")
		if err := o.AddItem(-1, "Water", 1); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		if err := o.AddItem(1, "", 1); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		if err := o.AddItem(1, "Water", 0); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestOrderRemoveItem(t *testing.T) {
	o, _ := NewOrder(1, 1, "Alice")
	_ = o.AddItem(1, "Water", 2)

	removed, err := o.RemoveItem(1)
	if err != nil {
		t.Fatal(err)
	}
	if !removed {
		t.Fatal("expected removal to be reported")
	}

	removed, err = o.RemoveItem(1)
	if err != nil {
		t.Fatal(err)
	}
	if removed {
		t.Fatal("expected second removal to report false")
	}
}

func TestOrderFulfillment(t *testing.T) {
	o, _ := NewOrder(1, 1, "Alice")
	_ = o.AddItem(1, "Water", 2)

	o.MarkFulfilled()
	if !o.IsFulfilled() {
		t.Fatal("expected order to be fulfilled")
	}

	if err := o.AddItem(2, "Towel", 1); !errors.Is(err, ErrOrderFulfilled) {
		t.Fatalf("expected ErrOrderFulfilled, got %v", err)
	}
	if _, err := o.RemoveItem(1); !errors.Is(err, ErrOrderFulfilled) {
		t.Fatalf("expected ErrOrderFulfilled, got %v", err)
	}

	// Marking again is a no-op and never reverts.
	o.MarkFulfilled()
	if !o.IsFulfilled() {
		t.Fatal("fulfilled flag must be monotonic")
	}
}
