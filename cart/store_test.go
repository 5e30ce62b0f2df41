package cart

import (
	"testing"

	"solevara/models"
)

func product(id int, name string, price float64) models.Product {
	return models.Product{ID: id, Name: name, Price: price}
}

func TestAddToCartMergesLines(t *testing.T) {
	s := NewStore()
	s.AddToCart("u1", product(1, "Rose Absolute", 2500), 1)
	s.AddToCart("u1", product(1, "Rose Absolute", 2500), 2)

	lines := s.Lines("u1")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", lines[0].Quantity)
	}
}

func TestAddToCartClampsQuantity(t *testing.T) {
	s := NewStore()
	s.AddToCart("u1", product(1, "Rose Absolute", 2500), 0)
	s.AddToCart("u1", product(2, "Neroli Dawn", 2100), -5)

	for _, l := range s.Lines("u1") {
		if l.Quantity != 1 {
			t.Fatalf("expected clamped quantity 1 for product %d, got %d", l.ProductID, l.Quantity)
		}
	}
}

func TestNoDuplicateProductLines(t *testing.T) {
	s := NewStore()
	for i := 0; i < 10; i++ {
		s.AddToCart("u1", product(1, "Rose Absolute", 2500), 1)
		s.AddToCart("u1", product(2, "Neroli Dawn", 2100), 1)
	}

	seen := make(map[int]bool)
	for _, l := range s.Lines("u1") {
		if seen[l.ProductID] {
			t.Fatalf("duplicate line for product %d", l.ProductID)
		}
		seen[l.ProductID] = true
	}
}

func TestUpdateQuantityClampsToOne(t *testing.T) {
	s := NewStore()
	s.AddToCart("u1", product(1, "Rose Absolute", 2500), 3)

	if err := s.UpdateQuantity("u1", 1, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Lines("u1")[0].Quantity; got != 1 {
		t.Fatalf("expected quantity clamped to 1, got %d", got)
	}
	if got := len(s.Lines("u1")); got != 1 {
		t.Fatalf("line must not be removed by a zero update, got %d lines", got)
	}
}

func TestUpdateQuantityUnknownLine(t *testing.T) {
	s := NewStore()
	if err := s.UpdateQuantity("u1", 99, 2); err != ErrLineNotFound {
		t.Fatalf("expected ErrLineNotFound, got %v", err)
	}
}

func TestRemoveFromCartIsIdempotent(t *testing.T) {
	s := NewStore()
	s.AddToCart("u1", product(1, "Rose Absolute", 2500), 1)

	s.RemoveFromCart("u1", 1)
	s.RemoveFromCart("u1", 1) // absent: no error, no panic

	if got := len(s.Lines("u1")); got != 0 {
		t.Fatalf("expected empty cart, got %d lines", got)
	}
}

func TestDerivedTotals(t *testing.T) {
	s := NewStore()
	s.AddToCart("u1", product(1, "Rose Absolute", 2500), 2)
	s.AddToCart("u1", product(2, "Neroli Dawn", 2100), 1)

	if got := s.TotalItems("u1"); got != 3 {
		t.Fatalf("expected 3 total items, got %d", got)
	}
	want := 2500.0*2 + 2100.0
	if got := s.TotalPrice("u1"); got != want {
		t.Fatalf("expected total price %.2f, got %.2f", want, got)
	}
}

func TestTotalsTrackMutations(t *testing.T) {
	s := NewStore()
	s.AddToCart("u1", product(1, "Rose Absolute", 2500), 2)
	s.AddToCart("u1", product(2, "Neroli Dawn", 2100), 3)
	s.UpdateQuantity("u1", 2, 1)
	s.RemoveFromCart("u1", 1)

	sum := 0.0
	for _, l := range s.Lines("u1") {
		sum += l.UnitPrice * float64(l.Quantity)
	}
	if got := s.TotalPrice("u1"); got != sum {
		t.Fatalf("TotalPrice %.2f diverged from line sum %.2f", got, sum)
	}
}

func TestClearCartZeroesTotals(t *testing.T) {
	s := NewStore()
	s.AddToCart("u1", product(1, "Rose Absolute", 2500), 2)
	s.ClearCart("u1")

	if got := s.TotalItems("u1"); got != 0 {
		t.Fatalf("expected 0 items after clear, got %d", got)
	}
	if got := s.TotalPrice("u1"); got != 0 {
		t.Fatalf("expected 0 price after clear, got %.2f", got)
	}
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	s := NewStore()
	s.AddToCart("u1", product(1, "Rose Absolute", 2500), 1)
	s.AddToCart("u2", product(1, "Rose Absolute", 2500), 5)

	if got := s.TotalItems("u1"); got != 1 {
		t.Fatalf("expected u1 to have 1 item, got %d", got)
	}
	if got := s.TotalItems("u2"); got != 5 {
		t.Fatalf("expected u2 to have 5 items, got %d", got)
	}
}
