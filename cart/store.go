package cart

import (
	"errors"
	"sync"
	"time"

	"solevara/models"
)

var ErrLineNotFound = errors.New("cart line not found")

// Store keeps in-progress carts in memory, one per user. Carts are not
// persisted: a restart loses them, matching the storefront's behavior.
// All methods are safe for concurrent handlers.
type Store struct {
	mu    sync.Mutex
	carts map[string][]models.CartLine
}

func NewStore() *Store {
	return &Store{carts: make(map[string][]models.CartLine)}
}

// AddToCart merges quantity into an existing line for the product, or
// appends a new line. Quantities below 1 are clamped to 1.
func (s *Store) AddToCart(userID string, product models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ProductID == product.ID {
			lines[i].Quantity += quantity
			return
		}
	}
	s.carts[userID] = append(lines, models.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	})
}

// UpdateQuantity sets the line's quantity. Values below 1 clamp to 1;
// removal is only ever explicit, via RemoveFromCart.
func (s *Store) UpdateQuantity(userID string, productID, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = quantity
			return nil
		}
	}
	return ErrLineNotFound
}

// RemoveFromCart deletes the line. No error if absent.
func (s *Store) RemoveFromCart(userID string, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].ProductID == productID {
			s.carts[userID] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

// ClearCart empties the user's cart. Called after a completed payment.
func (s *Store) ClearCart(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// Lines returns a copy of the cart in insertion order.
func (s *Store) Lines(userID string) []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}

// TotalItems is the sum of quantities; computed fresh on every read.
func (s *Store) TotalItems(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, l := range s.carts[userID] {
		total += l.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price x quantity over all lines.
func (s *Store) TotalPrice(userID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, l := range s.carts[userID] {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}

// View bundles the lines with both derived totals.
func (s *Store) View(userID string) models.CartView {
	lines := s.Lines(userID)
	items := 0
	price := 0.0
	for _, l := range lines {
		items += l.Quantity
		price += l.UnitPrice * float64(l.Quantity)
	}
	return models.CartView{Lines: lines, TotalItems: items, TotalPrice: price}
}
