package service

import (
	"sync"

	"github.com/omkaralabs/divinestore/internal/domain"
)

// cartService implements domain.CartService with a single in-memory cart.
// There is no durable storage; a fresh process always starts with an empty cart.
type cartService struct {
	mu      sync.Mutex
	items   []domain.CartItem
	open    bool
	subs    map[int]func(domain.CartSummary)
	nextSub int
}

// NewCartService creates the process-wide cart store, empty and closed.
func NewCartService() domain.CartService {
	return &cartService{
		subs: make(map[int]func(domain.CartSummary)),
	}
}

// Add puts one unit of the product in the cart, incrementing the quantity if
// a line item for the product already exists.
func (s *cartService) Add(product domain.Product) (*domain.CartSummary, error) {
	if !product.InStock {
		return nil, domain.ErrOutOfStock
	}

	s.mu.Lock()
	if i := s.indexOf(product.ID); i >= 0 {
		s.items[i].Quantity++
		s.items[i].LineTotal = s.items[i].Price * int64(s.items[i].Quantity)
	} else {
		s.items = append(s.items, domain.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  1,
			LineTotal: product.Price,
		})
	}
	summary := s.summaryLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()

	s.notify(subs, summary)
	return &summary, nil
}

// UpdateQuantity sets a line item's quantity to an absolute value. Zero or
// less removes the item; unknown product ids are a no-op.
func (s *cartService) UpdateQuantity(productID string, quantity int) (*domain.CartSummary, error) {
	s.mu.Lock()
	i := s.indexOf(productID)
	changed := false
	switch {
	case i < 0:
		// no-op
	case quantity <= 0:
		s.items = append(s.items[:i], s.items[i+1:]...)
		changed = true
	default:
		s.items[i].Quantity = quantity
		s.items[i].LineTotal = s.items[i].Price * int64(quantity)
		changed = true
	}
	summary := s.summaryLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()

	if changed {
		s.notify(subs, summary)
	}
	return &summary, nil
}

// Remove deletes the line item for the product id. Idempotent.
func (s *cartService) Remove(productID string) (*domain.CartSummary, error) {
	return s.UpdateQuantity(productID, 0)
}

// Clear empties the cart. Totals become zero; the open flag is untouched.
func (s *cartService) Clear() {
	s.mu.Lock()
	s.items = nil
	summary := s.summaryLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()

	s.notify(subs, summary)
}

// SetOpen toggles drawer visibility without touching items or totals.
func (s *cartService) SetOpen(open bool) {
	s.mu.Lock()
	s.open = open
	summary := s.summaryLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()

	s.notify(subs, summary)
}

// Summary returns a snapshot of the current cart state.
func (s *cartService) Summary() *domain.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := s.summaryLocked()
	return &summary
}

// Subscribe registers fn for change notifications and returns an unsubscribe func.
func (s *cartService) Subscribe(fn func(domain.CartSummary)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// indexOf returns the position of the line item for productID, or -1.
// Callers must hold s.mu.
func (s *cartService) indexOf(productID string) int {
	for i, item := range s.items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// summaryLocked recomputes the derived totals from the line items.
// Callers must hold s.mu.
func (s *cartService) summaryLocked() domain.CartSummary {
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)

	var totalItems int
	var totalPrice int64
	for _, item := range items {
		totalItems += item.Quantity
		totalPrice += item.Price * int64(item.Quantity)
	}

	return domain.CartSummary{
		Items:      items,
		TotalItems: totalItems,
		TotalPrice: totalPrice,
		Open:       s.open,
	}
}

// subscribersLocked snapshots the subscriber list so notifications run
// outside the lock. Callers must hold s.mu.
func (s *cartService) subscribersLocked() []func(domain.CartSummary) {
	subs := make([]func(domain.CartSummary), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}

func (s *cartService) notify(subs []func(domain.CartSummary), summary domain.CartSummary) {
	for _, fn := range subs {
		fn(summary)
	}
}
