// Package cart keeps visitor carts in the local key-value store, keyed by the
// cart id cookie.
package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"gallery-storefront/internal/localstore"
	"gallery-storefront/internal/logger"
)

const keyPrefix = "cart:"

var ErrItemNotInCart = errors.New("item not in cart")

type Item struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Price    int        `json:"price"`
	Quantity int        `json:"quantity"`
	Image    string     `json:"image,omitempty"`
	AddedAt  *time.Time `json:"addedAt,omitempty"`
}

type Store struct {
	kv  localstore.KV
	log *logger.Logger
	now func() time.Time

	mu sync.Mutex
}

func NewStore(kv localstore.KV, log *logger.Logger) *Store {
	return &Store{kv: kv, log: log, now: time.Now}
}

func key(cartID string) string {
	return keyPrefix + cartID
}

// Items returns the cart contents. An unknown or unreadable cart is empty.
func (s *Store) Items(cartID string) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(cartID)
}

// Add puts item in the cart, or bumps its quantity by one when it is already
// there.
func (s *Store) Add(cartID string, item Item) ([]Item, error) {
	if strings.TrimSpace(item.ID) == "" {
		return nil, errors.New("item id is required")
	}
	return s.mutate(cartID, func(items []Item) ([]Item, error) {
		if i := indexOf(items, item.ID); i >= 0 {
			items[i].Quantity++
			return items, nil
		}
		now := s.now().UTC()
		item.Quantity = 1
		item.AddedAt = &now
		return append(items, item), nil
	})
}

func (s *Store) Remove(cartID, itemID string) ([]Item, error) {
	return s.mutate(cartID, func(items []Item) ([]Item, error) {
		i := indexOf(items, itemID)
		if i < 0 {
			return nil, ErrItemNotInCart
		}
		return slices.Delete(items, i, i+1), nil
	})
}

// SetQuantity replaces an item's quantity; zero or less removes it.
func (s *Store) SetQuantity(cartID, itemID string, quantity int) ([]Item, error) {
	return s.mutate(cartID, func(items []Item) ([]Item, error) {
		i := indexOf(items, itemID)
		if i < 0 {
			return nil, ErrItemNotInCart
		}
		if quantity <= 0 {
			return slices.Delete(items, i, i+1), nil
		}
		items[i].Quantity = quantity
		return items, nil
	})
}

// Reconcile passes every line through current and persists the result.
// Lines for which current reports false are dropped and their ids returned.
func (s *Store) Reconcile(cartID string, current func(Item) (Item, bool, error)) ([]Item, []string, error) {
	dropped := []string{}
	items, err := s.mutate(cartID, func(items []Item) ([]Item, error) {
		kept := items[:0]
		for _, it := range items {
			next, ok, err := current(it)
			if err != nil {
				return nil, err
			}
			if !ok {
				dropped = append(dropped, it.ID)
				continue
			}
			next.ID = it.ID
			next.Quantity = it.Quantity
			next.AddedAt = it.AddedAt
			kept = append(kept, next)
		}
		return kept, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return items, dropped, nil
}

func (s *Store) Clear(cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.RemoveItem(key(cartID)); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (s *Store) mutate(cartID string, fn func([]Item) ([]Item, error)) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(cartID)
	if err != nil {
		return nil, err
	}
	items, err = fn(items)
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode cart: %w", err)
	}
	if err := s.kv.SetItem(key(cartID), string(b)); err != nil {
		return nil, fmt.Errorf("persist cart: %w", err)
	}
	return items, nil
}

func (s *Store) load(cartID string) ([]Item, error) {
	raw, ok, err := s.kv.GetItem(key(cartID))
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}
	items := []Item{}
	if !ok || raw == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Warn().Err(err).Str("cart_id", cartID).Msg("cart is corrupt, starting empty")
		return []Item{}, nil
	}
	return items, nil
}

func indexOf(items []Item, id string) int {
	return slices.IndexFunc(items, func(it Item) bool { return it.ID == id })
}

// Subtotal is the undiscounted sum of price times quantity.
func Subtotal(items []Item) int {
	var sum int
	for _, it := range items {
		sum += it.Price * it.Quantity
	}
	return sum
}

// Total is the subtotal with the website discount applied.
func Total(items []Item) float64 {
	return ApplyDiscount(float64(Subtotal(items)))
}

func Count(items []Item) int {
	var n int
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
