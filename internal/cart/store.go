// Package cart owns the canonical line item list and keeps the persisted
// copy in sync after every mutation.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"shopfront/internal/domain"
	"shopfront/internal/kvstore"
)

// StorageKey is the default slot the serialized cart lives under.
const StorageKey = "cart"

// taxRate is the single fixed rate applied to the subtotal.
const taxRate = 0.15

// Store holds the cart and persists it as a JSON array of line items.
// Persistence failures are logged, never surfaced: the page keeps working
// and the next successful write wins.
type Store struct {
	kv     kvstore.Store
	key    string
	logger *log.Logger
	items  []domain.LineItem
}

// New builds a Store persisting under key, or StorageKey when key is empty.
func New(kv kvstore.Store, key string, logger *log.Logger) *Store {
	if key == "" {
		key = StorageKey
	}
	return &Store{kv: kv, key: key, logger: logger}
}

// Load reads the persisted cart. A missing key, a storage error and
// malformed JSON all mean the same thing: start with an empty cart.
func (s *Store) Load(ctx context.Context) {
	s.items = nil
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Printf("load cart %q: %v", s.key, err)
		}
		return
	}
	var items []domain.LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Printf("discarding malformed cart %q: %v", s.key, err)
		return
	}
	s.items = items
}

// Add merges the product into the cart by name: an existing line gains one
// quantity, otherwise a new line is appended with quantity 1. The price
// arrives as the string carried by the add-to-cart control. An empty name
// or a price that does not parse as a non-negative finite number is
// rejected with domain.ErrInvalidItem and leaves the cart untouched.
func (s *Store) Add(ctx context.Context, name, price, id string) (domain.LineItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.LineItem{}, domain.ErrInvalidItem
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return domain.LineItem{}, domain.ErrInvalidItem
	}

	for i := range s.items {
		if s.items[i].Name == name {
			s.items[i].Quantity++
			s.persist(ctx)
			return s.items[i], nil
		}
	}

	if id == "" {
		id = "product-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	item := domain.LineItem{Name: name, Price: value, Quantity: 1, ID: id}
	s.items = append(s.items, item)
	s.persist(ctx)
	return item, nil
}

// Remove drops the line at the given display position. Out-of-range indexes
// are ignored: the index comes from a rendered list that may be stale after
// an earlier removal.
func (s *Store) Remove(ctx context.Context, index int) {
	if index < 0 || index >= len(s.items) {
		return
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	s.persist(ctx)
}

// Clear empties the cart and persists the empty list.
func (s *Store) Clear(ctx context.Context) {
	s.items = nil
	s.persist(ctx)
}

// Items returns a copy of the lines in display order.
func (s *Store) Items() []domain.LineItem {
	out := make([]domain.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Count is the total quantity across all lines, shown in the nav badge.
func (s *Store) Count() int {
	n := 0
	for _, item := range s.items {
		n += item.Quantity
	}
	return n
}

// Totals derives subtotal, 15% tax and total from the current lines.
func (s *Store) Totals() domain.Totals {
	var subtotal float64
	for _, item := range s.items {
		subtotal += item.LineTotal()
	}
	subtotal = round2(subtotal)
	tax := round2(subtotal * taxRate)
	return domain.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    round2(subtotal + tax),
	}
}

func (s *Store) persist(ctx context.Context) {
	items := s.items
	if items == nil {
		items = []domain.LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		s.logger.Printf("marshal cart %q: %v", s.key, err)
		return
	}
	if err := s.kv.Set(ctx, s.key, string(raw)); err != nil {
		s.logger.Printf("persist cart %q: %v", s.key, err)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
