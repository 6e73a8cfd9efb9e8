// Package cart owns the cart line items. Lines are keyed by the full
// (product id, size, color) triple and carry a price snapshot taken at add
// time: later catalog price changes never touch an existing line.
package cart

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/Ramoniswack/vinc/internal/model"
	"github.com/Ramoniswack/vinc/internal/storage"
)

// Store is the cart state container.
type Store struct {
	mu    sync.RWMutex
	kv    storage.KV
	items []model.CartItem
}

// snapshot is the persisted form of the store. Only the line items are
// persisted; transient UI state is not.
type snapshot struct {
	Items []model.CartItem `json:"items"`
}

// New creates a cart store, rehydrating from kv if a snapshot exists.
func New(ctx context.Context, kv storage.KV) (*Store, error) {
	s := &Store{kv: kv}

	value, found, err := kv.Load(ctx, storage.CartKey)
	if err != nil {
		return nil, err
	}
	if found {
		var snap snapshot
		if err := json.Unmarshal(value, &snap); err != nil {
			return nil, err
		}
		s.items = snap.Items
	}

	return s, nil
}

// AddItem adds quantity of item to the cart. If a line with the same
// (product id, size, color) already exists its quantity is incremented,
// otherwise a new line is appended. A quantity below 1 defaults to 1.
func (s *Store) AddItem(ctx context.Context, item model.CartItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == item.ProductID && s.items[i].Variant.Matches(item.Variant) {
			s.items[i].Quantity += quantity
			s.persist(ctx)
			return
		}
	}

	item.Quantity = quantity
	s.items = append(s.items, item)
	s.persist(ctx)
}

// RemoveItem removes the line matching (id, variant). No-op when absent.
func (s *Store) RemoveItem(ctx context.Context, id int64, variant model.Variant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(ctx, id, variant)
}

// SetQuantity sets the matching line's quantity to exactly q. A quantity of
// zero or below means deletion, not a zero-quantity line. No-op when the
// line is absent.
func (s *Store) SetQuantity(ctx context.Context, id int64, variant model.Variant, q int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if q <= 0 {
		s.removeLocked(ctx, id, variant)
		return
	}

	for i := range s.items {
		if s.items[i].ProductID == id && s.items[i].Variant.Matches(variant) {
			s.items[i].Quantity = q
			s.persist(ctx)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist(ctx)
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems returns the sum of quantities across all lines.
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of price × quantity across all lines, using
// each line's snapshotted price.
func (s *Store) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0.0
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// removeLocked removes the matching line. Callers must hold s.mu.
func (s *Store) removeLocked(ctx context.Context, id int64, variant model.Variant) {
	for i := range s.items {
		if s.items[i].ProductID == id && s.items[i].Variant.Matches(variant) {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// persist writes the current snapshot. Failures are logged, not surfaced.
// Callers must hold s.mu.
func (s *Store) persist(ctx context.Context) {
	value, err := json.Marshal(snapshot{Items: s.items})
	if err != nil {
		slog.Error("encoding cart snapshot", "error", err)
		return
	}
	if err := s.kv.Save(ctx, storage.CartKey, value); err != nil {
		slog.Error("persisting cart snapshot", "error", err)
	}
}
