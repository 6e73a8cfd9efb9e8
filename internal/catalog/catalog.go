// Package catalog owns the product records: CRUD with monotonic id
// assignment, derived storefront queries, and a JSON snapshot persisted on
// every mutation.
package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/Ramoniswack/vinc/internal/model"
	"github.com/Ramoniswack/vinc/internal/storage"
)

// Store is the product catalog state container. All operations are total:
// absence is reported through a false second return, never an error.
type Store struct {
	mu       sync.RWMutex
	kv       storage.KV
	products []model.Product
	lastID   int64
	now      func() time.Time
}

// snapshot is the persisted form of the store.
type snapshot struct {
	Products        []model.Product `json:"products"`
	LastGeneratedID int64           `json:"lastGeneratedId"`
}

// Input is a product payload minus the store-assigned fields (id, timestamps,
// rating, reviews). The store performs no validation; that is the caller's
// responsibility.
type Input struct {
	Name             string
	Price            float64
	CompareAt        float64
	Description      string
	Image            string
	AdditionalImages []string
	Colors           []string
	Sizes            []string
	InStock          bool
	IsNew            bool
	IsFeatured       bool
	Category         string
	Material         string
	Care             string
	SKU              string
}

// Patch is a partial product update. Nil fields are left untouched; slice
// fields replace wholesale when non-nil.
type Patch struct {
	Name             *string
	Price            *float64
	CompareAt        *float64
	Description      *string
	Image            *string
	AdditionalImages []string
	Colors           []string
	Sizes            []string
	InStock          *bool
	IsNew            *bool
	IsFeatured       *bool
	Category         *string
	Material         *string
	Care             *string
	SKU              *string
}

// New creates a catalog store, rehydrating from kv if a snapshot exists.
func New(ctx context.Context, kv storage.KV) (*Store, error) {
	s := &Store{kv: kv, now: time.Now}

	value, found, err := kv.Load(ctx, storage.ProductKey)
	if err != nil {
		return nil, err
	}
	if found {
		var snap snapshot
		if err := json.Unmarshal(value, &snap); err != nil {
			return nil, err
		}
		s.products = snap.Products
		s.lastID = snap.LastGeneratedID
	}

	return s, nil
}

// Empty reports whether the store has never held a product. A catalog whose
// products were all deleted is not empty: its id counter has advanced.
func (s *Store) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastID == 0 && len(s.products) == 0
}

// Add creates a product from input. The id comes from a monotonic counter
// kept alongside the collection, so deleted ids are never reused. Rating and
// reviews start at zero and no operation mutates them afterwards.
func (s *Store) Add(ctx context.Context, input Input) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	now := s.now()
	product := model.Product{
		ID:               s.lastID,
		Name:             input.Name,
		Price:            input.Price,
		CompareAt:        input.CompareAt,
		Description:      input.Description,
		Image:            input.Image,
		AdditionalImages: input.AdditionalImages,
		Colors:           input.Colors,
		Sizes:            input.Sizes,
		InStock:          input.InStock,
		IsNew:            input.IsNew,
		IsFeatured:       input.IsFeatured,
		Category:         input.Category,
		Material:         input.Material,
		Care:             input.Care,
		SKU:              input.SKU,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	s.products = append(s.products, product)

	s.persist(ctx)
	return product
}

// Update merges patch over the product with the given id, stamps UpdatedAt,
// and preserves the product's position in the collection. Returns false
// (and a zero product) when the id is absent.
func (s *Store) Update(ctx context.Context, id int64, patch Patch) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		applyPatch(p, patch)
		p.UpdatedAt = s.now()

		s.persist(ctx)
		return *p, true
	}
	return model.Product{}, false
}

// Delete removes the product with the given id. No-op when absent, and no
// referential check against carts: existing cart lines keep their snapshot.
func (s *Store) Delete(ctx context.Context, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// Get returns the product with the given id.
func (s *Store) Get(id int64) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// List returns a copy of the full catalog in insertion order.
func (s *Store) List() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

func applyPatch(p *model.Product, patch Patch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.CompareAt != nil {
		p.CompareAt = *patch.CompareAt
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.AdditionalImages != nil {
		p.AdditionalImages = patch.AdditionalImages
	}
	if patch.Colors != nil {
		p.Colors = patch.Colors
	}
	if patch.Sizes != nil {
		p.Sizes = patch.Sizes
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
	}
	if patch.IsNew != nil {
		p.IsNew = *patch.IsNew
	}
	if patch.IsFeatured != nil {
		p.IsFeatured = *patch.IsFeatured
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Material != nil {
		p.Material = *patch.Material
	}
	if patch.Care != nil {
		p.Care = *patch.Care
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
}

// persist writes the current snapshot. Persistence is a fire-and-forget side
// effect of mutation: failures are logged, the in-memory state stands.
// Callers must hold s.mu.
func (s *Store) persist(ctx context.Context) {
	snap := snapshot{Products: s.products, LastGeneratedID: s.lastID}
	value, err := json.Marshal(snap)
	if err != nil {
		slog.Error("encoding catalog snapshot", "error", err)
		return
	}
	if err := s.kv.Save(ctx, storage.ProductKey, value); err != nil {
		slog.Error("persisting catalog snapshot", "error", err)
	}
}
