package catalog

import (
	"sort"
	"strings"

	"github.com/Ramoniswack/vinc/internal/model"
)

// Sort orders for catalog queries.
const (
	SortFeatured  = "featured"
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
	SortPriceAsc  = "price-low"
	SortPriceDesc = "price-high"
	SortRating    = "rating"
)

// Price bucket values accepted in queries.
const (
	BucketUnder500 = "0-500"
	Bucket500To1K  = "500-1000"
	Bucket1KTo2K   = "1000-2000"
	BucketOver2K   = "2000+"
)

// Query describes a storefront catalog query. Within a facet the selected
// values are ORed; facets with at least one selection are ANDed together.
type Query struct {
	Search     string
	Sizes      []string
	Colors     []string
	Categories []string
	Prices     []string
	Sort       string
}

// Search returns the products matching q, sorted. An empty query returns the
// whole catalog in featured-first order.
func (s *Store) Search(q Query) []model.Product {
	filtered := filter(s.List(), q)
	sortProducts(filtered, q.Sort)
	return filtered
}

// NewArrivals returns products flagged as new or featured, sorted.
func (s *Store) NewArrivals(q Query) []model.Product {
	var subset []model.Product
	for _, p := range s.List() {
		if p.IsNew || p.IsFeatured {
			subset = append(subset, p)
		}
	}
	filtered := filter(subset, q)
	sortProducts(filtered, q.Sort)
	return filtered
}

// Featured returns the featured products in insertion order.
func (s *Store) Featured() []model.Product {
	var subset []model.Product
	for _, p := range s.List() {
		if p.IsFeatured {
			subset = append(subset, p)
		}
	}
	return subset
}

func filter(products []model.Product, q Query) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if !matchesSearch(p, q.Search) {
			continue
		}
		if len(q.Sizes) > 0 && !anyOverlap(q.Sizes, p.Sizes) {
			continue
		}
		if len(q.Colors) > 0 && !anyOverlap(q.Colors, p.Colors) {
			continue
		}
		if len(q.Categories) > 0 && !contains(q.Categories, p.Category) {
			continue
		}
		if len(q.Prices) > 0 && !anyBucket(q.Prices, p.Price) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p model.Product, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

func anyOverlap(selected, have []string) bool {
	for _, s := range selected {
		if contains(have, s) {
			return true
		}
	}
	return false
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func anyBucket(buckets []string, price float64) bool {
	for _, b := range buckets {
		if inBucket(b, price) {
			return true
		}
	}
	return false
}

func inBucket(bucket string, price float64) bool {
	switch bucket {
	case BucketUnder500:
		return price < 500
	case Bucket500To1K:
		return price >= 500 && price < 1000
	case Bucket1KTo2K:
		return price >= 1000 && price < 2000
	case BucketOver2K:
		return price >= 2000
	}
	return false
}

func sortProducts(products []model.Product, order string) {
	switch order {
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.Before(products[j].CreatedAt)
		})
	case SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	case SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name > products[j].Name
		})
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortFeatured:
		fallthrough
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsFeatured && !products[j].IsFeatured
		})
	}
}
