package catalog

import (
	"context"
	"time"

	"github.com/Ramoniswack/vinc/internal/model"
)

// SeedDefaults installs the launch collection into an empty store. It writes
// records directly (Add would zero the ratings) and advances the id counter
// past the seeded ids.
func (s *Store) SeedDefaults(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastID != 0 || len(s.products) != 0 {
		return
	}

	s.products = append(s.products, defaultProducts()...)
	s.lastID = int64(len(s.products))
	s.persist(ctx)
}

func defaultProducts() []model.Product {
	return []model.Product{
		{
			ID:               1,
			Name:             "White Jacket",
			Price:            1200,
			CompareAt:        1500,
			Description:      "Elegant white jacket with premium cotton blend. Perfect for formal and semi-formal occasions.",
			Image:            "/Products/WhiteJack.jpg",
			AdditionalImages: []string{"/Products/WhiteJack2.jpg"},
			Colors:           []string{model.ColorWhite, model.ColorCamel},
			Sizes:            []string{model.SizeS, model.SizeM, model.SizeL, model.SizeXL},
			InStock:          true,
			IsFeatured:       true,
			Category:         model.CategoryOuterwear,
			Material:         "80% Cotton, 20% Polyester",
			Care:             "Dry clean only",
			SKU:              "WJ-001",
			Rating:           4.8,
			Reviews:          24,
			CreatedAt:        date(2025, 6, 15, 14, 30),
			UpdatedAt:        date(2025, 6, 15, 14, 30),
		},
		{
			ID:               2,
			Name:             "Mocca Shirt",
			Price:            650,
			Description:      "Premium mocca shirt made with the finest Egyptian cotton.",
			Image:            "/Products/MoccaShirt.jpg",
			AdditionalImages: []string{"/Products/MoccaShirt2.jpg"},
			Colors:           []string{model.ColorCamel, model.ColorWhite},
			Sizes:            []string{model.SizeXS, model.SizeS, model.SizeM, model.SizeL},
			InStock:          true,
			IsNew:            true,
			Category:         model.CategoryShirts,
			Material:         "100% Egyptian Cotton",
			Care:             "Machine wash cold, tumble dry low",
			SKU:              "MS-002",
			Rating:           4.9,
			Reviews:          18,
			CreatedAt:        date(2025, 7, 20, 9, 15),
			UpdatedAt:        date(2025, 7, 20, 9, 15),
		},
		{
			ID:               3,
			Name:             "Regal Chinos",
			Price:            850,
			CompareAt:        950,
			Description:      "Elegant chinos with perfect fit and comfort for all-day wear.",
			Image:            "/Products/RegalChinos.jpg",
			AdditionalImages: []string{"/Products/RegalChinos2.jpg"},
			Colors:           []string{model.ColorNavy, model.ColorCamel, model.ColorBlack},
			Sizes:            []string{model.SizeS, model.SizeM, model.SizeL, model.SizeXL},
			IsFeatured:       true,
			Category:         model.CategoryTrousers,
			Material:         "98% Cotton, 2% Elastane",
			Care:             "Machine wash cold",
			SKU:              "RC-003",
			Rating:           4.7,
			Reviews:          31,
			CreatedAt:        date(2025, 5, 10, 11, 45),
			UpdatedAt:        date(2025, 8, 5, 16, 30),
		},
		{
			ID:               4,
			Name:             "Noragi Overshirt",
			Price:            980,
			Description:      "Japanese-inspired overshirt with traditional details and modern fit.",
			Image:            "/Products/Noragi.jpg",
			AdditionalImages: []string{"/Products/Noragi2.jpg"},
			Colors:           []string{model.ColorNavy, model.ColorBlack},
			Sizes:            []string{model.SizeM, model.SizeL, model.SizeXL},
			InStock:          true,
			Category:         model.CategoryShirts,
			Material:         "100% Linen",
			Care:             "Hand wash cold",
			SKU:              "NO-004",
			Rating:           5.0,
			Reviews:          12,
			CreatedAt:        date(2025, 7, 25, 10, 20),
			UpdatedAt:        date(2025, 7, 25, 10, 20),
		},
		{
			ID:               5,
			Name:             "Camo Jacket",
			Price:            1380,
			Description:      "Stylish camouflage jacket with premium materials and excellent craftsmanship.",
			Image:            "/Products/CamoJack.jpg",
			AdditionalImages: []string{"/Products/CamoJack2.jpg", "/Products/CamoJack3.jpg"},
			Colors:           []string{model.ColorOlive, model.ColorBlack},
			Sizes:            []string{model.SizeS, model.SizeM, model.SizeL},
			InStock:          true,
			IsNew:            true,
			IsFeatured:       true,
			Category:         model.CategoryOuterwear,
			Material:         "95% Cotton, 5% Polyester",
			Care:             "Dry clean only",
			SKU:              "CJ-005",
			Rating:           4.6,
			Reviews:          45,
			CreatedAt:        date(2025, 8, 2, 15, 10),
			UpdatedAt:        date(2025, 8, 2, 15, 10),
		},
		{
			ID:               6,
			Name:             "Regal Combo Set",
			Price:            2420,
			Description:      "Premium matching set including blazer and trousers for a complete elegant look.",
			Image:            "/Products/RegalCombo.jpeg",
			AdditionalImages: []string{"/Products/RegalCombo2.jpeg", "/Products/RegalCombo3.jpeg"},
			Colors:           []string{model.ColorNavy, model.ColorBlack, model.ColorGrey},
			Sizes:            []string{model.SizeXS, model.SizeS, model.SizeM, model.SizeL, model.SizeXL},
			InStock:          true,
			IsNew:            true,
			IsFeatured:       true,
			Category:         model.CategorySets,
			Material:         "Wool Blend",
			Care:             "Dry clean only",
			SKU:              "RCS-006",
			Rating:           4.8,
			Reviews:          28,
			CreatedAt:        date(2025, 8, 15, 9, 30),
			UpdatedAt:        date(2025, 8, 15, 9, 30),
		},
		{
			ID:               7,
			Name:             "Zenkage Jacket",
			Price:            1800,
			CompareAt:        2200,
			Description:      "Luxurious jacket with exquisite attention to detail and unmatched comfort.",
			Image:            "/Products/ZenkageJack.jpg",
			AdditionalImages: []string{"/Products/ZenkageJack2.jpg", "/Products/ZenkageJack3.jpg"},
			Colors:           []string{model.ColorBlack, model.ColorNavy},
			Sizes:            []string{model.SizeS, model.SizeM, model.SizeL, model.SizeXL},
			InStock:          true,
			Category:         model.CategoryOuterwear,
			Material:         "Cashmere Blend",
			Care:             "Dry clean only",
			SKU:              "ZJ-007",
			Rating:           4.9,
			Reviews:          15,
			CreatedAt:        date(2025, 6, 20, 13, 15),
			UpdatedAt:        date(2025, 6, 20, 13, 15),
		},
		{
			ID:               8,
			Name:             "Mocca Combo Set",
			Price:            2280,
			Description:      "Elegant mocca set that combines style and comfort for a refined look.",
			Image:            "/Products/MoccaCombo.png",
			AdditionalImages: []string{"/Products/MoccaCombo2.png", "/Products/MoccaCombo3.jpg"},
			Colors:           []string{model.ColorCamel, model.ColorWhite, model.ColorGrey},
			Sizes:            []string{model.SizeXS, model.SizeS, model.SizeM, model.SizeL, model.SizeXL},
			InStock:          true,
			IsFeatured:       true,
			Category:         model.CategorySets,
			Material:         "Premium Cotton Blend",
			Care:             "Dry clean only",
			SKU:              "MCS-008",
			Rating:           4.5,
			Reviews:          67,
			CreatedAt:        date(2025, 7, 5, 10, 45),
			UpdatedAt:        date(2025, 7, 5, 10, 45),
		},
	}
}

func date(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}
