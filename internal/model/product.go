package model

import "time"

// Product is a single catalog record. Prices are in whole currency units.
type Product struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Price            float64   `json:"price"`
	CompareAt        float64   `json:"compareAt,omitempty"`
	Description      string    `json:"description,omitempty"`
	Image            string    `json:"image"`
	AdditionalImages []string  `json:"additionalImages"`
	Colors           []string  `json:"colors"`
	Sizes            []string  `json:"sizes"`
	InStock          bool      `json:"inStock"`
	IsNew            bool      `json:"isNew"`
	IsFeatured       bool      `json:"isFeatured"`
	Category         string    `json:"category"`
	Material         string    `json:"material,omitempty"`
	Care             string    `json:"care,omitempty"`
	SKU              string    `json:"sku,omitempty"`
	Rating           float64   `json:"rating"`
	Reviews          int       `json:"reviews"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Sizes.
const (
	SizeXS  = "XS"
	SizeS   = "S"
	SizeM   = "M"
	SizeL   = "L"
	SizeXL  = "XL"
	SizeXXL = "XXL"
)

// Colors.
const (
	ColorBlack = "Black"
	ColorWhite = "White"
	ColorNavy  = "Navy"
	ColorCamel = "Camel"
	ColorOlive = "Olive"
	ColorGrey  = "Grey"
	ColorRed   = "Red"
	ColorBlue  = "Blue"
	ColorBrown = "Brown"
)

// Categories.
const (
	CategoryBlazers     = "Blazers"
	CategoryTrousers    = "Trousers"
	CategoryShirts      = "Shirts"
	CategoryOuterwear   = "Outerwear"
	CategoryAccessories = "Accessories"
	CategorySets        = "Sets"
)

// AllSizes lists every size the storefront filters on, in display order.
var AllSizes = []string{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL}

// AllColors lists every color the storefront filters on.
var AllColors = []string{
	ColorBlack, ColorWhite, ColorNavy, ColorCamel,
	ColorOlive, ColorGrey, ColorRed, ColorBlue, ColorBrown,
}

// AllCategories lists every product category.
var AllCategories = []string{
	CategoryBlazers, CategoryTrousers, CategoryShirts,
	CategoryOuterwear, CategoryAccessories, CategorySets,
}
