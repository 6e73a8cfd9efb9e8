package model

// Variant is a specific (size, color) combination of a product. It is part of
// cart-line identity: the same product in two sizes is two distinct lines.
type Variant struct {
	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
	SKU   string `json:"sku,omitempty"`
}

// Matches reports whether two variants identify the same cart line.
// Only size and color participate; SKU is informational.
func (v Variant) Matches(other Variant) bool {
	return v.Size == other.Size && v.Color == other.Color
}

// CartItem is one line in the cart. Price is a snapshot taken when the line
// was added; later catalog price changes do not affect it.
type CartItem struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Variant   Variant `json:"variant"`
	Quantity  int     `json:"quantity"`
}
