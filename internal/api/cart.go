package api

import (
	"net/http"

	"github.com/Ramoniswack/vinc/internal/cart"
	"github.com/Ramoniswack/vinc/internal/model"
)

// CartHandler handles cart endpoints.
type CartHandler struct {
	Cart *cart.Store
}

type addCartItemRequest struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	Price    float64       `json:"price"`
	Image    string        `json:"image"`
	Variant  model.Variant `json:"variant"`
	Quantity int           `json:"quantity"`
}

type cartLineRequest struct {
	ID       int64         `json:"id"`
	Variant  model.Variant `json:"variant"`
	Quantity int           `json:"quantity"`
}

type cartResponse struct {
	Items      []model.CartItem `json:"items"`
	TotalItems int              `json:"totalItems"`
	TotalPrice float64          `json:"totalPrice"`
}

func (h *CartHandler) cartState() cartResponse {
	items := h.Cart.Items()
	if items == nil {
		items = []model.CartItem{}
	}
	return cartResponse{
		Items:      items,
		TotalItems: h.Cart.TotalItems(),
		TotalPrice: h.Cart.TotalPrice(),
	}
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.cartState())
}

// Summary handles GET /api/cart/summary.
func (h *CartHandler) Summary(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Cart.Summary())
}

// AddItem handles POST /api/cart/items. The request carries the price the
// shopper saw; it becomes the line's snapshot.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ID == 0 {
		jsonError(w, http.StatusBadRequest, "product id required")
		return
	}

	h.Cart.AddItem(r.Context(), model.CartItem{
		ProductID: req.ID,
		Name:      req.Name,
		Price:     req.Price,
		Image:     req.Image,
		Variant:   req.Variant,
	}, req.Quantity)

	jsonResponse(w, http.StatusOK, h.cartState())
}

// UpdateItem handles PUT /api/cart/items. A quantity of zero or below
// removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req cartLineRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.Cart.SetQuantity(r.Context(), req.ID, req.Variant, req.Quantity)
	jsonResponse(w, http.StatusOK, h.cartState())
}

// RemoveItem handles DELETE /api/cart/items.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var req cartLineRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.Cart.RemoveItem(r.Context(), req.ID, req.Variant)
	jsonResponse(w, http.StatusOK, h.cartState())
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.Cart.Clear(r.Context())
	jsonResponse(w, http.StatusOK, h.cartState())
}
