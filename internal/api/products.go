package api

import (
	"net/http"
	"strconv"

	"github.com/Ramoniswack/vinc/internal/catalog"
	"github.com/Ramoniswack/vinc/internal/model"
)

// ProductsHandler handles storefront product reads and admin CRUD.
type ProductsHandler struct {
	Catalog *catalog.Store
}

type createProductRequest struct {
	Name             string   `json:"name"`
	Price            float64  `json:"price"`
	CompareAt        float64  `json:"compareAt"`
	Description      string   `json:"description"`
	Image            string   `json:"image"`
	AdditionalImages []string `json:"additionalImages"`
	Colors           []string `json:"colors"`
	Sizes            []string `json:"sizes"`
	InStock          bool     `json:"inStock"`
	IsNew            bool     `json:"isNew"`
	IsFeatured       bool     `json:"isFeatured"`
	Category         string   `json:"category"`
	Material         string   `json:"material"`
	Care             string   `json:"care"`
	SKU              string   `json:"sku"`
}

// updateProductRequest is a partial patch: absent fields stay untouched.
type updateProductRequest struct {
	Name             *string  `json:"name"`
	Price            *float64 `json:"price"`
	CompareAt        *float64 `json:"compareAt"`
	Description      *string  `json:"description"`
	Image            *string  `json:"image"`
	AdditionalImages []string `json:"additionalImages"`
	Colors           []string `json:"colors"`
	Sizes            []string `json:"sizes"`
	InStock          *bool    `json:"inStock"`
	IsNew            *bool    `json:"isNew"`
	IsFeatured       *bool    `json:"isFeatured"`
	Category         *string  `json:"category"`
	Material         *string  `json:"material"`
	Care             *string  `json:"care"`
	SKU              *string  `json:"sku"`
}

// queryFromRequest maps URL parameters onto a catalog query. Facet
// parameters repeat: ?size=M&size=L selects either size.
func queryFromRequest(r *http.Request) catalog.Query {
	params := r.URL.Query()
	return catalog.Query{
		Search:     params.Get("q"),
		Sizes:      params["size"],
		Colors:     params["color"],
		Categories: params["category"],
		Prices:     params["price"],
		Sort:       params.Get("sort"),
	}
}

// List handles GET /api/products.
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	products := h.Catalog.Search(queryFromRequest(r))
	if products == nil {
		products = []model.Product{}
	}
	jsonResponse(w, http.StatusOK, products)
}

// New handles GET /api/products/new.
func (h *ProductsHandler) New(w http.ResponseWriter, r *http.Request) {
	products := h.Catalog.NewArrivals(queryFromRequest(r))
	if products == nil {
		products = []model.Product{}
	}
	jsonResponse(w, http.StatusOK, products)
}

// Facets handles GET /api/products/facets: the filter dimensions the
// storefront renders, with the price buckets the list endpoint accepts.
func (h *ProductsHandler) Facets(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string][]string{
		"sizes":      model.AllSizes,
		"colors":     model.AllColors,
		"categories": model.AllCategories,
		"prices": {
			catalog.BucketUnder500,
			catalog.Bucket500To1K,
			catalog.Bucket1KTo2K,
			catalog.BucketOver2K,
		},
	})
}

// Featured handles GET /api/products/featured.
func (h *ProductsHandler) Featured(w http.ResponseWriter, r *http.Request) {
	products := h.Catalog.Featured()
	if products == nil {
		products = []model.Product{}
	}
	jsonResponse(w, http.StatusOK, products)
}

// Get handles GET /api/products/{id}.
func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, ok := h.Catalog.Get(id)
	if !ok {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}
	jsonResponse(w, http.StatusOK, product)
}

// Create handles POST /api/admin/products.
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	if req.Price < 0 {
		jsonError(w, http.StatusBadRequest, "price must not be negative")
		return
	}

	product := h.Catalog.Add(r.Context(), catalog.Input{
		Name:             req.Name,
		Price:            req.Price,
		CompareAt:        req.CompareAt,
		Description:      req.Description,
		Image:            req.Image,
		AdditionalImages: req.AdditionalImages,
		Colors:           req.Colors,
		Sizes:            req.Sizes,
		InStock:          req.InStock,
		IsNew:            req.IsNew,
		IsFeatured:       req.IsFeatured,
		Category:         req.Category,
		Material:         req.Material,
		Care:             req.Care,
		SKU:              req.SKU,
	})

	jsonResponse(w, http.StatusCreated, product)
}

// Update handles PUT /api/admin/products/{id}.
func (h *ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req updateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Price != nil && *req.Price < 0 {
		jsonError(w, http.StatusBadRequest, "price must not be negative")
		return
	}

	product, ok := h.Catalog.Update(r.Context(), id, catalog.Patch{
		Name:             req.Name,
		Price:            req.Price,
		CompareAt:        req.CompareAt,
		Description:      req.Description,
		Image:            req.Image,
		AdditionalImages: req.AdditionalImages,
		Colors:           req.Colors,
		Sizes:            req.Sizes,
		InStock:          req.InStock,
		IsNew:            req.IsNew,
		IsFeatured:       req.IsFeatured,
		Category:         req.Category,
		Material:         req.Material,
		Care:             req.Care,
		SKU:              req.SKU,
	})
	if !ok {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}

	jsonResponse(w, http.StatusOK, product)
}

// Delete handles DELETE /api/admin/products/{id}. Deleting is unconditional:
// a missing id still answers OK, and carts referencing the product keep
// their lines.
func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	h.Catalog.Delete(r.Context(), id)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "product deleted"})
}
