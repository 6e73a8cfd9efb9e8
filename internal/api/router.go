package api

import (
	"net/http"

	"github.com/Ramoniswack/vinc/internal/cart"
	"github.com/Ramoniswack/vinc/internal/catalog"
	"github.com/Ramoniswack/vinc/internal/imaging"
	"github.com/Ramoniswack/vinc/internal/session"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(
	catalogStore *catalog.Store,
	cartStore *cart.Store,
	sessionStore *session.Store,
	previews *imaging.PreviewCache,
	jwtSecret string,
) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{Session: sessionStore, JWTSecret: jwtSecret}
	productsHandler := &ProductsHandler{Catalog: catalogStore}
	cartHandler := &CartHandler{Cart: cartStore}
	previewsHandler := &PreviewsHandler{Previews: previews}

	authMW := AuthMiddleware(jwtSecret)
	admin := func(h http.HandlerFunc) http.Handler {
		return authMW(RequireAdmin(h))
	}

	// Auth.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.HandleFunc("GET /api/auth/session", authHandler.Current)

	// Storefront: public reads.
	mux.HandleFunc("GET /api/products", productsHandler.List)
	mux.HandleFunc("GET /api/products/new", productsHandler.New)
	mux.HandleFunc("GET /api/products/featured", productsHandler.Featured)
	mux.HandleFunc("GET /api/products/facets", productsHandler.Facets)
	mux.HandleFunc("GET /api/products/{id}", productsHandler.Get)

	// Cart: public, single local cart.
	mux.HandleFunc("GET /api/cart", cartHandler.Get)
	mux.HandleFunc("GET /api/cart/summary", cartHandler.Summary)
	mux.HandleFunc("POST /api/cart/items", cartHandler.AddItem)
	mux.HandleFunc("PUT /api/cart/items", cartHandler.UpdateItem)
	mux.HandleFunc("DELETE /api/cart/items", cartHandler.RemoveItem)
	mux.HandleFunc("DELETE /api/cart", cartHandler.Clear)

	// Admin: catalog writes and photo uploads.
	mux.Handle("POST /api/admin/products", admin(productsHandler.Create))
	mux.Handle("PUT /api/admin/products/{id}", admin(productsHandler.Update))
	mux.Handle("DELETE /api/admin/products/{id}", admin(productsHandler.Delete))
	mux.Handle("POST /api/admin/previews", admin(previewsHandler.Upload))
	mux.Handle("DELETE /api/admin/previews/{id}", admin(previewsHandler.Delete))

	// Previews resolve publicly so product pages can render them.
	mux.HandleFunc("GET /api/previews/{id}", previewsHandler.Get)

	return mux
}
