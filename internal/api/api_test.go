package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ramoniswack/vinc/internal/auth"
	"github.com/Ramoniswack/vinc/internal/cart"
	"github.com/Ramoniswack/vinc/internal/catalog"
	"github.com/Ramoniswack/vinc/internal/imaging"
	"github.com/Ramoniswack/vinc/internal/model"
	"github.com/Ramoniswack/vinc/internal/session"
	"github.com/Ramoniswack/vinc/internal/storage"
)

const testJWTSecret = "test-secret"

// newTestServer builds a server over fresh stores without signing anyone in.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()
	kv := storage.NewMemory()

	catalogStore, err := catalog.New(ctx, kv)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	catalogStore.SeedDefaults(ctx)

	cartStore, err := cart.New(ctx, kv)
	if err != nil {
		t.Fatalf("cart: %v", err)
	}

	verifier, err := session.NewStaticVerifier(session.DefaultAdminUser, session.DefaultAdminPassword)
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}
	sessionStore, err := session.New(ctx, kv, verifier)
	if err != nil {
		t.Fatalf("session: %v", err)
	}

	router := NewRouter(catalogStore, cartStore, sessionStore, imaging.NewPreviewCache(), testJWTSecret)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server
}

func setupTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	server := newTestServer(t)

	// Get token.
	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "admin123"})
	resp, err := http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d", resp.StatusCode)
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	json.NewDecoder(resp.Body).Decode(&loginResp)
	if loginResp.Token == "" {
		t.Fatal("empty token from login")
	}

	return server, loginResp.Token
}

func authRequest(method, url, token string, body any) (*http.Request, error) {
	var bodyReader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(data)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func doJSON(t *testing.T, req *http.Request, target any) int {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if target != nil {
		json.NewDecoder(resp.Body).Decode(target)
	}
	return resp.StatusCode
}

func TestLoginEndpoint(t *testing.T) {
	server, _ := setupTestServer(t)

	// Test invalid credentials.
	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "wrong"})
	resp, _ := http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad password, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestSessionEndpoint(t *testing.T) {
	server, _ := setupTestServer(t)

	resp, err := http.Get(server.URL + "/api/auth/session")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var sessionResp struct {
		IsAuthenticated bool `json:"isAuthenticated"`
	}
	json.NewDecoder(resp.Body).Decode(&sessionResp)
	if !sessionResp.IsAuthenticated {
		t.Error("expected authenticated session after setup login")
	}
}

func TestProductListAndFilters(t *testing.T) {
	server, _ := setupTestServer(t)

	var products []model.Product
	resp, err := http.Get(server.URL + "/api/products")
	if err != nil {
		t.Fatal(err)
	}
	json.NewDecoder(resp.Body).Decode(&products)
	resp.Body.Close()
	if len(products) != 8 {
		t.Fatalf("expected 8 seeded products, got %d", len(products))
	}

	resp, err = http.Get(server.URL + "/api/products?q=jacket&color=Olive")
	if err != nil {
		t.Fatal(err)
	}
	json.NewDecoder(resp.Body).Decode(&products)
	resp.Body.Close()
	if len(products) != 1 || products[0].Name != "Camo Jacket" {
		t.Errorf("expected Camo Jacket, got %+v", products)
	}
}

func TestProductGetNotFound(t *testing.T) {
	server, _ := setupTestServer(t)

	resp, err := http.Get(server.URL + "/api/products/999")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	server, _ := setupTestServer(t)

	body, _ := json.Marshal(map[string]any{"name": "Sneaky", "price": 1})
	resp, err := http.Post(server.URL+"/api/admin/products", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", resp.StatusCode)
	}
}

func TestAdminRoutesRejectNonAdminClaims(t *testing.T) {
	server, _ := setupTestServer(t)

	// A valid token whose admin claim is false must be forbidden, not merely
	// unauthorized.
	token, err := auth.GenerateToken(testJWTSecret, "viewer", false)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req, _ := authRequest("POST", server.URL+"/api/admin/products", token,
		map[string]any{"name": "Sneaky", "price": 1})
	if status := doJSON(t, req, nil); status != http.StatusForbidden {
		t.Errorf("expected 403 for non-admin token, got %d", status)
	}

	req, _ = authRequest("DELETE", server.URL+"/api/admin/products/1", token, nil)
	if status := doJSON(t, req, nil); status != http.StatusForbidden {
		t.Errorf("expected 403 for non-admin delete, got %d", status)
	}

	// The catalog must be untouched by the rejected requests.
	var products []model.Product
	resp, err := http.Get(server.URL + "/api/products")
	if err != nil {
		t.Fatal(err)
	}
	json.NewDecoder(resp.Body).Decode(&products)
	resp.Body.Close()
	if len(products) != 8 {
		t.Errorf("expected the 8 seeded products, got %d", len(products))
	}
}

func TestFailedLoginLeavesSessionEmpty(t *testing.T) {
	server := newTestServer(t)

	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "wrong"})
	resp, err := http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}

	// The store must not have been mutated on the failure path.
	resp, err = http.Get(server.URL + "/api/auth/session")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var sessionResp struct {
		IsAuthenticated bool `json:"isAuthenticated"`
	}
	json.NewDecoder(resp.Body).Decode(&sessionResp)
	if sessionResp.IsAuthenticated {
		t.Error("failed login must not leave an authenticated session")
	}
}

func TestAdminProductCRUD(t *testing.T) {
	server, token := setupTestServer(t)

	// Create.
	req, _ := authRequest("POST", server.URL+"/api/admin/products", token, map[string]any{
		"name":     "Linen Blazer",
		"price":    1150,
		"category": "Blazers",
		"sizes":    []string{"M", "L"},
		"colors":   []string{"Navy"},
		"inStock":  true,
	})
	var created model.Product
	if status := doJSON(t, req, &created); status != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", status)
	}
	if created.ID != 9 {
		t.Errorf("expected id 9 after the seed catalog, got %d", created.ID)
	}

	// Update a single field; others must survive.
	req, _ = authRequest("PUT", fmt.Sprintf("%s/api/admin/products/%d", server.URL, created.ID), token,
		map[string]any{"price": 999})
	var updated model.Product
	if status := doJSON(t, req, &updated); status != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", status)
	}
	if updated.Price != 999 || updated.Name != "Linen Blazer" {
		t.Errorf("partial update went wrong: %+v", updated)
	}

	// Update a missing id.
	req, _ = authRequest("PUT", server.URL+"/api/admin/products/999", token, map[string]any{"price": 1})
	if status := doJSON(t, req, nil); status != http.StatusNotFound {
		t.Errorf("expected 404 for missing id, got %d", status)
	}

	// Delete, then the product is gone from reads.
	req, _ = authRequest("DELETE", fmt.Sprintf("%s/api/admin/products/%d", server.URL, created.ID), token, nil)
	if status := doJSON(t, req, nil); status != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", status)
	}
	resp, _ := http.Get(fmt.Sprintf("%s/api/products/%d", server.URL, created.ID))
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", resp.StatusCode)
	}
}

func TestCartFlow(t *testing.T) {
	server, _ := setupTestServer(t)

	addLine := func(size string, quantity int) {
		body, _ := json.Marshal(map[string]any{
			"id":       6,
			"name":     "Regal Combo Set",
			"price":    2420,
			"variant":  map[string]string{"size": size, "color": "Navy"},
			"quantity": quantity,
		})
		resp, err := http.Post(server.URL+"/api/cart/items", "application/json", bytes.NewReader(body))
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
	}

	addLine("M", 2)
	addLine("M", 3)
	addLine("L", 1)

	var state struct {
		Items      []model.CartItem `json:"items"`
		TotalItems int              `json:"totalItems"`
		TotalPrice float64          `json:"totalPrice"`
	}
	resp, err := http.Get(server.URL + "/api/cart")
	if err != nil {
		t.Fatal(err)
	}
	json.NewDecoder(resp.Body).Decode(&state)
	resp.Body.Close()

	if len(state.Items) != 2 {
		t.Fatalf("expected 2 lines (merged M, separate L), got %d", len(state.Items))
	}
	if state.TotalItems != 6 {
		t.Errorf("expected 6 items, got %d", state.TotalItems)
	}

	// Summary over 500 ships free; tax truncates.
	var summary cart.Summary
	resp, err = http.Get(server.URL + "/api/cart/summary")
	if err != nil {
		t.Fatal(err)
	}
	json.NewDecoder(resp.Body).Decode(&summary)
	resp.Body.Close()
	if summary.Shipping != 0 {
		t.Errorf("expected free shipping, got %v", summary.Shipping)
	}
	if summary.Total != summary.Subtotal+summary.Shipping+summary.Tax {
		t.Errorf("summary does not add up: %+v", summary)
	}

	// Drive the merged line to zero through PUT.
	req, _ := http.NewRequest("PUT", server.URL+"/api/cart/items", bytes.NewReader(mustJSON(map[string]any{
		"id":       6,
		"variant":  map[string]string{"size": "M", "color": "Navy"},
		"quantity": 0,
	})))
	if status := doJSON(t, req, &state); status != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", status)
	}
	if len(state.Items) != 1 || state.Items[0].Variant.Size != "L" {
		t.Errorf("expected only the L line to remain, got %+v", state.Items)
	}

	// Clear.
	req, _ = http.NewRequest("DELETE", server.URL+"/api/cart", nil)
	doJSON(t, req, &state)
	if state.TotalItems != 0 {
		t.Errorf("expected empty cart, got %d items", state.TotalItems)
	}
}

func TestPreviewUploadFlow(t *testing.T) {
	server, token := setupTestServer(t)

	// Build a multipart body with a small PNG.
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			img.Set(x, y, color.RGBA{0, 255, 0, 255})
		}
	}
	var pngBuf bytes.Buffer
	png.Encode(&pngBuf, img)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, _ := writer.CreateFormFile("image", "photo.png")
	part.Write(pngBuf.Bytes())
	writer.Close()

	req, _ := http.NewRequest("POST", server.URL+"/api/admin/previews", &body)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var uploadResp struct {
		Reference string `json:"reference"`
	}
	if status := doJSON(t, req, &uploadResp); status != http.StatusCreated {
		t.Fatalf("upload: expected 201, got %d", status)
	}
	if uploadResp.Reference == "" {
		t.Fatal("expected a preview reference")
	}

	// The reference resolves to the processed image.
	resp, err := http.Get(server.URL + uploadResp.Reference)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for preview, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", ct)
	}
}

func mustJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
