package api

import (
	"log/slog"
	"net/http"

	"github.com/Ramoniswack/vinc/internal/auth"
	"github.com/Ramoniswack/vinc/internal/model"
	"github.com/Ramoniswack/vinc/internal/session"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	Session   *session.Store
	JWTSecret string
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		jsonError(w, http.StatusBadRequest, "username and password required")
		return
	}

	// Mint the token before touching the session so a signing failure cannot
	// leave the store authenticated behind a failed response. Every account
	// in this system is the admin, so the claim is known up front.
	token, err := auth.GenerateToken(h.JWTSecret, req.Username, true)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	if !h.Session.Login(r.Context(), req.Username, req.Password) {
		slog.Warn("login failed", "username", req.Username, "remote", r.RemoteAddr)
		jsonError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	user, _ := h.Session.Current()

	slog.Info("user logged in", "user", user.Username)
	jsonResponse(w, http.StatusOK, loginResponse{Token: token, User: user})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Session.Logout(r.Context())
	jsonResponse(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Current handles GET /api/auth/session.
func (h *AuthHandler) Current(w http.ResponseWriter, r *http.Request) {
	user, ok := h.Session.Current()
	if !ok {
		jsonResponse(w, http.StatusOK, map[string]any{
			"user":            nil,
			"isAuthenticated": false,
		})
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"user":            user,
		"isAuthenticated": true,
	})
}
