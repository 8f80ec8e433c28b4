// Package http provides HTTP handlers for user authentication
// and item management.
package http

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/pledgevault/internal/middleware"
	"github.com/atinyakov/pledgevault/internal/models"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register creates a user and issues a token for it.
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
	// Login verifies credentials and issues a token.
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	// Me resolves an authenticated identity to its user record.
	Me(ctx context.Context, userID string) (*models.User, error)
}

// AuthHandler handles HTTP requests for registration, login and
// identity lookup.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
	// Log records unexpected failures.
	Log *zap.Logger
}

// RegisterRequest represents the JSON payload for user registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the JSON payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is the body returned by Register and Login.
type authResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// Register handles POST /api/auth/register.
// It expects a JSON body with name, email and password, creates the user
// and responds 201 with a token and the public user fields. The password
// digest is never part of the response.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request"})
		return
	}

	user, token, err := h.AuthService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{Token: token, User: user.Public()})
}

// Login handles POST /api/auth/login.
// An unknown email and a wrong password both produce the same 401.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request"})
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Token: token, User: user.Public()})
}

// Me handles GET /api/auth/me.
// It returns the public fields of the authenticated user, or 404 if the
// token's identity no longer resolves to a stored user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	user, err := h.AuthService.Me(r.Context(), userID)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, user.Public())
}
