package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/pledgevault/internal/middleware"
	"github.com/atinyakov/pledgevault/internal/models"
)

// ItemService defines the interface for item operations required by the
// ItemHandler. Every method is scoped to the authenticated user id; the
// handlers never take an identity from the request payload.
type ItemService interface {
	Create(ctx context.Context, userID, title, description string, amount *float64) (*models.Item, error)
	List(ctx context.Context, userID string) ([]models.Item, error)
	Get(ctx context.Context, userID, id string) (*models.Item, error)
	Update(ctx context.Context, userID, id string, upd models.ItemUpdate) (*models.Item, error)
	Delete(ctx context.Context, userID, id string) error
}

// ItemHandler handles HTTP requests for the item CRUD endpoints.
type ItemHandler struct {
	ItemService ItemService
	Log         *zap.Logger
}

// CreateItemRequest represents the JSON payload for item creation.
// Amount is a pointer so an omitted amount is distinguishable from 0.
type CreateItemRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
}

// UpdateItemRequest represents the JSON payload for a partial item update.
// Absent fields leave the stored values unchanged.
type UpdateItemRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
}

// Create handles POST /api/items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request"})
		return
	}

	item, err := h.ItemService.Create(r.Context(), userID, req.Title, req.Description, req.Amount)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// List handles GET /api/items. It returns the authenticated user's items,
// newest first; other users' items are never included.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	items, err := h.ItemService.List(r.Context(), userID)
	if err != nil {
		writeError(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /api/items/{id}. An item owned by another user yields
// the same 404 as a nonexistent one.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	item, err := h.ItemService.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Update handles PUT /api/items/{id} with a partial payload.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request"})
		return
	}

	item, err := h.ItemService.Update(r.Context(), userID, chi.URLParam(r, "id"), models.ItemUpdate{
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		writeError(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	if err := h.ItemService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
