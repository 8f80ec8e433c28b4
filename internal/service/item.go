package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atinyakov/pledgevault/internal/models"
)

// ItemRepository defines the persistence operations needed by the ItemService.
// Implementations must key every lookup and mutation on (id, owner) so that
// items of other users behave exactly like nonexistent ones.
type ItemRepository interface {
	// InsertItem persists a new item.
	InsertItem(ctx context.Context, item models.Item) error
	// ListItemsByOwner retrieves all items of a user, newest first.
	ListItemsByOwner(ctx context.Context, userID string) ([]models.Item, error)
	// GetItemByID fetches a single item by id for the given owner.
	GetItemByID(ctx context.Context, userID, id string) (*models.Item, error)
	// UpdateItem applies a partial update to the item matched by (id, owner).
	UpdateItem(ctx context.Context, userID, id string, upd models.ItemUpdate) (*models.Item, error)
	// DeleteItem removes the item matched by (id, owner).
	DeleteItem(ctx context.Context, userID, id string) error
}

// ItemService implements owner-scoped CRUD over items. Every operation
// takes the authenticated user id as its first argument; none accept an
// identity from the payload.
type ItemService struct {
	// repo is the underlying persistence repository.
	repo ItemRepository
}

// NewItemService constructs an ItemService with the provided repository.
func NewItemService(repo ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// Create persists a new item owned by userID. amount is a pointer so a
// missing amount can be told apart from zero: nil fails with ErrValidation,
// zero is a valid pledge.
func (s *ItemService) Create(ctx context.Context, userID, title, description string, amount *float64) (*models.Item, error) {
	title = strings.TrimSpace(title)
	if title == "" || amount == nil {
		return nil, fmt.Errorf("%w: title and amount are required", ErrValidation)
	}
	if *amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}

	now := time.Now().UTC()
	item := models.Item{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Amount:      *amount,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.InsertItem(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns all items owned by userID, most recently created first.
// The result is never nil.
func (s *ItemService) List(ctx context.Context, userID string) ([]models.Item, error) {
	items, err := s.repo.ListItemsByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

// Get returns the item with the given id if it is owned by userID,
// otherwise ErrNotFound.
func (s *ItemService) Get(ctx context.Context, userID, id string) (*models.Item, error) {
	return s.repo.GetItemByID(ctx, userID, id)
}

// Update applies the provided fields of upd to the item matched by
// (id, userID). Fields left nil are unchanged. Provided fields must still
// satisfy the create-time invariants.
func (s *ItemService) Update(ctx context.Context, userID, id string, upd models.ItemUpdate) (*models.Item, error) {
	if upd.Title != nil {
		trimmed := strings.TrimSpace(*upd.Title)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: title must not be empty", ErrValidation)
		}
		upd.Title = &trimmed
	}
	if upd.Amount != nil && *upd.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}
	return s.repo.UpdateItem(ctx, userID, id, upd)
}

// Delete removes the item matched by (id, userID), or fails with
// ErrNotFound if there is no such item for this owner.
func (s *ItemService) Delete(ctx context.Context, userID, id string) error {
	return s.repo.DeleteItem(ctx, userID, id)
}
