package service

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/pledgevault/internal/models"
)

// fakeItemRepo implements ItemRepository with an in-memory map, applying
// the same (id, owner) scoping as the Postgres implementation.
type fakeItemRepo struct {
	items map[string]models.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[string]models.Item)}
}

func (f *fakeItemRepo) InsertItem(ctx context.Context, item models.Item) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeItemRepo) ListItemsByOwner(ctx context.Context, userID string) ([]models.Item, error) {
	var out []models.Item
	for _, it := range f.items {
		if it.CreatedBy == userID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeItemRepo) GetItemByID(ctx context.Context, userID, id string) (*models.Item, error) {
	it, ok := f.items[id]
	if !ok || it.CreatedBy != userID {
		return nil, ErrNotFound
	}
	return &it, nil
}

func (f *fakeItemRepo) UpdateItem(ctx context.Context, userID, id string, upd models.ItemUpdate) (*models.Item, error) {
	it, ok := f.items[id]
	if !ok || it.CreatedBy != userID {
		return nil, ErrNotFound
	}
	if upd.Title != nil {
		it.Title = *upd.Title
	}
	if upd.Description != nil {
		it.Description = *upd.Description
	}
	if upd.Amount != nil {
		it.Amount = *upd.Amount
	}
	f.items[id] = it
	return &it, nil
}

func (f *fakeItemRepo) DeleteItem(ctx context.Context, userID, id string) error {
	if it, ok := f.items[id]; !ok || it.CreatedBy != userID {
		return ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func amountPtr(v float64) *float64 { return &v }

func TestCreateItem_Success(t *testing.T) {
	svc := NewItemService(newFakeItemRepo())

	item, err := svc.Create(context.Background(), "u1", "Books", "", amountPtr(20))
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "u1", item.CreatedBy)
	assert.Equal(t, "Books", item.Title)
	assert.Equal(t, "", item.Description, "description defaults to empty")
	assert.Equal(t, 20.0, item.Amount)
	assert.False(t, item.CreatedAt.IsZero())
	assert.Equal(t, item.CreatedAt, item.UpdatedAt)
}

func TestCreateItem_ZeroAmountIsValid(t *testing.T) {
	svc := NewItemService(newFakeItemRepo())

	item, err := svc.Create(context.Background(), "u1", "Pledge", "", amountPtr(0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, item.Amount)
}

func TestCreateItem_Validation(t *testing.T) {
	svc := NewItemService(newFakeItemRepo())

	tests := []struct {
		name   string
		title  string
		amount *float64
	}{
		{"missing title", "", amountPtr(10)},
		{"blank title", "   ", amountPtr(10)},
		{"missing amount", "Books", nil},
		{"negative amount", "Books", amountPtr(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "u1", tt.title, "", tt.amount)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestGetItem_OwnershipBlind(t *testing.T) {
	svc := NewItemService(newFakeItemRepo())

	item, err := svc.Create(context.Background(), "alice", "Books", "", amountPtr(20))
	require.NoError(t, err)

	// owner sees the item
	got, err := svc.Get(context.Background(), "alice", item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)

	// another user gets the same error as for a missing id
	_, errOther := svc.Get(context.Background(), "bob", item.ID)
	_, errMissing := svc.Get(context.Background(), "bob", "no-such-id")
	assert.ErrorIs(t, errOther, ErrNotFound)
	assert.ErrorIs(t, errMissing, ErrNotFound)
}

func TestListItems_ScopedToOwner(t *testing.T) {
	svc := NewItemService(newFakeItemRepo())

	_, err := svc.Create(context.Background(), "alice", "Books", "", amountPtr(20))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "bob", "Toys", "", amountPtr(15))
	require.NoError(t, err)

	items, err := svc.List(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "alice", items[0].CreatedBy)
}

func TestListItems_EmptyIsNotNil(t *testing.T) {
	svc := NewItemService(newFakeItemRepo())

	items, err := svc.List(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Len(t, items, 0)
}

func TestUpdateItem_PartialFields(t *testing.T) {
	svc := NewItemService(newFakeItemRepo())

	item, err := svc.Create(context.Background(), "u1", "Books", "school fund", amountPtr(20))
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), "u1", item.ID, models.ItemUpdate{Amount: amountPtr(50)})
	require.NoError(t, err)

	assert.Equal(t, 50.0, updated.Amount)
	assert.Equal(t, "Books", updated.Title)
	assert.Equal(t, "school fund", updated.Description)
}

func TestUpdateItem_Validation(t *testing.T) {
	svc := NewItemService(newFakeItemRepo())

	item, err := svc.Create(context.Background(), "u1", "Books", "", amountPtr(20))
	require.NoError(t, err)

	empty := ""
	_, err = svc.Update(context.Background(), "u1", item.ID, models.ItemUpdate{Title: &empty})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Update(context.Background(), "u1", item.ID, models.ItemUpdate{Amount: amountPtr(-5)})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateItem_OtherOwnerNotFound(t *testing.T) {
	svc := NewItemService(newFakeItemRepo())

	item, err := svc.Create(context.Background(), "alice", "Books", "", amountPtr(20))
	require.NoError(t, err)

	title := "Hijacked"
	_, err = svc.Update(context.Background(), "bob", item.ID, models.ItemUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteItem_Idempotence(t *testing.T) {
	svc := NewItemService(newFakeItemRepo())

	item, err := svc.Create(context.Background(), "u1", "Books", "", amountPtr(20))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "u1", item.ID))

	// second delete of the same id
	err = svc.Delete(context.Background(), "u1", item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteItem_OtherOwnerNotFound(t *testing.T) {
	svc := NewItemService(newFakeItemRepo())

	item, err := svc.Create(context.Background(), "alice", "Books", "", amountPtr(20))
	require.NoError(t, err)

	err = svc.Delete(context.Background(), "bob", item.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// item must still be there for its owner
	_, err = svc.Get(context.Background(), "alice", item.ID)
	assert.NoError(t, err)
}
