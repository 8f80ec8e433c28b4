package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atinyakov/pledgevault/internal/models"
	"github.com/atinyakov/pledgevault/internal/service"
)

// PostgresItemRepository implements item persistence using a PostgreSQL database.
// Every query is keyed on (id, user_id) so an item owned by another user is
// indistinguishable from a nonexistent one.
type PostgresItemRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresItemRepository creates a new PostgresItemRepository using the
// provided *sql.DB. db must be a valid connection to a PostgreSQL instance.
func NewPostgresItemRepository(db *sql.DB) *PostgresItemRepository {
	return &PostgresItemRepository{DB: db}
}

// InsertItem persists a fully populated item.
func (r *PostgresItemRepository) InsertItem(ctx context.Context, item models.Item) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO items (id, user_id, title, description, amount, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		item.ID, item.CreatedBy, item.Title, item.Description, item.Amount, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("InsertItem: %w", err)
	}
	return nil
}

// ListItemsByOwner fetches all items belonging to the given user,
// most recently created first.
func (r *PostgresItemRepository) ListItemsByOwner(ctx context.Context, userID string) ([]models.Item, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, title, description, amount, created_at, updated_at
		  FROM items WHERE user_id = $1 ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("ListItemsByOwner: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.CreatedBy, &it.Title, &it.Description, &it.Amount, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListItemsByOwner: %w", err)
	}
	return items, nil
}

// GetItemByID fetches a single item by id for the given owner.
// Returns service.ErrNotFound if the item does not exist or belongs
// to another user.
func (r *PostgresItemRepository) GetItemByID(ctx context.Context, userID, id string) (*models.Item, error) {
	var it models.Item
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, title, description, amount, created_at, updated_at
		  FROM items WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(&it.ID, &it.CreatedBy, &it.Title, &it.Description, &it.Amount, &it.CreatedAt, &it.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, service.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetItemByID: %w", err)
	}
	return &it, nil
}

// UpdateItem applies the non-nil fields of upd to the item matched by
// (id, user_id) in a single statement, so a concurrent delete cannot
// produce a partial write. Returns the updated row, or
// service.ErrNotFound if no row matched.
func (r *PostgresItemRepository) UpdateItem(ctx context.Context, userID, id string, upd models.ItemUpdate) (*models.Item, error) {
	var it models.Item
	err := r.DB.QueryRowContext(ctx, `
		UPDATE items
		   SET title = COALESCE($3::text, title),
		       description = COALESCE($4::text, description),
		       amount = COALESCE($5::double precision, amount),
		       updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, description, amount, created_at, updated_at
	`, id, userID, upd.Title, upd.Description, upd.Amount).
		Scan(&it.ID, &it.CreatedBy, &it.Title, &it.Description, &it.Amount, &it.CreatedAt, &it.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, service.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("UpdateItem: %w", err)
	}
	return &it, nil
}

// DeleteItem removes the item matched by (id, user_id).
// Returns service.ErrNotFound if no row matched.
func (r *PostgresItemRepository) DeleteItem(ctx context.Context, userID, id string) error {
	res, err := r.DB.ExecContext(
		ctx,
		`DELETE FROM items WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("DeleteItem: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("DeleteItem: %w", err)
	}
	if affected == 0 {
		return service.ErrNotFound
	}
	return nil
}
