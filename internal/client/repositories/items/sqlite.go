// Package items provides the SQLite-backed repository for local todo items.
package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sam-ezra/todo/internal/client/models"
	"github.com/sam-ezra/todo/internal/common"
	"github.com/sam-ezra/todo/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or
// *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetByList(ctx context.Context, listID int64) ([]models.TodoItem, error) {
	query := `SELECT id, list_id, value, is_completed, "order" FROM items
		WHERE list_id=? ORDER BY "order", id`
	rows, err := r.db.QueryContext(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	defer rows.Close()

	var result []models.TodoItem
	for rows.Next() {
		var item models.TodoItem
		if err := rows.Scan(&item.ID, &item.ListID, &item.Value, &item.IsCompleted, &item.Order); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) MaxOrder(ctx context.Context, listID int64) (int, error) {
	var max int
	query := `SELECT COALESCE(MAX("order"), 0) FROM items WHERE list_id=?`
	if err := r.db.QueryRowContext(ctx, query, listID).Scan(&max); err != nil {
		return 0, fmt.Errorf("failed to select max order: %w", err)
	}
	return max, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, item *models.TodoItem) error {
	query := `INSERT INTO items (list_id, value, is_completed, "order") VALUES (?, ?, ?, ?) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, item.ListID, item.Value, item.IsCompleted, item.Order).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Update(ctx context.Context, item *models.TodoItem) (*models.TodoItem, error) {
	query := `UPDATE items SET value=?, is_completed=?, "order"=? WHERE id=?
		RETURNING id, list_id, value, is_completed, "order"`
	var updated models.TodoItem
	err := r.db.QueryRowContext(ctx, query, item.Value, item.IsCompleted, item.Order, item.ID).
		Scan(&updated.ID, &updated.ListID, &updated.Value, &updated.IsCompleted, &updated.Order)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return &updated, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM items WHERE id=?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLiteRepository) DeleteByList(ctx context.Context, listID int64) error {
	query := `DELETE FROM items WHERE list_id=?`
	if _, err := r.db.ExecContext(ctx, query, listID); err != nil {
		return fmt.Errorf("failed to delete items: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) SetOrder(ctx context.Context, id, listID int64, order int) error {
	query := `UPDATE items SET "order"=? WHERE id=? AND list_id=?`
	if _, err := r.db.ExecContext(ctx, query, order, id, listID); err != nil {
		return fmt.Errorf("failed to set item order: %w", err)
	}
	return nil
}
