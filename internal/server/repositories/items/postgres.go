// Package items provides the PostgreSQL-backed repository for todo items.
package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sam-ezra/todo/internal/common"
	"github.com/sam-ezra/todo/internal/dbx"
	"github.com/sam-ezra/todo/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByList(ctx context.Context, userID string, listID int64) ([]models.TodoItem, error) {
	query := `SELECT id, user_id, list_id, value, is_completed, "order" FROM todo_items
		WHERE user_id=$1 AND list_id=$2 ORDER BY "order", id`
	rows, err := r.db.QueryContext(ctx, query, userID, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	defer rows.Close()

	var result []models.TodoItem
	for rows.Next() {
		var item models.TodoItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.ListID, &item.Value, &item.IsCompleted, &item.Order); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) MaxOrder(ctx context.Context, userID string, listID int64) (int, error) {
	var max int
	query := `SELECT COALESCE(MAX("order"), 0) FROM todo_items WHERE user_id=$1 AND list_id=$2`
	if err := r.db.QueryRowContext(ctx, query, userID, listID).Scan(&max); err != nil {
		return 0, fmt.Errorf("failed to select max order: %w", err)
	}
	return max, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.TodoItem) error {
	query := `INSERT INTO todo_items (user_id, list_id, value, is_completed, "order")
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		item.UserID, item.ListID, item.Value, item.IsCompleted, item.Order).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, item *models.TodoItem) (*models.TodoItem, error) {
	query := `UPDATE todo_items SET value=$1, is_completed=$2, "order"=$3
		WHERE id=$4 AND user_id=$5
		RETURNING id, user_id, list_id, value, is_completed, "order"`
	var updated models.TodoItem
	err := r.db.QueryRowContext(ctx, query,
		item.Value, item.IsCompleted, item.Order, item.ID, item.UserID).
		Scan(&updated.ID, &updated.UserID, &updated.ListID, &updated.Value, &updated.IsCompleted, &updated.Order)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return &updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64, userID string) error {
	query := `DELETE FROM todo_items WHERE id=$1 AND user_id=$2`
	res, err := r.db.ExecContext(ctx, query, id, userID)
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

func (r *PostgresRepository) DeleteByList(ctx context.Context, listID int64, userID string) error {
	query := `DELETE FROM todo_items WHERE list_id=$1 AND user_id=$2`
	if _, err := r.db.ExecContext(ctx, query, listID, userID); err != nil {
		return fmt.Errorf("failed to delete items: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SetOrder(ctx context.Context, id int64, userID string, listID int64, order int) error {
	query := `UPDATE todo_items SET "order"=$1 WHERE id=$2 AND user_id=$3 AND list_id=$4`
	if _, err := r.db.ExecContext(ctx, query, order, id, userID, listID); err != nil {
		return fmt.Errorf("failed to set item order: %w", err)
	}
	return nil
}
