// Package lists provides the PostgreSQL-backed repository for todo lists.
package lists

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

func (r *PostgresRepository) GetPage(ctx context.Context, userID string, limit, offset int) ([]models.TodoList, error) {
	query := `SELECT id, user_id, name, "order" FROM todo_lists
		WHERE user_id=$1 ORDER BY "order", id LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to select lists: %w", err)
	}
	return scanLists(rows)
}

func (r *PostgresRepository) GetAll(ctx context.Context, userID string) ([]models.TodoList, error) {
	query := `SELECT id, user_id, name, "order" FROM todo_lists
		WHERE user_id=$1 ORDER BY "order", id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select lists: %w", err)
	}
	return scanLists(rows)
}

func scanLists(rows *sql.Rows) ([]models.TodoList, error) {
	defer rows.Close()

	var result []models.TodoList
	for rows.Next() {
		var item models.TodoList
		if err := rows.Scan(&item.ID, &item.UserID, &item.Name, &item.Order); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Count(ctx context.Context, userID string) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM todo_lists WHERE user_id=$1`
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count lists: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) MaxOrder(ctx context.Context, userID string) (int, error) {
	var max int
	query := `SELECT COALESCE(MAX("order"), 0) FROM todo_lists WHERE user_id=$1`
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&max); err != nil {
		return 0, fmt.Errorf("failed to select max order: %w", err)
	}
	return max, nil
}

func (r *PostgresRepository) Create(ctx context.Context, list *models.TodoList) error {
	query := `INSERT INTO todo_lists (user_id, name, "order") VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, list.UserID, list.Name, list.Order).Scan(&list.ID); err != nil {
		return fmt.Errorf("failed to insert list: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.TodoList, error) {
	query := `SELECT id, user_id, name, "order" FROM todo_lists WHERE id=$1`
	var item models.TodoList
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.UserID, &item.Name, &item.Order)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select list: %w", err)
	}
	return &item, nil
}

func (r *PostgresRepository) UpdateName(ctx context.Context, id int64, userID, name string) (*models.TodoList, error) {
	query := `UPDATE todo_lists SET name=$1 WHERE id=$2 AND user_id=$3 RETURNING id, user_id, name, "order"`
	var item models.TodoList
	err := r.db.QueryRowContext(ctx, query, name, id, userID).Scan(&item.ID, &item.UserID, &item.Name, &item.Order)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to update list: %w", err)
	}
	return &item, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64, userID string) error {
	query := `DELETE FROM todo_lists WHERE id=$1 AND user_id=$2`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
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

func (r *PostgresRepository) SetOrder(ctx context.Context, id int64, userID string, order int) error {
	query := `UPDATE todo_lists SET "order"=$1 WHERE id=$2 AND user_id=$3`
	if _, err := r.db.ExecContext(ctx, query, order, id, userID); err != nil {
		return fmt.Errorf("failed to set list order: %w", err)
	}
	return nil
}
