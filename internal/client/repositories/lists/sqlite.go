// Package lists provides the SQLite-backed repository for local todo lists.
package lists

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

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.TodoList, error) {
	query := `SELECT id, name, "order" FROM lists ORDER BY "order", id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select lists: %w", err)
	}
	defer rows.Close()

	var result []models.TodoList
	for rows.Next() {
		var item models.TodoList
		if err := rows.Scan(&item.ID, &item.Name, &item.Order); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) MaxOrder(ctx context.Context) (int, error) {
	var max int
	query := `SELECT COALESCE(MAX("order"), 0) FROM lists`
	if err := r.db.QueryRowContext(ctx, query).Scan(&max); err != nil {
		return 0, fmt.Errorf("failed to select max order: %w", err)
	}
	return max, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, list *models.TodoList) error {
	query := `INSERT INTO lists (name, "order") VALUES (?, ?) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, list.Name, list.Order).Scan(&list.ID); err != nil {
		return fmt.Errorf("failed to insert list: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.TodoList, error) {
	query := `SELECT id, name, "order" FROM lists WHERE id=?`
	var item models.TodoList
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Name, &item.Order); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select list: %w", err)
	}
	return &item, nil
}

func (r *SQLiteRepository) UpdateName(ctx context.Context, id int64, name string) (*models.TodoList, error) {
	query := `UPDATE lists SET name=? WHERE id=? RETURNING id, name, "order"`
	var item models.TodoList
	if err := r.db.QueryRowContext(ctx, query, name, id).Scan(&item.ID, &item.Name, &item.Order); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to update list: %w", err)
	}
	return &item, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM lists WHERE id=?`
	res, err := r.db.ExecContext(ctx, query, id)
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

func (r *SQLiteRepository) SetOrder(ctx context.Context, id int64, order int) error {
	query := `UPDATE lists SET "order"=? WHERE id=?`
	if _, err := r.db.ExecContext(ctx, query, order, id); err != nil {
		return fmt.Errorf("failed to set list order: %w", err)
	}
	return nil
}
