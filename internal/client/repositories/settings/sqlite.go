// Package settings provides the SQLite-backed key/value store for the two
// user preference fields.
package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sam-ezra/todo/internal/client/models"
	"github.com/sam-ezra/todo/internal/dbx"
)

const (
	keyLanguage = "language"
	keyTheme    = "theme"
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

func (r *SQLiteRepository) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key=?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to select setting: %w", err)
	}
	return value, true, nil
}

func (r *SQLiteRepository) set(ctx context.Context, key, value string) error {
	query := `INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context) (*models.Settings, error) {
	result := &models.Settings{}

	if value, ok, err := r.get(ctx, keyLanguage); err != nil {
		return nil, err
	} else if ok {
		l := models.Language(value)
		result.Language = &l
	}

	if value, ok, err := r.get(ctx, keyTheme); err != nil {
		return nil, err
	} else if ok {
		t := models.Theme(value)
		result.Theme = &t
	}

	return result, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, settings *models.Settings) error {
	if settings.Language != nil {
		if err := r.set(ctx, keyLanguage, string(*settings.Language)); err != nil {
			return err
		}
	}
	if settings.Theme != nil {
		if err := r.set(ctx, keyTheme, string(*settings.Theme)); err != nil {
			return err
		}
	}
	return nil
}
