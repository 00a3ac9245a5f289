// Package users provides the PostgreSQL-backed repository for user accounts.
package users

import (
	"database/sql"
	"errors"
	"fmt"

	"context"

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

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, query, user.ID, user.Email, user.PasswordHash); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, email, password_hash, language, theme FROM users WHERE email=$1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT id, email, password_hash, language, theme FROM users WHERE id=$1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	var language, theme sql.NullString
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &language, &theme); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	if language.Valid {
		l := models.Language(language.String)
		u.Language = &l
	}
	if theme.Valid {
		t := models.Theme(theme.String)
		u.Theme = &t
	}
	return u, nil
}

// UpdateSettings only writes the provided fields; nil leaves the stored
// value in place (COALESCE keeps the update a single statement).
func (r *PostgresRepository) UpdateSettings(ctx context.Context, userID string, language *models.Language, theme *models.Theme) error {
	query := `UPDATE users SET language = COALESCE($1, language), theme = COALESCE($2, theme) WHERE id=$3`

	var l, t any
	if language != nil {
		l = string(*language)
	}
	if theme != nil {
		t = string(*theme)
	}

	res, err := r.db.ExecContext(ctx, query, l, t, userID)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
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
