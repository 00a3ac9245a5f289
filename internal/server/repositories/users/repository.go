package users

import (
	"context"

	"github.com/sam-ezra/todo/internal/server/models"
)

// Repository describes persistence operations for user accounts and their
// per-user settings.
type Repository interface {
	// Create inserts a new user row.
	Create(ctx context.Context, user *models.User) error

	// GetByEmail returns the user with the given email, or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// UpdateSettings writes only the non-nil preference fields. Passing two
	// nils is a no-op that leaves stored values unchanged.
	UpdateSettings(ctx context.Context, userID string, language *models.Language, theme *models.Theme) error
}
