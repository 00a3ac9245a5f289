package lists

import (
	"context"

	"github.com/sam-ezra/todo/internal/client/models"
)

// Repository describes persistence operations for todo lists in the local
// database. The device is the implicit owner; there is no user scoping.
type Repository interface {
	// GetAll returns every list ordered by "order" asc, id asc.
	GetAll(ctx context.Context) ([]models.TodoList, error)

	// MaxOrder returns the highest order among all lists, 0 if none.
	MaxOrder(ctx context.Context) (int, error)

	// Create inserts the list and fills in its assigned id.
	Create(ctx context.Context, list *models.TodoList) error

	// GetByID returns a list by id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.TodoList, error)

	// UpdateName renames a list, preserving its order. Returns
	// common.ErrorNotFound when the id is absent.
	UpdateName(ctx context.Context, id int64, name string) (*models.TodoList, error)

	// Delete removes the list row only; cascading items is the backend's
	// job inside one transaction.
	Delete(ctx context.Context, id int64) error

	// SetOrder writes the order field of one list. A missing id is
	// silently skipped.
	SetOrder(ctx context.Context, id int64, order int) error
}
