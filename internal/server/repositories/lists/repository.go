package lists

import (
	"context"

	"github.com/sam-ezra/todo/internal/server/models"
)

// Repository describes persistence operations for todo lists, all scoped to
// an owning user unless stated otherwise.
type Repository interface {
	// GetPage returns one page of the user's lists ordered by "order" asc,
	// id asc. Items are not populated.
	GetPage(ctx context.Context, userID string, limit, offset int) ([]models.TodoList, error)

	// GetAll returns every list of the user ordered by "order" asc, id asc.
	GetAll(ctx context.Context, userID string) ([]models.TodoList, error)

	// Count returns the user's total list count, independent of paging.
	Count(ctx context.Context, userID string) (int, error)

	// MaxOrder returns the highest order among the user's lists, 0 if none.
	MaxOrder(ctx context.Context, userID string) (int, error)

	// Create inserts the list and fills in its assigned id.
	Create(ctx context.Context, list *models.TodoList) error

	// GetByID returns a list by id regardless of owner, or
	// common.ErrorNotFound. Callers use it to tell "absent" apart from
	// "owned by someone else".
	GetByID(ctx context.Context, id int64) (*models.TodoList, error)

	// UpdateName renames the user's list, preserving its order. Returns
	// common.ErrorNotFound when no such list exists for the user.
	UpdateName(ctx context.Context, id int64, userID, name string) (*models.TodoList, error)

	// Delete removes the user's list row only. Cascading the item delete is
	// the service's job (inside one transaction). Returns
	// common.ErrorNotFound when no row matched.
	Delete(ctx context.Context, id int64, userID string) error

	// SetOrder writes the order field of one list owned by the user.
	// A missing id is silently skipped.
	SetOrder(ctx context.Context, id int64, userID string, order int) error
}
