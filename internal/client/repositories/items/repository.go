package items

import (
	"context"

	"github.com/sam-ezra/todo/internal/client/models"
)

// Repository describes persistence operations for todo items in the local
// database.
type Repository interface {
	// GetByList returns the items of one list ordered by "order" asc,
	// id asc.
	GetByList(ctx context.Context, listID int64) ([]models.TodoItem, error)

	// MaxOrder returns the highest order among the list's items, 0 if none.
	MaxOrder(ctx context.Context, listID int64) (int, error)

	// Create inserts the item and fills in its assigned id.
	Create(ctx context.Context, item *models.TodoItem) error

	// Update fully replaces value/is_completed/order by id. Returns
	// common.ErrorNotFound when the id is absent.
	Update(ctx context.Context, item *models.TodoItem) (*models.TodoItem, error)

	// Delete removes one item. Returns common.ErrorNotFound when no row
	// matched.
	Delete(ctx context.Context, id int64) error

	// DeleteByList removes every item of the given list. Deleting zero
	// rows is not an error.
	DeleteByList(ctx context.Context, listID int64) error

	// SetOrder writes the order field of one item scoped to its list.
	// A missing id is silently skipped.
	SetOrder(ctx context.Context, id, listID int64, order int) error
}
