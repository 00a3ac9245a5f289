package items

import (
	"context"

	"github.com/sam-ezra/todo/internal/server/models"
)

// Repository describes persistence operations for todo items, all scoped to
// an owning user.
type Repository interface {
	// GetByList returns the items of one list ordered by "order" asc,
	// id asc.
	GetByList(ctx context.Context, userID string, listID int64) ([]models.TodoItem, error)

	// MaxOrder returns the highest order among the list's items, 0 if none.
	MaxOrder(ctx context.Context, userID string, listID int64) (int, error)

	// Create inserts the item and fills in its assigned id.
	Create(ctx context.Context, item *models.TodoItem) error

	// Update fully replaces value/is_completed/order by id. Returns
	// common.ErrorNotFound when no such item exists for the user.
	Update(ctx context.Context, item *models.TodoItem) (*models.TodoItem, error)

	// Delete removes one item. Returns common.ErrorNotFound when no row
	// matched.
	Delete(ctx context.Context, id int64, userID string) error

	// DeleteByList removes every item of the given list. Used by the
	// cascading list delete; deleting zero rows is not an error.
	DeleteByList(ctx context.Context, listID int64, userID string) error

	// SetOrder writes the order field of one item scoped to (user, list).
	// A missing id is silently skipped.
	SetOrder(ctx context.Context, id int64, userID string, listID int64, order int) error
}
