// Package backend defines the storage engine contract shared by the local
// SQLite engine and the remote REST engine. Both expose the same flat
// operation set so callers can switch between them without caring where the
// data lives.
package backend

import (
	"context"

	"github.com/sam-ezra/todo/internal/client/models"
)

// Backend is a complete todo storage engine.
//
// List ordering semantics are identical across engines: a freshly created
// list or item is appended after existing siblings, and a reorder rewrites
// the order of the referenced rows to their position in the given id slice.
// Ids the engine does not know are skipped; rows absent from the slice keep
// their old order.
type Backend interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	// UpdateSettings applies a partial update; nil fields stay unchanged.
	UpdateSettings(ctx context.Context, settings *models.Settings) error

	// GetAllLists returns one page of lists, items included, plus the
	// unpaginated total. Pages are 1-based.
	GetAllLists(ctx context.Context, page, pageSize int) (*models.PagedResult, error)
	CreateList(ctx context.Context, name string) (*models.TodoList, error)
	UpdateList(ctx context.Context, id int64, name string) (*models.TodoList, error)
	// DeleteList removes a list together with all of its items.
	DeleteList(ctx context.Context, id int64) error
	ReorderLists(ctx context.Context, ids []int64) error

	CreateItem(ctx context.Context, listID int64, value string) (*models.TodoItem, error)
	UpdateItem(ctx context.Context, item *models.TodoItem) (*models.TodoItem, error)
	DeleteItem(ctx context.Context, id int64) error
	ReorderItems(ctx context.Context, listID int64, ids []int64) error
}
