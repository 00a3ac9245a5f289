// Package local implements the storage engine used while the client is
// anonymous: all lists, items and settings live in the local SQLite
// database and never leave the machine.
package local

import (
	"context"
	"database/sql"

	"github.com/sam-ezra/todo/internal/client/models"
	"github.com/sam-ezra/todo/internal/client/repositories/items"
	"github.com/sam-ezra/todo/internal/client/repositories/lists"
	"github.com/sam-ezra/todo/internal/client/repositories/settings"
	"github.com/sam-ezra/todo/internal/client/store"
	"github.com/sam-ezra/todo/internal/dbx"
)

// Backend is the SQLite engine. It opens the shared store handle lazily on
// first use.
type Backend struct {
	dsn string
}

// New returns a local Backend reading and writing the database at dsn.
func New(dsn string) *Backend {
	return &Backend{dsn: dsn}
}

func (b *Backend) db(ctx context.Context) (*sql.DB, error) {
	return store.Get(ctx, b.dsn)
}

func (b *Backend) GetSettings(ctx context.Context) (*models.Settings, error) {
	db, err := b.db(ctx)
	if err != nil {
		return nil, err
	}
	return settings.NewSQLiteRepository(db).Get(ctx)
}

func (b *Backend) UpdateSettings(ctx context.Context, s *models.Settings) error {
	db, err := b.db(ctx)
	if err != nil {
		return err
	}
	return settings.NewSQLiteRepository(db).Update(ctx, s)
}

// GetAllLists pages over the full local collection in memory. The local
// dataset is one user's lists, so reading everything and slicing keeps the
// paging contract identical to the server without a second count query.
func (b *Backend) GetAllLists(ctx context.Context, page, pageSize int) (*models.PagedResult, error) {
	db, err := b.db(ctx)
	if err != nil {
		return nil, err
	}

	all, err := lists.NewSQLiteRepository(db).GetAll(ctx)
	if err != nil {
		return nil, err
	}

	itemRepo := items.NewSQLiteRepository(db)
	for i := range all {
		todos, err := itemRepo.GetByList(ctx, all[i].ID)
		if err != nil {
			return nil, err
		}
		all[i].Todos = todos
	}

	result := &models.PagedResult{TotalCount: len(all)}
	start := (page - 1) * pageSize
	if start < 0 {
		start = 0
	}
	if start < len(all) {
		end := start + pageSize
		if end > len(all) {
			end = len(all)
		}
		result.Items = all[start:end]
	}
	return result, nil
}

func (b *Backend) CreateList(ctx context.Context, name string) (*models.TodoList, error) {
	db, err := b.db(ctx)
	if err != nil {
		return nil, err
	}

	var created *models.TodoList
	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := lists.NewSQLiteRepository(tx)
		max, err := repo.MaxOrder(ctx)
		if err != nil {
			return err
		}
		list := &models.TodoList{Name: name, Order: max + 1}
		if err := repo.Create(ctx, list); err != nil {
			return err
		}
		created = list
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (b *Backend) UpdateList(ctx context.Context, id int64, name string) (*models.TodoList, error) {
	db, err := b.db(ctx)
	if err != nil {
		return nil, err
	}
	return lists.NewSQLiteRepository(db).UpdateName(ctx, id, name)
}

func (b *Backend) DeleteList(ctx context.Context, id int64) error {
	db, err := b.db(ctx)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := items.NewSQLiteRepository(tx).DeleteByList(ctx, id); err != nil {
			return err
		}
		return lists.NewSQLiteRepository(tx).Delete(ctx, id)
	})
}

func (b *Backend) ReorderLists(ctx context.Context, ids []int64) error {
	db, err := b.db(ctx)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := lists.NewSQLiteRepository(tx)
		for i, id := range ids {
			if err := repo.SetOrder(ctx, id, i+1); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *Backend) CreateItem(ctx context.Context, listID int64, value string) (*models.TodoItem, error) {
	db, err := b.db(ctx)
	if err != nil {
		return nil, err
	}

	var created *models.TodoItem
	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := lists.NewSQLiteRepository(tx).GetByID(ctx, listID); err != nil {
			return err
		}
		repo := items.NewSQLiteRepository(tx)
		max, err := repo.MaxOrder(ctx, listID)
		if err != nil {
			return err
		}
		item := &models.TodoItem{ListID: listID, Value: value, IsCompleted: false, Order: max + 1}
		if err := repo.Create(ctx, item); err != nil {
			return err
		}
		created = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (b *Backend) UpdateItem(ctx context.Context, item *models.TodoItem) (*models.TodoItem, error) {
	db, err := b.db(ctx)
	if err != nil {
		return nil, err
	}
	return items.NewSQLiteRepository(db).Update(ctx, item)
}

func (b *Backend) DeleteItem(ctx context.Context, id int64) error {
	db, err := b.db(ctx)
	if err != nil {
		return err
	}
	return items.NewSQLiteRepository(db).Delete(ctx, id)
}

func (b *Backend) ReorderItems(ctx context.Context, listID int64, ids []int64) error {
	db, err := b.db(ctx)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := lists.NewSQLiteRepository(tx).GetByID(ctx, listID); err != nil {
			return err
		}
		repo := items.NewSQLiteRepository(tx)
		for i, id := range ids {
			if err := repo.SetOrder(ctx, id, listID, i+1); err != nil {
				return err
			}
		}
		return nil
	})
}
