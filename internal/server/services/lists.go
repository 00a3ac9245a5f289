// Package services contains the server's application services: list and
// item operations with their ordering rules, and user account/settings
// management. Services own transaction boundaries; repositories stay
// single-statement.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sam-ezra/todo/internal/common"
	"github.com/sam-ezra/todo/internal/dbx"
	"github.com/sam-ezra/todo/internal/server/models"
	"github.com/sam-ezra/todo/internal/server/repositories/repomanager"
)

// ListService implements todo-list operations scoped to one user.
type ListService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewListService constructs a ListService.
func NewListService(db *sql.DB, m repomanager.RepositoryManager) *ListService {
	return &ListService{db: db, repomanager: m}
}

func validateListName(name string) error {
	if strings.TrimSpace(name) == "" {
		return common.NewValidationError("name", "must not be empty")
	}
	if len(name) > common.MaxListNameLength {
		return common.NewValidationError("name", fmt.Sprintf("must be at most %d characters", common.MaxListNameLength))
	}
	return nil
}

// GetAll returns one 1-based page of the user's lists, items included,
// ordered by "order" asc with id as tie-break. TotalCount is the full
// per-user count independent of paging.
func (s *ListService) GetAll(ctx context.Context, userID string, page, pageSize int) (*models.PagedResult, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	listRepo := s.repomanager.Lists(s.db)
	itemRepo := s.repomanager.Items(s.db)

	total, err := listRepo.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error counting lists: %w", err)
	}

	page_, err := listRepo.GetPage(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("error selecting lists: %w", err)
	}

	for i := range page_ {
		items, err := itemRepo.GetByList(ctx, userID, page_[i].ID)
		if err != nil {
			return nil, fmt.Errorf("error selecting items: %w", err)
		}
		page_[i].Items = items
	}

	return &models.PagedResult{Items: page_, TotalCount: total}, nil
}

// Create appends a new list at max(sibling order)+1.
func (s *ListService) Create(ctx context.Context, userID, name string) (*models.TodoList, error) {
	if err := validateListName(name); err != nil {
		return nil, err
	}

	var created *models.TodoList
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Lists(tx)

		max, err := repo.MaxOrder(ctx, userID)
		if err != nil {
			return err
		}

		created = &models.TodoList{UserID: userID, Name: name, Order: max + 1, Items: []models.TodoItem{}}
		return repo.Create(ctx, created)
	})
	if err != nil {
		return nil, fmt.Errorf("error creating list: %w", err)
	}
	return created, nil
}

// Update renames the list, preserving its order. Returns
// common.ErrorNotFound when the id is absent for this user.
func (s *ListService) Update(ctx context.Context, id int64, userID, name string) (*models.TodoList, error) {
	if err := validateListName(name); err != nil {
		return nil, err
	}

	repo := s.repomanager.Lists(s.db)
	updated, err := repo.UpdateName(ctx, id, userID, name)
	if err != nil {
		return nil, err
	}

	items, err := s.repomanager.Items(s.db).GetByList(ctx, userID, updated.ID)
	if err != nil {
		return nil, fmt.Errorf("error selecting items: %w", err)
	}
	updated.Items = items
	return updated, nil
}

// Delete removes the list and every item referencing it in one transaction,
// so no orphaned items can remain.
func (s *ListService) Delete(ctx context.Context, id int64, userID string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Items(tx).DeleteByList(ctx, id, userID); err != nil {
			return err
		}
		return s.repomanager.Lists(tx).Delete(ctx, id, userID)
	})
}

// Reorder writes order = position+1 for each id in orderedIDs, scoped to the
// user, inside one transaction. Unknown ids are skipped; lists missing from
// the input keep their order.
func (s *ListService) Reorder(ctx context.Context, userID string, orderedIDs []int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Lists(tx)

		owned, err := repo.GetAll(ctx, userID)
		if err != nil {
			return err
		}
		known := make(map[int64]struct{}, len(owned))
		for _, l := range owned {
			known[l.ID] = struct{}{}
		}

		for i, id := range orderedIDs {
			if _, ok := known[id]; !ok {
				continue
			}
			if err := repo.SetOrder(ctx, id, userID, i+1); err != nil {
				return err
			}
		}
		return nil
	})
}
