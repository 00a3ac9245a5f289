package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sam-ezra/todo/internal/common"
	"github.com/sam-ezra/todo/internal/dbx"
	"github.com/sam-ezra/todo/internal/server/models"
	"github.com/sam-ezra/todo/internal/server/repositories/repomanager"
)

// ItemService implements todo-item operations scoped to one user.
type ItemService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewItemService constructs an ItemService.
func NewItemService(db *sql.DB, m repomanager.RepositoryManager) *ItemService {
	return &ItemService{db: db, repomanager: m}
}

func validateItemValue(value string) error {
	if strings.TrimSpace(value) == "" {
		return common.NewValidationError("value", "must not be empty")
	}
	if len(value) > common.MaxItemValueLength {
		return common.NewValidationError("value", fmt.Sprintf("must be at most %d characters", common.MaxItemValueLength))
	}
	return nil
}

// checkListOwnership distinguishes an absent list (common.ErrorNotFound)
// from a list owned by someone else (common.ErrorForbidden).
func (s *ItemService) checkListOwnership(ctx context.Context, db dbx.DBTX, listID int64, userID string) error {
	list, err := s.repomanager.Lists(db).GetByID(ctx, listID)
	if err != nil {
		return err
	}
	if list.UserID != userID {
		return common.ErrorForbidden
	}
	return nil
}

// Create verifies list ownership, then appends the item at
// max(sibling order)+1 with IsCompleted false.
func (s *ItemService) Create(ctx context.Context, userID, value string, listID int64) (*models.TodoItem, error) {
	if err := validateItemValue(value); err != nil {
		return nil, err
	}
	if listID <= 0 {
		return nil, common.NewValidationError("listId", "must be positive")
	}

	var created *models.TodoItem
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.checkListOwnership(ctx, tx, listID, userID); err != nil {
			return err
		}

		repo := s.repomanager.Items(tx)
		max, err := repo.MaxOrder(ctx, userID, listID)
		if err != nil {
			return err
		}

		created = &models.TodoItem{
			UserID:      userID,
			ListID:      listID,
			Value:       value,
			IsCompleted: false,
			Order:       max + 1,
		}
		return repo.Create(ctx, created)
	})
	if err != nil {
		if errors.Is(err, common.ErrorForbidden) || errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating item: %w", err)
	}
	return created, nil
}

// Update fully replaces value/isCompleted/order by id. Returns
// common.ErrorNotFound when the id is absent for this user.
func (s *ItemService) Update(ctx context.Context, id int64, userID, value string, isCompleted bool, order int) (*models.TodoItem, error) {
	if err := validateItemValue(value); err != nil {
		return nil, err
	}
	if order < 0 {
		return nil, common.NewValidationError("order", "must not be negative")
	}

	repo := s.repomanager.Items(s.db)
	return repo.Update(ctx, &models.TodoItem{
		ID:          id,
		UserID:      userID,
		Value:       value,
		IsCompleted: isCompleted,
		Order:       order,
	})
}

// Delete removes a single item. Returns common.ErrorNotFound when the id is
// absent for this user.
func (s *ItemService) Delete(ctx context.Context, id int64, userID string) error {
	return s.repomanager.Items(s.db).Delete(ctx, id, userID)
}

// Reorder verifies list ownership, then writes order = position+1 for each
// id, scoped to (user, list), inside one transaction. Unknown ids are
// skipped; items missing from the input keep their order.
func (s *ItemService) Reorder(ctx context.Context, userID string, listID int64, orderedIDs []int64) error {
	if listID <= 0 {
		return common.NewValidationError("listId", "must be positive")
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.checkListOwnership(ctx, tx, listID, userID); err != nil {
			return err
		}

		repo := s.repomanager.Items(tx)
		owned, err := repo.GetByList(ctx, userID, listID)
		if err != nil {
			return err
		}
		known := make(map[int64]struct{}, len(owned))
		for _, it := range owned {
			known[it.ID] = struct{}{}
		}

		for i, id := range orderedIDs {
			if _, ok := known[id]; !ok {
				continue
			}
			if err := repo.SetOrder(ctx, id, userID, listID, i+1); err != nil {
				return err
			}
		}
		return nil
	})
}
