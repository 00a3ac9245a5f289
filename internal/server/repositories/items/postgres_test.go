package items

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/sam-ezra/todo/internal/common"
	"github.com/sam-ezra/todo/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE todo_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id TEXT NOT NULL,
  list_id INTEGER NOT NULL,
  value TEXT NOT NULL,
  is_completed INTEGER NOT NULL DEFAULT 0,
  "order" INTEGER NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func seed(t *testing.T, r *PostgresRepository, userID string, listID int64, value string, order int) *models.TodoItem {
	t.Helper()
	item := &models.TodoItem{UserID: userID, ListID: listID, Value: value, Order: order}
	require.NoError(t, r.Create(context.Background(), item))
	return item
}

func TestGetByList_OrdersWithinList(t *testing.T) {
	db := setupDB(t)
	r := NewPostgresRepository(db)
	ctx := context.Background()

	seed(t, r, "u1", 1, "second", 2)
	seed(t, r, "u1", 1, "first", 1)
	seed(t, r, "u1", 2, "other list", 1)
	seed(t, r, "u2", 1, "other user", 1)

	got, err := r.GetByList(ctx, "u1", 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Value)
	assert.Equal(t, "second", got[1].Value)
}

func TestMaxOrder_ScopedToList(t *testing.T) {
	db := setupDB(t)
	r := NewPostgresRepository(db)
	ctx := context.Background()

	max, err := r.MaxOrder(ctx, "u1", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, max)

	seed(t, r, "u1", 1, "a", 3)
	seed(t, r, "u1", 2, "b", 9)

	max, err = r.MaxOrder(ctx, "u1", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, max)
}

func TestUpdate_FullReplace(t *testing.T) {
	db := setupDB(t)
	r := NewPostgresRepository(db)
	ctx := context.Background()

	item := seed(t, r, "u1", 1, "draft", 1)

	updated, err := r.Update(ctx, &models.TodoItem{
		ID: item.ID, UserID: "u1", Value: "final", IsCompleted: true, Order: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Value)
	assert.True(t, updated.IsCompleted)
	assert.Equal(t, 2, updated.Order)
	assert.Equal(t, int64(1), updated.ListID, "update must not move items between lists")

	_, err = r.Update(ctx, &models.TodoItem{ID: item.ID, UserID: "u2", Value: "x"})
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestDelete(t *testing.T) {
	db := setupDB(t)
	r := NewPostgresRepository(db)
	ctx := context.Background()

	item := seed(t, r, "u1", 1, "a", 1)

	assert.True(t, errors.Is(r.Delete(ctx, item.ID, "u2"), common.ErrorNotFound))
	require.NoError(t, r.Delete(ctx, item.ID, "u1"))
	assert.True(t, errors.Is(r.Delete(ctx, item.ID, "u1"), common.ErrorNotFound))
}

func TestDeleteByList(t *testing.T) {
	db := setupDB(t)
	r := NewPostgresRepository(db)
	ctx := context.Background()

	seed(t, r, "u1", 1, "a", 1)
	seed(t, r, "u1", 1, "b", 2)
	survivor := seed(t, r, "u1", 2, "keep", 1)

	require.NoError(t, r.DeleteByList(ctx, 1, "u1"))
	// empty list delete is fine too
	require.NoError(t, r.DeleteByList(ctx, 1, "u1"))

	got, err := r.GetByList(ctx, "u1", 1)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = r.GetByList(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, survivor.ID, got[0].ID)
}

func TestSetOrder_ScopedToUserAndList(t *testing.T) {
	db := setupDB(t)
	r := NewPostgresRepository(db)
	ctx := context.Background()

	item := seed(t, r, "u1", 1, "a", 1)

	require.NoError(t, r.SetOrder(ctx, item.ID, "u1", 1, 9))
	got, err := r.GetByList(ctx, "u1", 1)
	require.NoError(t, err)
	assert.Equal(t, 9, got[0].Order)

	// wrong list scope leaves the row alone
	require.NoError(t, r.SetOrder(ctx, item.ID, "u1", 2, 1))
	got, err = r.GetByList(ctx, "u1", 1)
	require.NoError(t, err)
	assert.Equal(t, 9, got[0].Order)
}
