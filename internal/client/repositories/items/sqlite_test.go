package items

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/sam-ezra/todo/internal/client/models"
	"github.com/sam-ezra/todo/internal/common"
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
CREATE TABLE items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  list_id INTEGER NOT NULL,
  value TEXT NOT NULL,
  is_completed INTEGER NOT NULL DEFAULT 0,
  "order" INTEGER NOT NULL DEFAULT 0
);
`)
	require.NoError(t, err)

	return db
}

func seed(t *testing.T, r *SQLiteRepository, listID int64, value string, order int) *models.TodoItem {
	t.Helper()
	item := &models.TodoItem{ListID: listID, Value: value, Order: order}
	require.NoError(t, r.Create(context.Background(), item))
	return item
}

func TestGetByList_Ordering(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	seed(t, r, 1, "second", 2)
	seed(t, r, 1, "first", 1)
	seed(t, r, 2, "elsewhere", 1)

	got, err := r.GetByList(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Value)
	assert.Equal(t, "second", got[1].Value)
}

func TestMaxOrder_PerList(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	max, err := r.MaxOrder(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, max)

	seed(t, r, 1, "a", 5)
	seed(t, r, 2, "b", 9)

	max, err = r.MaxOrder(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, max)
}

func TestUpdate(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	item := seed(t, r, 1, "draft", 1)

	updated, err := r.Update(ctx, &models.TodoItem{ID: item.ID, Value: "final", IsCompleted: true, Order: 2})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Value)
	assert.True(t, updated.IsCompleted)
	assert.Equal(t, int64(1), updated.ListID)

	_, err = r.Update(ctx, &models.TodoItem{ID: 999, Value: "ghost"})
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestDeleteAndDeleteByList(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	a := seed(t, r, 1, "a", 1)
	seed(t, r, 1, "b", 2)
	keep := seed(t, r, 2, "keep", 1)

	require.NoError(t, r.Delete(ctx, a.ID))
	assert.True(t, errors.Is(r.Delete(ctx, a.ID), common.ErrorNotFound))

	require.NoError(t, r.DeleteByList(ctx, 1))
	require.NoError(t, r.DeleteByList(ctx, 1), "empty delete is fine")

	got, err := r.GetByList(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, keep.ID, got[0].ID)
}

func TestSetOrder_ScopedToList(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	item := seed(t, r, 1, "a", 1)

	require.NoError(t, r.SetOrder(ctx, item.ID, 1, 7))
	got, err := r.GetByList(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, got[0].Order)

	require.NoError(t, r.SetOrder(ctx, item.ID, 2, 1))
	got, err = r.GetByList(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, got[0].Order, "wrong list scope leaves the row alone")
}
