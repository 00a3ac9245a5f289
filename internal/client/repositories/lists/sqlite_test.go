package lists

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
CREATE TABLE lists (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  "order" INTEGER NOT NULL DEFAULT 0
);
`)
	require.NoError(t, err)

	return db
}

func TestCreateAndGetAll_Ordering(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &models.TodoList{Name: "second", Order: 2}))
	require.NoError(t, r.Create(ctx, &models.TodoList{Name: "first", Order: 1}))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Name)
	assert.Equal(t, "second", got[1].Name)
	assert.Greater(t, got[0].ID, int64(0))
}

func TestMaxOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	max, err := r.MaxOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, max)

	require.NoError(t, r.Create(ctx, &models.TodoList{Name: "a", Order: 4}))
	max, err = r.MaxOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, max)
}

func TestUpdateName(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	list := &models.TodoList{Name: "old", Order: 3}
	require.NoError(t, r.Create(ctx, list))

	updated, err := r.UpdateName(ctx, list.ID, "new")
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Name)
	assert.Equal(t, 3, updated.Order)

	_, err = r.UpdateName(ctx, 999, "ghost")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestDelete(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	list := &models.TodoList{Name: "a", Order: 1}
	require.NoError(t, r.Create(ctx, list))

	require.NoError(t, r.Delete(ctx, list.ID))
	assert.True(t, errors.Is(r.Delete(ctx, list.ID), common.ErrorNotFound))
}

func TestSetOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	list := &models.TodoList{Name: "a", Order: 1}
	require.NoError(t, r.Create(ctx, list))

	require.NoError(t, r.SetOrder(ctx, list.ID, 8))
	got, err := r.GetByID(ctx, list.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, got.Order)

	require.NoError(t, r.SetOrder(ctx, 999, 1), "unknown id is a silent no-op")
}
