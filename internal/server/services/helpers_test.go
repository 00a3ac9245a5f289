package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/sam-ezra/todo/internal/server/config"
	"github.com/sam-ezra/todo/internal/server/models"
	"github.com/sam-ezra/todo/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// setupDB opens an in-memory database with the server schema. The postgres
// repositories run fine on sqlite here: placeholders bind in numeric order
// and RETURNING is supported.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  language TEXT,
  theme TEXT
);
CREATE TABLE todo_lists (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id TEXT NOT NULL,
  name TEXT NOT NULL,
  "order" INTEGER NOT NULL
);
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

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                   "test-secret",
		AccessTokenValidityDuration: time.Minute,
	}
}

func newListService(t *testing.T) (*ListService, *ItemService, *sql.DB) {
	t.Helper()
	db := setupDB(t)
	m := repomanager.NewPostgresRepositoryManager()
	return NewListService(db, m), NewItemService(db, m), db
}

func mustCreateList(t *testing.T, s *ListService, userID, name string) *models.TodoList {
	t.Helper()
	list, err := s.Create(context.Background(), userID, name)
	require.NoError(t, err)
	return list
}

func mustCreateItem(t *testing.T, s *ItemService, userID, value string, listID int64) *models.TodoItem {
	t.Helper()
	item, err := s.Create(context.Background(), userID, value, listID)
	require.NoError(t, err)
	return item
}
