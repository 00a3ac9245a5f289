// Package store owns the client's local SQLite handle: a process-wide
// singleton opened lazily on first access, with schema managed by goose.
// Reset exists for test isolation and fully releases the handle so the
// next access reopens fresh.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
	"github.com/sam-ezra/todo/internal/client/migrations"
)

var (
	mu sync.Mutex
	db *sql.DB
)

// RunMigrations applies the embedded sqlite migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// Get returns the shared database handle, opening it and applying
// migrations on first call. Subsequent calls reuse the handle and ignore
// dsn.
func Get(ctx context.Context, dsn string) (*sql.DB, error) {
	mu.Lock()
	defer mu.Unlock()

	if db != nil {
		return db, nil
	}

	opened, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open local database: %w", err)
	}

	if err := RunMigrations(ctx, opened); err != nil {
		_ = opened.Close()
		return nil, fmt.Errorf("failed to migrate local database: %w", err)
	}

	db = opened
	return db, nil
}

// Reset closes and forgets the singleton handle. The next Get reopens the
// database from scratch.
func Reset() error {
	mu.Lock()
	defer mu.Unlock()

	if db == nil {
		return nil
	}
	err := db.Close()
	db = nil
	return err
}
