// Package repomanager wires repository constructors to a concrete database
// engine and exposes the schema migration hook.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/sam-ezra/todo/internal/dbx"
	"github.com/sam-ezra/todo/internal/server/repositories/items"
	"github.com/sam-ezra/todo/internal/server/repositories/lists"
	"github.com/sam-ezra/todo/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX, so a
// service can run several repositories inside one transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Lists(db dbx.DBTX) lists.Repository
	Items(db dbx.DBTX) items.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
