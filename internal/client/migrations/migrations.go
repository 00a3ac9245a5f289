// Package migrations embeds the client's goose SQL migrations for the local
// SQLite database. Migrations are additive only: adding a store or index
// must never drop existing data.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
