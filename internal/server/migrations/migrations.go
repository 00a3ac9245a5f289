// Package migrations embeds the server's goose SQL migrations.
// Migrations are additive only: adding a store or index must never drop
// existing data.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
