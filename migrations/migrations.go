// Package migrations embeds the goose SQL migration files so the
// server can bring the schema up to date at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
