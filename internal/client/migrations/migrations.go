// Package migrations embeds the console's local SQLite schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
