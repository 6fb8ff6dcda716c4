// Package migrations embeds the goose SQL migrations for the job board schema.
package migrations

import "embed"

// FS contains the migration files at its root.
//
//go:embed *.sql
var FS embed.FS
