// Package migrations embeds the outbox SQLite schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
