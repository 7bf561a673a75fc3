// Package migrations embeds the SQL that bootstraps an empty PostgreSQL
// database with the Chinook schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
