// database/migrations/embed.go
package migrations

import "embed"

// FS holds the goose SQL migrations for the SkySQL schema.
//
//go:embed *.sql
var FS embed.FS
