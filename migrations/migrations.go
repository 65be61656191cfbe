// Package migrations embeds the SQL migration files so the server binary can
// apply them without access to the source tree.
package migrations

import "embed"

// Files holds the embedded goose migration scripts.
//
//go:embed *.sql
var Files embed.FS
