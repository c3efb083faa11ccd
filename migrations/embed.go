// Package migrations embeds the SQL migration files so goose can apply them
// at startup without relying on a filesystem path.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
