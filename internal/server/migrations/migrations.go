// Package migrations embeds the SQL schema migrations applied at startup by
// the PostgreSQL repository manager.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
