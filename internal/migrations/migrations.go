// Package migrations embeds the SQL schema migrations run by goose at startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
