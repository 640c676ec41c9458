// Package migrations embeds the SQL schema files applied at server start.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
