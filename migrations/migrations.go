// Package migrations embeds the SQL schema files for the migrate runner
// and the e2e test harness.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
