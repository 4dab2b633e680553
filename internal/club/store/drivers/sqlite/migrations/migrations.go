// Package migrations embeds the sqlite schema migration files so they can
// be applied from the binary with no files on disk.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
