package migrations

import "embed"

// Migrations are compiled into the binary and applied on startup through
// golang-migrate's iofs source.
//
//go:embed *.sql
var Migrations embed.FS
