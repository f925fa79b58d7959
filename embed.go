// Package carmate exposes build-time embedded assets shared by the
// commands, most importantly the goose SQL migrations.
package carmate

import "embed"

// Migrations holds the embedded goose migration files applied by the
// `migrate` subcommand and by the postgres integration tests.
//
//go:embed migrations
var Migrations embed.FS
