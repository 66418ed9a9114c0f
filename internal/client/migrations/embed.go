// Package migrations embeds the sqlite schema for the local cache.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
