// Package schema embeds the platform's SQL migrations.
package schema

import "embed"

// MigrationsDir is the directory inside MigrationsFS holding the .sql files.
const MigrationsDir = "pgmigrations"

// MigrationsFS contains the forward-only migrations, applied in file name order.
//
//go:embed pgmigrations/*.sql
var MigrationsFS embed.FS
