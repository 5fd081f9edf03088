// Package db embeds the SQL migrations and development seed data applied at
// server startup.
package db

import (
	"context"
	"embed"

	idb "github.com/underdog-devs/mentorship-api/internal/db"
)

//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed seed/*.sql
var SeedFiles embed.FS

// Apply runs all embedded migrations and seed files against d.
func Apply(ctx context.Context, d *idb.DB) error {
	return idb.Migrate(ctx, d, Migrations, SeedFiles)
}
