// Package migrations embeds the goose SQL migrations and applies them at
// startup. The schema carries the uniqueness constraints the service depends
// on: products.sku, users.username, and idempotency_keys (key, owner).
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

func Migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migrations: set dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	return nil
}
