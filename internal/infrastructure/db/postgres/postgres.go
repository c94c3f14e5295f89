// Package postgres implements the repositories over a PostgreSQL store using
// database/sql with the pgx stdlib driver. Uniqueness constraints in the
// schema are the enforcement point for sku and idempotency-key admission;
// constraint violations are remapped to domain errors here.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for establishing a Postgres connection pool.
type Config struct {
	URL      string
	MaxConns int
	Timeout  time.Duration
}

// Connect opens a connection pool and validates connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	maxConns := cfg.MaxConns
	if maxConns <= 0 {
		maxConns = 10
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns / 2)
	db.SetConnMaxIdleTime(15 * time.Minute)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}
