package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/storecore/catalog-api/internal/core/domain"
)

// IdempotencyRepository is the durable ledger backed by the idempotency_keys
// table. The UNIQUE (idempotency_key, owner) constraint is the actual
// admission mechanism: when two identical requests race past the existence
// check, the second insert fails 23505 and is remapped to
// domain.ErrIdempotencyKeyReused.
type IdempotencyRepository struct {
	db *sql.DB
}

func NewIdempotencyRepository(db *sql.DB) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

func (r *IdempotencyRepository) Exists(ctx context.Context, key, owner string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var exists bool
	if err := r.db.QueryRowContext(ctx, idempotencyKeyExists, key, owner).Scan(&exists); err != nil {
		return false, fmt.Errorf("idempotency key exists: %w", err)
	}
	return exists, nil
}

func (r *IdempotencyRepository) Insert(ctx context.Context, key, owner, method, path string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, insertIdempotencyKey, key, owner, method, path, time.Now().UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrIdempotencyKeyReused, key)
		}
		return fmt.Errorf("insert idempotency key: %w", err)
	}
	return nil
}
