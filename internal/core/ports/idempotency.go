package ports

import "context"

// IdempotencyRepository is the durable ledger of admitted mutating requests.
type IdempotencyRepository interface {
	// Exists reports whether a record is already present for (key, owner).
	Exists(ctx context.Context, key, owner string) (bool, error)
	// Insert records the admission. A storage-level uniqueness violation on
	// (key, owner) must surface as domain.ErrIdempotencyKeyReused so that the
	// loser of a concurrent race never sees a generic storage error.
	Insert(ctx context.Context, key, owner, method, path string) error
}

// SeenKeyCache is an advisory cache in front of the durable ledger. It only
// short-circuits known duplicates; a miss or an error proves nothing.
type SeenKeyCache interface {
	Seen(ctx context.Context, key, owner string) (bool, error)
	Mark(ctx context.Context, key, owner string) error
}

// IdempotencyLedger admits a mutating request at most once per (key, owner).
type IdempotencyLedger interface {
	// Admit fails domain.ErrInvalidIdempotencyKey on a blank or oversized key
	// before any store access, and domain.ErrIdempotencyKeyReused when the
	// (key, owner) pair was admitted before.
	Admit(ctx context.Context, key, owner, method, path string) error
}
