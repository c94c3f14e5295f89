package domain

import (
	"errors"
	"time"
)

// Limits mirrored by the idempotency_keys schema.
const (
	MaxIdempotencyKeyLen = 128
	MaxOwnerLen          = 64
)

var ErrIdempotencyKeyReused = errors.New("idempotency key has already been used")
var ErrInvalidIdempotencyKey = errors.New("idempotency key must not be empty")

// IdempotencyRecord is one admitted mutating request. The (Key, Owner) pair is
// unique for the lifetime of the system; records are never updated or deleted.
type IdempotencyRecord struct {
	ID         int64     `json:"id"`
	Key        string    `json:"key"`
	Owner      string    `json:"owner"`
	HTTPMethod string    `json:"httpMethod"`
	Path       string    `json:"path"`
	CreatedAt  time.Time `json:"createdAt"`
}
