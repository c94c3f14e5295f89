package postgres

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgErrorCode extracts the PostgreSQL error code from a driver error, or ""
// when err did not originate from the server.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation reports whether err is a 23505 unique_violation. The
// repositories remap these to domain errors so a lost insert race surfaces as
// a typed conflict, never a generic storage failure.
func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == pgerrcode.UniqueViolation
}
