package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the repositories translate into domain errors.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// pgErrorCode extracts the SQLSTATE code from a pgconn error, or "" when the
// error did not come from the server.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
