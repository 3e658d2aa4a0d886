package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
)

// PostgreSQL SQLSTATE codes the repositories care about
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeCheckViolation      = "23514"
	CodeNotNullViolation    = "23502"
)

func pgCode(err error) (string, string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", "", false
	}
	return pgErr.Code, pgErr.ConstraintName, true
}

// IsDuplicateKeyError checks if the error is a PostgreSQL unique violation error.
func IsDuplicateKeyError(err error) bool {
	code, _, ok := pgCode(err)
	return ok && code == CodeUniqueViolation
}

// IsForeignKeyError checks if the error is a foreign key violation (23503).
func IsForeignKeyError(err error) bool {
	code, _, ok := pgCode(err)
	return ok && code == CodeForeignKeyViolation
}

// IsCheckViolation checks if the error is a CHECK or NOT NULL constraint violation.
func IsCheckViolation(err error) bool {
	code, _, ok := pgCode(err)
	return ok && (code == CodeCheckViolation || code == CodeNotNullViolation)
}

// ConstraintName returns the violated constraint name, or "" if err is not a PgError.
func ConstraintName(err error) string {
	_, constraint, _ := pgCode(err)
	return constraint
}
