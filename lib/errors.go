package lib

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Request errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Access gate errors. Unauthorized means no verified identity; Forbidden
// means a verified identity that is not on the allow-list. Callers need the
// distinction to decide between re-authentication and a permanent denial.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

func MapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code { // SQLSTATE
		case "23505": // unique_violation
			return ErrConflict
		case "23503": // foreign_key_violation
			return ErrInvalidInput
		case "P0002": // no_data_found
			return ErrNotFound
		}
	}
	return err
}
