package lib

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Domain errors. Every service operation reports failure through one of these
// (or a *ValidationError); handlers map them onto HTTP statuses.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrEmptyOrder = errors.New("order is empty")
)

// Auth errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// MapPgError collapses driver-level failures into the domain taxonomy.
// Anything unrecognized passes through as a persistence failure.
func MapPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code { // SQLSTATE
		case "23505": // unique_violation
			return ErrConflict
		case "P0002": // no_data_found
			return ErrNotFound
		}
	}
	return err
}
