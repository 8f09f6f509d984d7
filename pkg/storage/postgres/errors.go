package postgres

import (
	"errors"
	"fmt"
	"shortener/pkg/serrors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// wrapErr turns a driver error into a semantic one: unique violations become
// ErrConflict, everything else is wrapped as is.
func wrapErr(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return serrors.Wrap(serrors.ErrConflict, err, "%s", msg)
	}

	return fmt.Errorf("%s: %w", msg, err)
}
