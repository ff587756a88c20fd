package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrConcurrencyConflict is returned by Complete when a staged update or
	// delete targets a row whose stored version no longer matches.
	ErrConcurrencyConflict = errors.New("concurrency conflict")

	// ErrInvalidReference is returned by Complete when a staged change points
	// at a row that does not exist.
	ErrInvalidReference = errors.New("invalid reference")
)

// translateError maps driver errors onto the repository sentinels.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return fmt.Errorf("%w: %s", ErrInvalidReference, pgErr.ConstraintName)
	}
	return err
}
