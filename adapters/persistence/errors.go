package persistence

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
	pgFKViolation     = "23503"
)

// uniqueField names the field a unique constraint protects, for error reporting.
type uniqueField struct {
	field string
	value string
}

// mapWriteError turns driver errors from INSERT/UPDATE into application errors.
// uniques maps constraint names to the field they guard.
func mapWriteError(err error, resource, id string, uniques map[string]uniqueField) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.NewNotFound(resource, id)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if u, ok := uniques[pgErr.ConstraintName]; ok {
				return apperror.NewConflict(resource, u.field, u.value)
			}
			return apperror.NewConflict(resource, pgErr.ConstraintName, "")
		case pgCheckViolation:
			return apperror.NewInvalidInput("value rejected by constraint "+pgErr.ConstraintName, err)
		case pgFKViolation:
			return apperror.NewInvalidInput("referenced account does not exist", err)
		}
	}
	return apperror.NewInternal("failed to write "+resource, err)
}

func mapReadError(err error, resource, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.NewNotFound(resource, id)
	}
	return apperror.NewInternal("failed to read "+resource, err)
}
