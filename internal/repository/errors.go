package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/frotaops/route-manager/internal/domain"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError maps low-level persistence failures to the domain error
// taxonomy. Constraint violations keep the name of the constraint that fired
// so the caller can produce an entity-specific message; everything else
// passes through and degrades to an opaque server error at the boundary.
func translateError(err error, entity string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &domain.ConflictError{
				Message:    fmt.Sprintf("There is already a %s with the provided data", entity),
				Constraint: pgErr.ConstraintName,
			}
		case pgForeignKeyViolation:
			return &domain.ForeignKeyError{
				Message:    fmt.Sprintf("A record referenced by this %s does not exist", entity),
				Constraint: pgErr.ConstraintName,
			}
		}
		return err
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &domain.ConflictError{
			Message: fmt.Sprintf("There is already a %s with the provided data", entity),
		}
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &domain.ForeignKeyError{
			Message: fmt.Sprintf("A record referenced by this %s does not exist", entity),
		}
	}
	return err
}
