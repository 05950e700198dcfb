package application

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/frotaops/route-manager/internal/domain"
	"github.com/frotaops/route-manager/internal/repository"
)

// Store is the persistence contract the services depend on. It is satisfied
// by *repository.Repository[T]; tests substitute in-memory fakes.
type Store[T any] interface {
	Get(ctx context.Context, f repository.Filter) (*T, error)
	List(ctx context.Context, page, limit int) ([]T, error)
	ListWhere(ctx context.Context, column string, value any) ([]T, error)
	Save(ctx context.Context, row *T) (*T, error)
	Update(ctx context.Context, id uuid.UUID, row *T) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) (*T, error)
}

// decorateConflict replaces a conflict error's generic message with an
// entity-specific one. Other errors pass through untouched.
func decorateConflict(err error, message, hint string) error {
	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		conflict.Message = message
		conflict.Hint = hint
		return conflict
	}
	return err
}

// fkMessage pairs a user-facing message with a remediation hint for a
// foreign-key violation.
type fkMessage struct {
	Message string
	Hint    string
}

// decorateForeignKey rewrites a foreign-key error based on which constraint
// fired, matching constraint names by fragment so both the migration-defined
// and auto-migrated names resolve.
func decorateForeignKey(err error, byFragment map[string]fkMessage) error {
	var fk *domain.ForeignKeyError
	if !errors.As(err, &fk) {
		return err
	}
	for fragment, msg := range byFragment {
		if strings.Contains(fk.Constraint, fragment) {
			fk.Message = msg.Message
			fk.Hint = msg.Hint
			return fk
		}
	}
	return fk
}

// parseRef parses a reference id, reporting malformed values as validation
// failures before any storage call is made.
func parseRef(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(field + " must be a valid UUID")
	}
	return id, nil
}

// parseOptionalRef is parseRef for optional references; nil input yields nil.
func parseOptionalRef(field string, value *string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := parseRef(field, *value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
