package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/frotaops/route-manager/internal/domain"
)

func TestTranslateError_UniqueViolation(t *testing.T) {
	err := translateError(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "unq_countries_alpha_2",
	}, "Country")

	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "There is already a Country with the provided data", conflict.Message)
	assert.Equal(t, "unq_countries_alpha_2", conflict.Constraint)
}

func TestTranslateError_ForeignKeyViolation(t *testing.T) {
	err := translateError(&pgconn.PgError{
		Code:           "23503",
		ConstraintName: "fk_routes_vehicle_id",
	}, "Route")

	var fk *domain.ForeignKeyError
	require.ErrorAs(t, err, &fk)
	assert.Equal(t, "fk_routes_vehicle_id", fk.Constraint)
}

func TestTranslateError_GormSentinels(t *testing.T) {
	var conflict *domain.ConflictError
	require.ErrorAs(t, translateError(gorm.ErrDuplicatedKey, "State"), &conflict)

	var fk *domain.ForeignKeyError
	require.ErrorAs(t, translateError(gorm.ErrForeignKeyViolated, "State"), &fk)
}

func TestTranslateError_UnknownErrorsPassThrough(t *testing.T) {
	cause := errors.New("connection reset")
	assert.Equal(t, cause, translateError(cause, "City"))

	other := &pgconn.PgError{Code: "57014"}
	assert.Equal(t, error(other), translateError(other, "City"))
}
