package repository

import (
	"errors"
	"fmt"
	"testing"

	apperrors "saas-portal-backend/internal/errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapPostgresError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, mapPostgresError(nil, apperrors.ErrLicenseExists))
	})

	t.Run("non postgres error passes through", func(t *testing.T) {
		err := errors.New("boom")
		assert.Equal(t, err, mapPostgresError(err, apperrors.ErrLicenseExists))
	})

	t.Run("unique violation maps to exists", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "org_modules_pkey"}
		err := mapPostgresError(fmt.Errorf("insert: %w", pgErr), apperrors.ErrLicenseExists)
		assert.True(t, errors.Is(err, apperrors.ErrLicenseExists))
	})

	t.Run("unique violation without exists error is wrapped", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "idx_x"}
		err := mapPostgresError(pgErr, nil)
		assert.Contains(t, err.Error(), "idx_x")
		assert.False(t, apperrors.IsAlreadyExists(err))
	})

	t.Run("foreign key to module", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "fk_org_modules_module"}
		assert.True(t, errors.Is(mapPostgresError(pgErr, nil), apperrors.ErrModuleNotFound))
	})

	t.Run("foreign key to organization", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "fk_org_modules_organization"}
		assert.True(t, errors.Is(mapPostgresError(pgErr, nil), apperrors.ErrOrganizationNotFound))
	})

	t.Run("unknown foreign key is still not found", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "fk_other"}
		assert.True(t, apperrors.IsNotFound(mapPostgresError(pgErr, nil)))
	})
}
