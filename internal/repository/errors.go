package repository

import (
	"errors"
	"fmt"
	"strings"

	apperrors "saas-portal-backend/internal/errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// mapPostgresError maps PostgreSQL constraint errors to application errors.
// exists is returned for unique violations; foreign key violations resolve to
// the not-found error of the referenced table. Anything else is returned as is.
func mapPostgresError(err error, exists error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		if exists != nil {
			return exists
		}
		return fmt.Errorf("unique constraint violation: %s: %w", pgErr.ConstraintName, err)

	case pgerrcode.ForeignKeyViolation:
		return foreignKeyTarget(pgErr.ConstraintName)

	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
		return fmt.Errorf("transaction conflict (retryable): %w", err)
	}

	return err
}

// foreignKeyTarget picks the not-found error from gorm's constraint naming
// (fk_<table>_<relation>).
func foreignKeyTarget(constraint string) error {
	switch {
	case strings.HasSuffix(constraint, "_module"):
		return apperrors.ErrModuleNotFound
	case strings.HasSuffix(constraint, "_organization"):
		return apperrors.ErrOrganizationNotFound
	case strings.Contains(constraint, "profile"):
		return apperrors.ErrProfileNotFound
	}
	return apperrors.NewNotFoundError("referenced record")
}
