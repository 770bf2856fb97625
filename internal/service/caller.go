package service

import (
	"context"
	"errors"
	"fmt"

	"saas-portal-backend/internal/auth"
	"saas-portal-backend/internal/database/models"
	apperrors "saas-portal-backend/internal/errors"
	"saas-portal-backend/internal/repository"

	"gorm.io/gorm"
)

// loadCaller resolves the session to its profile
func loadCaller(ctx context.Context, profiles repository.ProfileRepositoryInterface, session *auth.Session) (*models.Profile, error) {
	if session == nil {
		return nil, apperrors.ErrSessionRequired
	}

	profile, err := profiles.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}
