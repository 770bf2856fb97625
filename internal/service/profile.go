package service

import (
	"context"
	"errors"
	"fmt"

	"saas-portal-backend/internal/auth"
	"saas-portal-backend/internal/database/models"
	apperrors "saas-portal-backend/internal/errors"
	"saas-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileService serves the caller's own profile
type ProfileService struct {
	profiles repository.ProfileRepositoryInterface
	orgs     repository.OrganizationRepositoryInterface
}

// NewProfileService creates a new profile service
func NewProfileService(profiles repository.ProfileRepositoryInterface, orgs repository.OrganizationRepositoryInterface) *ProfileService {
	return &ProfileService{profiles: profiles, orgs: orgs}
}

// MeResponse is the dashboard view of the caller
type MeResponse struct {
	ID               uuid.UUID          `json:"id"`
	FullName         string             `json:"full_name" example:"Ana Lima"`
	Email            string             `json:"email" example:"ana@acme.io"`
	OrganizationID   *uuid.UUID         `json:"organization_id"`
	OrganizationName string             `json:"organization_name,omitempty" example:"Acme"`
	Role             models.ProfileRole `json:"role,omitempty" example:"admin"`
	IsSuperAdmin     bool               `json:"is_super_admin"`
}

// GetMe returns the caller's profile with the name of their organization
func (s *ProfileService) GetMe(ctx context.Context, session *auth.Session) (*MeResponse, error) {
	profile, err := loadCaller(ctx, s.profiles, session)
	if err != nil {
		return nil, err
	}

	resp := &MeResponse{
		ID:           profile.ID,
		FullName:     profile.FullName,
		Email:        profile.Email,
		IsSuperAdmin: profile.IsSuperAdmin,
	}
	if !profile.HasOrganization() {
		return resp, nil
	}

	orgID := *profile.OrganizationID
	resp.OrganizationID = &orgID
	resp.Role = profile.Role

	org, err := s.orgs.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	resp.OrganizationName = org.Name

	return resp, nil
}
