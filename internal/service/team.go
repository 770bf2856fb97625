package service

import (
	"context"
	"fmt"
	"time"

	"saas-portal-backend/internal/auth"
	"saas-portal-backend/internal/database/models"
	apperrors "saas-portal-backend/internal/errors"
	"saas-portal-backend/internal/logger"
	"saas-portal-backend/internal/metrics"
	"saas-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TeamService handles team listing and invitations
type TeamService struct {
	profiles  repository.ProfileRepositoryInterface
	invites   repository.InviteRepositoryInterface
	validator *validator.Validate
	metrics   *metrics.Metrics
}

// NewTeamService creates a new team service
func NewTeamService(
	profiles repository.ProfileRepositoryInterface,
	invites repository.InviteRepositoryInterface,
	validator *validator.Validate,
	m *metrics.Metrics,
) *TeamService {
	return &TeamService{
		profiles:  profiles,
		invites:   invites,
		validator: validator,
		metrics:   m,
	}
}

// InviteRequest represents the request to invite an email to the caller's organization
type InviteRequest struct {
	Email string `json:"email" validate:"required,email,max=255" example:"bo@acme.io"`
}

// InviteResponse represents a pending invite
type InviteResponse struct {
	ID             uuid.UUID          `json:"id"`
	Email          string             `json:"email" example:"bo@acme.io"`
	Role           models.ProfileRole `json:"role" example:"member"`
	OrganizationID uuid.UUID          `json:"organization_id,omitempty"`
	CreatedAt      string             `json:"created_at,omitempty"`
}

// TeamMemberResponse represents a profile of the caller's organization
type TeamMemberResponse struct {
	ID       uuid.UUID          `json:"id"`
	FullName string             `json:"full_name" example:"Ana Lima"`
	Role     models.ProfileRole `json:"role" example:"admin"`
}

// TeamResponse is the team view of the caller's organization
type TeamResponse struct {
	OrganizationID *uuid.UUID           `json:"organization_id"`
	MyRole         models.ProfileRole   `json:"my_role,omitempty" example:"admin"`
	Members        []TeamMemberResponse `json:"members"`
	Invites        []InviteResponse     `json:"invites"`
}

// Invite creates a member invite for an email. Only admins of an organization
// may invite, and repeated invites for the same email are all kept.
func (s *TeamService) Invite(ctx context.Context, session *auth.Session, req *InviteRequest) (*InviteResponse, error) {
	caller, err := loadCaller(ctx, s.profiles, session)
	if err != nil {
		return nil, err
	}
	if !caller.HasOrganization() {
		return nil, apperrors.ErrNoOrganization
	}
	if caller.Role != models.ProfileRoleAdmin {
		return nil, apperrors.ErrNotOrganizationAdmin
	}

	normalized := InviteRequest{Email: normalizeEmail(req.Email)}
	if err := s.validator.Struct(&normalized); err != nil {
		return nil, validationError(err)
	}

	invitedBy := caller.ID
	invite := &models.OrganizationInvite{
		Email:          normalized.Email,
		OrganizationID: *caller.OrganizationID,
		Role:           models.ProfileRoleMember,
		InvitedBy:      &invitedBy,
	}
	if err := s.invites.Create(ctx, invite); err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	s.metrics.IncInvites()
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organization_id": invite.OrganizationID,
		"invitee":         invite.Email,
	}).Info("invite created")

	resp := toInviteResponse(invite)
	resp.OrganizationID = invite.OrganizationID
	return &resp, nil
}

// ListTeam returns the members and pending invites of the caller's
// organization. A caller without an organization gets empty lists.
func (s *TeamService) ListTeam(ctx context.Context, session *auth.Session) (*TeamResponse, error) {
	caller, err := loadCaller(ctx, s.profiles, session)
	if err != nil {
		return nil, err
	}

	resp := &TeamResponse{
		Members: []TeamMemberResponse{},
		Invites: []InviteResponse{},
	}
	if !caller.HasOrganization() {
		return resp, nil
	}

	orgID := *caller.OrganizationID
	resp.OrganizationID = &orgID
	resp.MyRole = caller.Role

	members, err := s.profiles.GetByOrganizationID(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	for _, m := range members {
		resp.Members = append(resp.Members, TeamMemberResponse{
			ID:       m.ID,
			FullName: m.FullName,
			Role:     m.Role,
		})
	}

	invites, err := s.invites.GetByOrganizationID(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	for i := range invites {
		resp.Invites = append(resp.Invites, toInviteResponse(&invites[i]))
	}

	return resp, nil
}

func toInviteResponse(invite *models.OrganizationInvite) InviteResponse {
	resp := InviteResponse{
		ID:    invite.ID,
		Email: invite.Email,
		Role:  invite.Role,
	}
	if !invite.CreatedAt.IsZero() {
		resp.CreatedAt = invite.CreatedAt.Format(time.RFC3339)
	}
	return resp
}
