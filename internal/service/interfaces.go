package service

import (
	"context"

	"saas-portal-backend/internal/auth"
	"saas-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// IdentityServiceInterface defines the identity operations registration depends on
type IdentityServiceInterface interface {
	SignUp(ctx context.Context, req auth.SignUpRequest) (*models.Profile, error)
	IssueToken(userID uuid.UUID, email string) (*auth.TokenResponse, error)
}

// RegistrationServiceInterface defines the interface for registration service
type RegistrationServiceInterface interface {
	Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Invite(ctx context.Context, session *auth.Session, req *InviteRequest) (*InviteResponse, error)
	ListTeam(ctx context.Context, session *auth.Session) (*TeamResponse, error)
}

// EntitlementServiceInterface defines the interface for entitlement service
type EntitlementServiceInterface interface {
	LoadConsole(ctx context.Context, session *auth.Session) (*ConsoleResponse, error)
	Toggle(ctx context.Context, session *auth.Session, orgID uuid.UUID, moduleKey string, currentlyActive bool) (*ToggleResponse, error)
	OrganizationModules(ctx context.Context, session *auth.Session) (*OrganizationModulesResponse, error)
}

// ProfileServiceInterface defines the interface for profile service
type ProfileServiceInterface interface {
	GetMe(ctx context.Context, session *auth.Session) (*MeResponse, error)
}
