package repository

import (
	"context"

	"saas-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// IdentityRepositoryInterface defines the interface for identity repository operations
type IdentityRepositoryInterface interface {
	Register(ctx context.Context, identity *models.Identity, req ProvisionRequest) (*models.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Identity, error)
	GetByEmail(ctx context.Context, email string) (*models.Identity, error)
}

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	GetAllNewestFirst(ctx context.Context) ([]models.Organization, error)
	CreateWithAdmin(ctx context.Context, profileID uuid.UUID, name string) (*AttachResult, error)
}

// ProfileRepositoryInterface defines the interface for profile repository operations
type ProfileRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetByOrganizationID(ctx context.Context, orgID uuid.UUID) ([]models.Profile, error)
}

// InviteRepositoryInterface defines the interface for organization invite repository operations
type InviteRepositoryInterface interface {
	Create(ctx context.Context, invite *models.OrganizationInvite) error
	GetByOrganizationID(ctx context.Context, orgID uuid.UUID) ([]models.OrganizationInvite, error)
}

// AppModuleRepositoryInterface defines the interface for module catalog reads
type AppModuleRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.AppModule, error)
}

// OrgModuleRepositoryInterface defines the interface for module license operations
type OrgModuleRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.OrgModuleLicense, error)
	GetByOrganizationID(ctx context.Context, orgID uuid.UUID) ([]models.OrgModuleLicense, error)
	Activate(ctx context.Context, orgID uuid.UUID, moduleKey string) error
	Deactivate(ctx context.Context, orgID uuid.UUID, moduleKey string) (int64, error)
}
