package testutils

import (
	"fmt"
	"time"

	"saas-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Acme",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// ProfileFactory provides methods to create test Profile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a provisioned test Profile without an organization
func (f *ProfileFactory) Create() *models.Profile {
	id := uuid.New()
	now := time.Now()
	return &models.Profile{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:      "Ana Lima",
		Email:         fmt.Sprintf("user-%s@example.com", id.String()[:8]),
		Role:          models.ProfileRoleMember,
		ProvisionedAt: &now,
	}
}

// WithOrganization attaches the profile to an organization with the given role
func (f *ProfileFactory) WithOrganization(orgID uuid.UUID, role models.ProfileRole) *models.Profile {
	p := f.Create()
	p.OrganizationID = &orgID
	p.Role = role
	return p
}

// Admin creates an admin profile of the organization
func (f *ProfileFactory) Admin(orgID uuid.UUID) *models.Profile {
	return f.WithOrganization(orgID, models.ProfileRoleAdmin)
}

// SuperAdmin creates a super admin profile without an organization
func (f *ProfileFactory) SuperAdmin() *models.Profile {
	p := f.Create()
	p.IsSuperAdmin = true
	return p
}

// Unprovisioned creates a profile whose provisioning has not finished
func (f *ProfileFactory) Unprovisioned() *models.Profile {
	p := f.Create()
	p.ProvisionedAt = nil
	return p
}

// InviteFactory provides methods to create test OrganizationInvite data
type InviteFactory struct{}

// NewInviteFactory creates a new InviteFactory
func NewInviteFactory() *InviteFactory {
	return &InviteFactory{}
}

// Create creates a member invite for the email into the organization
func (f *InviteFactory) Create(orgID uuid.UUID, email string) *models.OrganizationInvite {
	return &models.OrganizationInvite{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:          email,
		OrganizationID: orgID,
		Role:           models.ProfileRoleMember,
	}
}

// WithRole creates an invite with a custom role
func (f *InviteFactory) WithRole(orgID uuid.UUID, email string, role models.ProfileRole) *models.OrganizationInvite {
	invite := f.Create(orgID, email)
	invite.Role = role
	return invite
}

// ModuleFactory provides methods to create test AppModule data
type ModuleFactory struct{}

// NewModuleFactory creates a new ModuleFactory
func NewModuleFactory() *ModuleFactory {
	return &ModuleFactory{}
}

// Create creates a catalog module with the given key
func (f *ModuleFactory) Create(key string) *models.AppModule {
	return &models.AppModule{
		Key:         key,
		Name:        key + " module",
		BasePrice:   29,
		Description: "Test module " + key,
	}
}

// Catalog returns the crm, billing and inventory modules
func (f *ModuleFactory) Catalog() []models.AppModule {
	return []models.AppModule{*f.Create("billing"), *f.Create("crm"), *f.Create("inventory")}
}

// LicenseFactory provides methods to create test OrgModuleLicense data
type LicenseFactory struct{}

// NewLicenseFactory creates a new LicenseFactory
func NewLicenseFactory() *LicenseFactory {
	return &LicenseFactory{}
}

// Create creates an active license
func (f *LicenseFactory) Create(orgID uuid.UUID, moduleKey string) *models.OrgModuleLicense {
	return &models.OrgModuleLicense{
		OrganizationID: orgID,
		ModuleKey:      moduleKey,
		Status:         models.LicenseStatusActive,
		CreatedAt:      time.Now(),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	Profile      *ProfileFactory
	Invite       *InviteFactory
	Module       *ModuleFactory
	License      *LicenseFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		Profile:      NewProfileFactory(),
		Invite:       NewInviteFactory(),
		Module:       NewModuleFactory(),
		License:      NewLicenseFactory(),
	}
}
