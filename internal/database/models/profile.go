package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the per-identity membership row. Role only has meaning while
// OrganizationID is set.
type Profile struct {
	BaseModel
	FullName       string      `json:"full_name" gorm:"not null;size:200;default:''"`
	Email          string      `json:"email" gorm:"not null;size:255;index"`
	OrganizationID *uuid.UUID  `json:"organization_id" gorm:"type:uuid;index"`
	Role           ProfileRole `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
	IsSuperAdmin   bool        `json:"is_super_admin" gorm:"not null;default:false"`
	ProvisionedAt  *time.Time  `json:"provisioned_at,omitempty"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}

// HasOrganization reports whether the profile is attached to an organization
func (p *Profile) HasOrganization() bool {
	return p.OrganizationID != nil && *p.OrganizationID != uuid.Nil
}

// IsProvisioned reports whether the provisioning step has finished for this profile
func (p *Profile) IsProvisioned() bool {
	return p.ProvisionedAt != nil
}

// IsAdminOf reports whether the profile administers the given organization
func (p *Profile) IsAdminOf(orgID uuid.UUID) bool {
	return p.HasOrganization() && *p.OrganizationID == orgID && p.Role == ProfileRoleAdmin
}
