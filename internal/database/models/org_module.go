package models

import (
	"time"

	"github.com/google/uuid"
)

// OrgModuleLicense links an organization to a module it is entitled to. The
// composite primary key keeps at most one row per (organization, module).
type OrgModuleLicense struct {
	OrganizationID uuid.UUID     `json:"organization_id" gorm:"type:uuid;primaryKey"`
	ModuleKey      string        `json:"module_key" gorm:"primaryKey;size:50"`
	Status         LicenseStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt      time.Time     `json:"created_at"`

	// Relationships
	Organization *Organization `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Module       *AppModule    `json:"-" gorm:"foreignKey:ModuleKey;references:Key;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the table name for OrgModuleLicense
func (OrgModuleLicense) TableName() string {
	return "org_modules"
}
