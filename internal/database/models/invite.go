package models

import "github.com/google/uuid"

// OrganizationInvite is a pending invitation for an email address to join an
// organization. Several invites may exist for the same email.
type OrganizationInvite struct {
	BaseModel
	Email          string      `json:"email" gorm:"not null;size:255;index"` // stored lower-cased
	OrganizationID uuid.UUID   `json:"organization_id" gorm:"type:uuid;not null;index"`
	Role           ProfileRole `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
	InvitedBy      *uuid.UUID  `json:"invited_by,omitempty" gorm:"type:uuid"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the table name for OrganizationInvite
func (OrganizationInvite) TableName() string {
	return "organization_invites"
}
