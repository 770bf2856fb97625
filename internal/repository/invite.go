package repository

import (
	"context"
	"strings"

	"saas-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InviteRepository handles database operations for organization invites
type InviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository creates a new invite repository
func NewInviteRepository(db *gorm.DB) *InviteRepository {
	return &InviteRepository{db: db}
}

// Create inserts an invite. Duplicates for the same email are allowed.
func (r *InviteRepository) Create(ctx context.Context, invite *models.OrganizationInvite) error {
	invite.Email = strings.ToLower(strings.TrimSpace(invite.Email))
	return mapPostgresError(r.db.WithContext(ctx).Create(invite).Error, nil)
}

// GetByOrganizationID retrieves the pending invites of an organization
func (r *InviteRepository) GetByOrganizationID(ctx context.Context, orgID uuid.UUID) ([]models.OrganizationInvite, error) {
	var invites []models.OrganizationInvite
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at ASC").
		Find(&invites).Error
	return invites, err
}
