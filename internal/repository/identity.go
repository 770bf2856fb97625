package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"saas-portal-backend/internal/database/models"
	apperrors "saas-portal-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProvisionRequest carries the inputs of profile provisioning for a new identity
type ProvisionRequest struct {
	FullName       string
	IsSuperAdmin   bool
	ConsumeInvites bool
}

// IdentityRepository handles database operations for identities and the
// provisioning of their profiles
type IdentityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository creates a new identity repository
func NewIdentityRepository(db *gorm.DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

// Register inserts the identity and provisions its profile in one transaction.
// The profile shares the identity ID. When an invite exists for the email, the
// most recent one decides the organization and role.
func (r *IdentityRepository) Register(ctx context.Context, identity *models.Identity, req ProvisionRequest) (*models.Profile, error) {
	identity.Email = strings.ToLower(strings.TrimSpace(identity.Email))
	if identity.ID == uuid.Nil {
		identity.ID = uuid.New()
	}

	var profile models.Profile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(identity).Error; err != nil {
			return mapPostgresError(err, apperrors.ErrIdentityExists)
		}

		profile = models.Profile{
			BaseModel:    models.BaseModel{ID: identity.ID},
			FullName:     req.FullName,
			Email:        identity.Email,
			Role:         models.ProfileRoleMember,
			IsSuperAdmin: req.IsSuperAdmin,
		}

		var invite models.OrganizationInvite
		err := tx.Where("LOWER(email) = ?", identity.Email).
			Order("created_at DESC").
			First(&invite).Error
		switch {
		case err == nil:
			orgID := invite.OrganizationID
			profile.OrganizationID = &orgID
			profile.Role = invite.Role
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return err
		}

		now := time.Now()
		profile.ProvisionedAt = &now
		if err := tx.Create(&profile).Error; err != nil {
			return mapPostgresError(err, nil)
		}

		if req.ConsumeInvites && profile.HasOrganization() {
			return tx.Where("LOWER(email) = ? AND organization_id = ?", identity.Email, *profile.OrganizationID).
				Delete(&models.OrganizationInvite{}).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByID retrieves an identity by ID
func (r *IdentityRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Identity, error) {
	var identity models.Identity
	err := r.db.WithContext(ctx).First(&identity, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &identity, nil
}

// GetByEmail retrieves an identity by email, case-insensitively
func (r *IdentityRepository) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	var identity models.Identity
	err := r.db.WithContext(ctx).
		First(&identity, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		return nil, err
	}
	return &identity, nil
}
