package repository

import (
	"context"
	"errors"

	"saas-portal-backend/internal/database/models"
	apperrors "saas-portal-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttachResult describes the outcome of CreateWithAdmin
type AttachResult struct {
	Organization *models.Organization
	Profile      *models.Profile
	// Created is false when the profile already belonged to an organization
	Created bool
}

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetAllNewestFirst retrieves every organization, most recently created first
func (r *OrganizationRepository) GetAllNewestFirst(ctx context.Context) ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&orgs).Error
	return orgs, err
}

// CreateWithAdmin creates an organization and makes the profile its admin in a
// single transaction. The profile row is locked first; if it already belongs to
// an organization nothing is written and that organization is returned.
func (r *OrganizationRepository) CreateWithAdmin(ctx context.Context, profileID uuid.UUID, name string) (*AttachResult, error) {
	result := &AttachResult{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&profile, "id = ?", profileID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProfileNotFound
			}
			return err
		}

		if profile.HasOrganization() {
			var org models.Organization
			if err := tx.First(&org, "id = ?", *profile.OrganizationID).Error; err != nil {
				return err
			}
			result.Organization = &org
			result.Profile = &profile
			return nil
		}

		org := models.Organization{Name: name}
		if err := tx.Create(&org).Error; err != nil {
			return mapPostgresError(err, nil)
		}

		err = tx.Model(&profile).Updates(map[string]interface{}{
			"organization_id": org.ID,
			"role":            models.ProfileRoleAdmin,
		}).Error
		if err != nil {
			return err
		}
		profile.OrganizationID = &org.ID
		profile.Role = models.ProfileRoleAdmin

		result.Organization = &org
		result.Profile = &profile
		result.Created = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
