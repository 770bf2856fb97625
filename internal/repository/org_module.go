package repository

import (
	"context"

	"saas-portal-backend/internal/database/models"
	apperrors "saas-portal-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrgModuleRepository handles database operations for module licenses
type OrgModuleRepository struct {
	db *gorm.DB
}

// NewOrgModuleRepository creates a new org module repository
func NewOrgModuleRepository(db *gorm.DB) *OrgModuleRepository {
	return &OrgModuleRepository{db: db}
}

// GetAll retrieves every license row
func (r *OrgModuleRepository) GetAll(ctx context.Context) ([]models.OrgModuleLicense, error) {
	var licenses []models.OrgModuleLicense
	err := r.db.WithContext(ctx).Find(&licenses).Error
	return licenses, err
}

// GetByOrganizationID retrieves the license rows of one organization
func (r *OrgModuleRepository) GetByOrganizationID(ctx context.Context, orgID uuid.UUID) ([]models.OrgModuleLicense, error) {
	var licenses []models.OrgModuleLicense
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("module_key ASC").
		Find(&licenses).Error
	return licenses, err
}

// Activate marks the module active for the organization. A missing row is
// inserted and a row with any other status is switched to active. Returns
// ErrLicenseExists when the row is already active.
func (r *OrgModuleRepository) Activate(ctx context.Context, orgID uuid.UUID, moduleKey string) error {
	license := &models.OrgModuleLicense{
		OrganizationID: orgID,
		ModuleKey:      moduleKey,
		Status:         models.LicenseStatusActive,
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "organization_id"}, {Name: "module_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"status": models.LicenseStatusActive}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Neq{Column: clause.Column{Table: models.OrgModuleLicense{}.TableName(), Name: "status"}, Value: models.LicenseStatusActive},
		}},
	}).Create(license)
	if result.Error != nil {
		return mapPostgresError(result.Error, apperrors.ErrLicenseExists)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrLicenseExists
	}
	return nil
}

// Deactivate deletes the license row and returns how many rows were removed.
// Deleting a missing row is not an error.
func (r *OrgModuleRepository) Deactivate(ctx context.Context, orgID uuid.UUID, moduleKey string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("organization_id = ? AND module_key = ?", orgID, moduleKey).
		Delete(&models.OrgModuleLicense{})
	return result.RowsAffected, result.Error
}
