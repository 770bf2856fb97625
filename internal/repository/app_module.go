package repository

import (
	"context"

	"saas-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// AppModuleRepository handles reads of the module catalog
type AppModuleRepository struct {
	db *gorm.DB
}

// NewAppModuleRepository creates a new app module repository
func NewAppModuleRepository(db *gorm.DB) *AppModuleRepository {
	return &AppModuleRepository{db: db}
}

// GetAll retrieves every catalog module ordered by key
func (r *AppModuleRepository) GetAll(ctx context.Context) ([]models.AppModule, error) {
	var modules []models.AppModule
	err := r.db.WithContext(ctx).Order(`"key" ASC`).Find(&modules).Error
	return modules, err
}
