package database

import (
	"fmt"
	"os"

	"saas-portal-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ModuleData mirrors one entry of the module catalog file
type ModuleData struct {
	Key         string  `yaml:"key"`
	Name        string  `yaml:"name"`
	BasePrice   float64 `yaml:"base_price"`
	Description string  `yaml:"description,omitempty"`
}

// ModuleCatalog is the top-level layout of the catalog file
type ModuleCatalog struct {
	Modules []ModuleData `yaml:"modules"`
}

// LoadModuleCatalog reads and validates the YAML module catalog at path
func LoadModuleCatalog(path string) ([]models.AppModule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read module catalog: %w", err)
	}
	return ParseModuleCatalog(raw)
}

// ParseModuleCatalog decodes catalog YAML. Keys must be unique and non-empty.
func ParseModuleCatalog(raw []byte) ([]models.AppModule, error) {
	var catalog ModuleCatalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("parse module catalog: %w", err)
	}

	seen := make(map[string]bool, len(catalog.Modules))
	modules := make([]models.AppModule, 0, len(catalog.Modules))
	for i, m := range catalog.Modules {
		if m.Key == "" {
			return nil, fmt.Errorf("module #%d: key is required", i+1)
		}
		if m.Name == "" {
			return nil, fmt.Errorf("module %q: name is required", m.Key)
		}
		if m.BasePrice < 0 {
			return nil, fmt.Errorf("module %q: base_price cannot be negative", m.Key)
		}
		if seen[m.Key] {
			return nil, fmt.Errorf("module %q: duplicate key", m.Key)
		}
		seen[m.Key] = true
		modules = append(modules, models.AppModule{
			Key:         m.Key,
			Name:        m.Name,
			BasePrice:   m.BasePrice,
			Description: m.Description,
		})
	}
	return modules, nil
}

// SeedModules inserts catalog entries that are not present yet. Existing rows
// are left untouched.
func SeedModules(db *gorm.DB, modules []models.AppModule) (int64, error) {
	if len(modules) == 0 {
		return 0, nil
	}
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	}).Create(&modules)
	if res.Error != nil {
		return 0, fmt.Errorf("seed modules: %w", res.Error)
	}
	return res.RowsAffected, nil
}
