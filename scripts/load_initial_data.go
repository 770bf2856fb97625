package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"saas-portal-backend/internal/config"
	"saas-portal-backend/internal/database"
	"saas-portal-backend/internal/database/models"

	"github.com/cenkalti/backoff/v5"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// OrganizationData is one demo organization with the modules it is licensed for
type OrganizationData struct {
	Name    string   `yaml:"name"`
	Modules []string `yaml:"modules"`
}

type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

func main() {
	log.Println("Loading initial data...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(context.Background(), cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	modules, err := database.LoadModuleCatalog(cfg.ModuleCatalogPath)
	if err != nil {
		log.Fatalf("Failed to load module catalog: %v", err)
	}
	inserted, err := database.SeedModules(db, modules)
	if err != nil {
		log.Fatalf("Failed to seed modules: %v", err)
	}
	log.Printf("Modules: %d created, %d total", inserted, len(modules))

	if err := loadOrganizations(db, "scripts/data/organizations.yaml"); err != nil {
		log.Fatalf("Failed to load organizations: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(ctx context.Context, dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress GORM logs including SQL queries and "record not found"
	opts := &database.Options{LogLevel: logger.Silent}

	attempt := 0
	return backoff.Retry(ctx, func() (*gorm.DB, error) {
		attempt++
		db, err := database.Initialize(dsn, opts)
		if err != nil && (attempt%10 == 0 || attempt == maxAttempts) {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		return db, err
	}, backoff.WithBackOff(backoff.NewConstantBackOff(delay)), backoff.WithMaxTries(uint(maxAttempts)))
}

// loadOrganizations creates demo organizations and their licenses. A missing
// file is not an error.
func loadOrganizations(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("No demo organizations at %s, skipping", path)
		return nil
	}
	if err != nil {
		return err
	}

	var file OrganizationsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	orgCreated, licenseCreated := 0, 0
	for _, orgData := range file.Organizations {
		var org models.Organization
		err := db.Where("name = ?", orgData.Name).First(&org).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			org = models.Organization{Name: orgData.Name}
			err = db.Create(&org).Error
			if err == nil {
				orgCreated++
			}
		}
		if err != nil {
			return fmt.Errorf("create organization %s: %w", orgData.Name, err)
		}

		for _, key := range orgData.Modules {
			license := models.OrgModuleLicense{
				OrganizationID: org.ID,
				ModuleKey:      key,
				Status:         models.LicenseStatusActive,
			}
			res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&license)
			if res.Error != nil {
				log.Printf("Warning: failed to license %s for %s: %v", key, orgData.Name, res.Error)
				continue
			}
			licenseCreated += int(res.RowsAffected)
		}
	}
	log.Printf("Organizations: %d created, %d total", orgCreated, len(file.Organizations))
	log.Printf("Module licenses: %d created", licenseCreated)
	return nil
}
