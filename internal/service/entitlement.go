package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"saas-portal-backend/internal/auth"
	"saas-portal-backend/internal/database/models"
	apperrors "saas-portal-backend/internal/errors"
	"saas-portal-backend/internal/logger"
	"saas-portal-backend/internal/metrics"
	"saas-portal-backend/internal/repository"

	"github.com/google/uuid"
)

// EntitlementService handles the super admin console and module licenses
type EntitlementService struct {
	profiles repository.ProfileRepositoryInterface
	orgs     repository.OrganizationRepositoryInterface
	modules  repository.AppModuleRepositoryInterface
	licenses repository.OrgModuleRepositoryInterface
	cache    *EntitlementCache
	metrics  *metrics.Metrics
}

// NewEntitlementService creates a new entitlement service
func NewEntitlementService(
	profiles repository.ProfileRepositoryInterface,
	orgs repository.OrganizationRepositoryInterface,
	modules repository.AppModuleRepositoryInterface,
	licenses repository.OrgModuleRepositoryInterface,
	cache *EntitlementCache,
	m *metrics.Metrics,
) *EntitlementService {
	if cache == nil {
		cache = NewEntitlementCache()
	}
	return &EntitlementService{
		profiles: profiles,
		orgs:     orgs,
		modules:  modules,
		licenses: licenses,
		cache:    cache,
		metrics:  m,
	}
}

// ConsoleOrganization is an organization row of the console
type ConsoleOrganization struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" example:"Acme"`
	CreatedAt string    `json:"created_at"`
}

// ConsoleModule is a catalog entry of the console
type ConsoleModule struct {
	Key         string  `json:"key" example:"crm"`
	Name        string  `json:"name" example:"CRM"`
	BasePrice   float64 `json:"base_price" example:"29"`
	Description string  `json:"description"`
}

// ConsoleResponse is everything the super admin console renders
type ConsoleResponse struct {
	Organizations []ConsoleOrganization `json:"organizations"`
	Modules       []ConsoleModule       `json:"modules"`
	Active        []Entitlement         `json:"active"`
}

// ToggleRequest carries the state the console showed when the admin clicked
type ToggleRequest struct {
	CurrentlyActive *bool `json:"currently_active" binding:"required"`
}

// ToggleResponse reports the state after a toggle
type ToggleResponse struct {
	OrganizationID uuid.UUID `json:"organization_id"`
	ModuleKey      string    `json:"module_key" example:"crm"`
	Active         bool      `json:"active"`
}

// OrganizationModulesResponse lists the modules the caller's organization is entitled to
type OrganizationModulesResponse struct {
	OrganizationID *uuid.UUID `json:"organization_id"`
	Modules        []string   `json:"modules"`
}

// Cache exposes the entitlement cache
func (s *EntitlementService) Cache() *EntitlementCache {
	return s.cache
}

// requireSuperAdmin loads the caller and rejects anyone who is not a super admin
func (s *EntitlementService) requireSuperAdmin(ctx context.Context, session *auth.Session) (*models.Profile, error) {
	caller, err := loadCaller(ctx, s.profiles, session)
	if err != nil {
		return nil, err
	}
	if !caller.IsSuperAdmin {
		return nil, apperrors.ErrNotSuperAdmin
	}
	return caller, nil
}

// LoadConsole returns organizations (newest first), the module catalog and the
// active licenses, rebuilding the entitlement cache from the store. Nothing
// is read for callers who are not super admins.
func (s *EntitlementService) LoadConsole(ctx context.Context, session *auth.Session) (*ConsoleResponse, error) {
	if _, err := s.requireSuperAdmin(ctx, session); err != nil {
		return nil, err
	}

	orgs, err := s.orgs.GetAllNewestFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	modules, err := s.modules.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}
	licenses, err := s.licenses.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list licenses: %w", err)
	}

	s.cache.Rebuild(licenses)

	resp := &ConsoleResponse{
		Organizations: make([]ConsoleOrganization, 0, len(orgs)),
		Modules:       make([]ConsoleModule, 0, len(modules)),
		Active:        s.cache.Snapshot(),
	}
	for _, o := range orgs {
		resp.Organizations = append(resp.Organizations, ConsoleOrganization{
			ID:        o.ID,
			Name:      o.Name,
			CreatedAt: o.CreatedAt.Format(time.RFC3339),
		})
	}
	for _, m := range modules {
		resp.Modules = append(resp.Modules, ConsoleModule{
			Key:         m.Key,
			Name:        m.Name,
			BasePrice:   m.BasePrice,
			Description: m.Description,
		})
	}

	return resp, nil
}

// Toggle flips one license: it deletes the row when currentlyActive is true and
// inserts an active row otherwise. The cache is patched without re-reading.
func (s *EntitlementService) Toggle(ctx context.Context, session *auth.Session, orgID uuid.UUID, moduleKey string, currentlyActive bool) (*ToggleResponse, error) {
	if _, err := s.requireSuperAdmin(ctx, session); err != nil {
		return nil, err
	}

	moduleKey = strings.TrimSpace(moduleKey)
	if orgID == uuid.Nil {
		return nil, apperrors.NewValidationError("organization_id", "is required")
	}
	if moduleKey == "" {
		return nil, apperrors.NewValidationError("module_key", "is required")
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organization_id": orgID,
		"module_key":      moduleKey,
	})

	if currentlyActive {
		removed, err := s.licenses.Deactivate(ctx, orgID, moduleKey)
		if err != nil {
			s.metrics.ObserveToggle("deactivate", "error")
			return nil, fmt.Errorf("failed to deactivate module: %w", err)
		}
		s.cache.Set(orgID, moduleKey, false)
		s.metrics.ObserveToggle("deactivate", "ok")
		log.WithField("rows", removed).Info("module deactivated")
	} else {
		if err := s.licenses.Activate(ctx, orgID, moduleKey); err != nil {
			if errors.Is(err, apperrors.ErrLicenseExists) {
				s.cache.Set(orgID, moduleKey, true)
				s.metrics.ObserveToggle("activate", "conflict")
				return nil, err
			}
			s.metrics.ObserveToggle("activate", "error")
			if apperrors.IsNotFound(err) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to activate module: %w", err)
		}
		s.cache.Set(orgID, moduleKey, true)
		s.metrics.ObserveToggle("activate", "ok")
		log.Info("module activated")
	}

	return &ToggleResponse{
		OrganizationID: orgID,
		ModuleKey:      moduleKey,
		Active:         s.cache.IsActive(orgID, moduleKey),
	}, nil
}

// OrganizationModules returns the active module keys of the caller's own organization
func (s *EntitlementService) OrganizationModules(ctx context.Context, session *auth.Session) (*OrganizationModulesResponse, error) {
	caller, err := loadCaller(ctx, s.profiles, session)
	if err != nil {
		return nil, err
	}

	resp := &OrganizationModulesResponse{Modules: []string{}}
	if !caller.HasOrganization() {
		return resp, nil
	}
	orgID := *caller.OrganizationID
	resp.OrganizationID = &orgID

	licenses, err := s.licenses.GetByOrganizationID(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organization modules: %w", err)
	}
	for _, l := range licenses {
		if l.Status.IsActive() {
			resp.Modules = append(resp.Modules, l.ModuleKey)
		}
	}
	return resp, nil
}
