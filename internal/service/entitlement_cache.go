package service

import (
	"sort"
	"sync"

	"saas-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// Entitlement identifies an (organization, module) pair
type Entitlement struct {
	OrganizationID uuid.UUID `json:"organization_id"`
	ModuleKey      string    `json:"module_key" example:"crm"`
}

// EntitlementCache is the in-process view of active licenses. It is rebuilt
// from the store when the console loads and patched on every toggle.
type EntitlementCache struct {
	mu     sync.RWMutex
	active map[Entitlement]struct{}
}

// NewEntitlementCache creates an empty cache
func NewEntitlementCache() *EntitlementCache {
	return &EntitlementCache{active: make(map[Entitlement]struct{})}
}

// Rebuild replaces the cache contents with the active rows of licenses
func (c *EntitlementCache) Rebuild(licenses []models.OrgModuleLicense) {
	active := make(map[Entitlement]struct{}, len(licenses))
	for _, l := range licenses {
		if l.Status.IsActive() {
			active[Entitlement{OrganizationID: l.OrganizationID, ModuleKey: l.ModuleKey}] = struct{}{}
		}
	}

	c.mu.Lock()
	c.active = active
	c.mu.Unlock()
}

// Set marks a single pair active or inactive
func (c *EntitlementCache) Set(orgID uuid.UUID, moduleKey string, active bool) {
	key := Entitlement{OrganizationID: orgID, ModuleKey: moduleKey}

	c.mu.Lock()
	defer c.mu.Unlock()
	if active {
		c.active[key] = struct{}{}
	} else {
		delete(c.active, key)
	}
}

// IsActive reports whether the pair is active. Unknown pairs are inactive.
func (c *EntitlementCache) IsActive(orgID uuid.UUID, moduleKey string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.active[Entitlement{OrganizationID: orgID, ModuleKey: moduleKey}]
	return ok
}

// Snapshot returns the active pairs ordered by organization then module
func (c *EntitlementCache) Snapshot() []Entitlement {
	c.mu.RLock()
	out := make([]Entitlement, 0, len(c.active))
	for k := range c.active {
		out = append(out, k)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].OrganizationID != out[j].OrganizationID {
			return out[i].OrganizationID.String() < out[j].OrganizationID.String()
		}
		return out[i].ModuleKey < out[j].ModuleKey
	})
	return out
}

// Len returns the number of active pairs
func (c *EntitlementCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.active)
}
