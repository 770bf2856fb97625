package service

import (
	"sync"
	"testing"

	"saas-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEntitlementCache(t *testing.T) {
	acme := uuid.New()
	globex := uuid.New()

	t.Run("unknown pairs are inactive", func(t *testing.T) {
		c := NewEntitlementCache()
		assert.False(t, c.IsActive(acme, "crm"))
		assert.Empty(t, c.Snapshot())
	})

	t.Run("rebuild keeps only active rows", func(t *testing.T) {
		c := NewEntitlementCache()
		c.Set(globex, "hr", true)
		c.Rebuild([]models.OrgModuleLicense{
			{OrganizationID: acme, ModuleKey: "crm", Status: models.LicenseStatusActive},
			{OrganizationID: acme, ModuleKey: "billing", Status: "cancelled"},
		})

		assert.True(t, c.IsActive(acme, "crm"))
		assert.False(t, c.IsActive(acme, "billing"))
		assert.False(t, c.IsActive(globex, "hr"))
		assert.Equal(t, 1, c.Len())
	})

	t.Run("set toggles a pair", func(t *testing.T) {
		c := NewEntitlementCache()
		c.Set(acme, "crm", true)
		c.Set(acme, "crm", true)
		assert.Equal(t, 1, c.Len())
		c.Set(acme, "crm", false)
		assert.False(t, c.IsActive(acme, "crm"))
		c.Set(acme, "inventory", false)
		assert.Zero(t, c.Len())
	})

	t.Run("snapshot is ordered", func(t *testing.T) {
		c := NewEntitlementCache()
		c.Set(acme, "inventory", true)
		c.Set(acme, "billing", true)
		c.Set(acme, "crm", true)

		snap := c.Snapshot()
		assert.Equal(t, []string{"billing", "crm", "inventory"}, []string{snap[0].ModuleKey, snap[1].ModuleKey, snap[2].ModuleKey})
	})

	t.Run("concurrent access", func(t *testing.T) {
		c := NewEntitlementCache()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(2)
			go func(i int) {
				defer wg.Done()
				c.Set(acme, "crm", i%2 == 0)
			}(i)
			go func() {
				defer wg.Done()
				_ = c.IsActive(acme, "crm")
				_ = c.Snapshot()
			}()
		}
		wg.Wait()
		assert.LessOrEqual(t, c.Len(), 1)
	})
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "Acme", sanitizeText("  Acme "))
	assert.Equal(t, "Smith & Co", sanitizeText("<i>Smith &amp; Co</i>"))
	assert.Equal(t, "", sanitizeText("<script>alert(1)</script>"))
}
