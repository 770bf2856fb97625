package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"saas-portal-backend/internal/config"
	"saas-portal-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:                "development",
		JWTSecret:                  "routes-test-secret",
		JWTTTLMinutes:              60,
		AllowedOrigins:             []string{"http://localhost:5173"},
		ReconcileInitialIntervalMS: 10,
		ReconcileMaxIntervalMS:     20,
		ReconcileMaxAttempts:       2,
		ReconcileTimeoutFallback:   config.FallbackNewCompany,
		RateLimitAuthRequests:      10,
		RateLimitAuthWindowSec:     60,
		RateLimitAuthBurst:         10,
	}
}

// Routes are registered without touching the database, so an unopened
// gorm handle is enough to check wiring and auth guards.
func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, err := SetupRoutes(&gorm.DB{Config: &gorm.Config{}}, testConfig(), metrics.New())
	require.NoError(t, err)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/me"},
		{http.MethodGet, "/api/v1/me/modules"},
		{http.MethodGet, "/api/v1/team"},
		{http.MethodPost, "/api/v1/team/invites"},
		{http.MethodGet, "/api/v1/admin/console"},
		{http.MethodPost, "/api/v1/admin/organizations/00000000-0000-0000-0000-000000000001/modules/crm/toggle"},
		{http.MethodPost, "/api/v1/auth/sign-out"},
	}
	for _, route := range protected {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(route.method, route.path, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}

	t.Run("unknown route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Endpoint not found")
	})

	t.Run("metrics endpoint", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("register rejects malformed body before any lookup", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSetupRoutesRejectsInvalidFallback(t *testing.T) {
	cfg := testConfig()
	cfg.ReconcileTimeoutFallback = "retry_forever"

	_, err := SetupRoutes(&gorm.DB{Config: &gorm.Config{}}, cfg, metrics.New())
	assert.Error(t, err)
}

func TestSetupRoutesRequiresSecret(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = ""

	_, err := SetupRoutes(&gorm.DB{Config: &gorm.Config{}}, cfg, metrics.New())
	assert.Error(t, err)
}
