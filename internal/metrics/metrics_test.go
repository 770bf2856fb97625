package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()

	m.ObserveRegistration("company_registered")
	m.ObserveRegistration("company_registered")
	m.ObserveRegistration("joined_existing_team")
	m.ObserveToggle("activate", "ok")
	m.IncInvites()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.registrations.WithLabelValues("company_registered")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.registrations.WithLabelValues("joined_existing_team")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.toggles.WithLabelValues("activate", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.invites))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/health", 200, time.Millisecond)
		m.ObserveRegistration("x")
		m.ObserveProvisioningPolls(3)
		m.ObserveToggle("a", "b")
		m.IncInvites()
	})
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveHTTP("GET", "/api/v1/team", 200, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "saas_portal_http_requests_total")
	assert.Contains(t, rec.Body.String(), `route="/api/v1/team"`)
}
