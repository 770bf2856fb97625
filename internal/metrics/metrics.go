package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "saas_portal"

// Metrics holds the service collectors and the registry they are exposed from.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	registrations *prometheus.CounterVec
	provisionPoll prometheus.Histogram
	toggles       *prometheus.CounterVec
	invites       prometheus.Counter
}

// New creates the collectors and registers them on a fresh registry
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Registration attempts by outcome.",
		}, []string{"outcome"}),
		provisionPoll: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provisioning_poll_attempts",
			Help:      "Profile polls needed before provisioning was observed.",
			Buckets:   []float64{1, 2, 3, 4, 6, 8, 12, 16},
		}),
		toggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entitlement_toggles_total",
			Help:      "Entitlement toggles by action and result.",
		}, []string{"action", "result"}),
		invites: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invites_created_total",
			Help:      "Organization invites created.",
		}),
	}

	registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.registrations,
		m.provisionPoll,
		m.toggles,
		m.invites,
	)
	return m
}

// Registry returns the prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// ObserveHTTP records one served request
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveRegistration records a registration outcome
func (m *Metrics) ObserveRegistration(outcome string) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(outcome).Inc()
}

// ObserveProvisioningPolls records how many polls a registration needed
func (m *Metrics) ObserveProvisioningPolls(attempts int) {
	if m == nil {
		return
	}
	m.provisionPoll.Observe(float64(attempts))
}

// ObserveToggle records an entitlement toggle
func (m *Metrics) ObserveToggle(action, result string) {
	if m == nil {
		return
	}
	m.toggles.WithLabelValues(action, result).Inc()
}

// IncInvites records a created invite
func (m *Metrics) IncInvites() {
	if m == nil {
		return
	}
	m.invites.Inc()
}
