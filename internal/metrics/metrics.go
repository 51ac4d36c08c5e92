// Package metrics exposes Prometheus instrumentation for the service.
//
// Collectors live on a private registry rather than the global default one,
// so every Server (and every test) gets an isolated set.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "calculator"

// Calculation outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeDomainError = "domain_error"
	OutcomeError       = "error"
)

// Metrics holds the registry and every collector the service records into.
type Metrics struct {
	registry *prometheus.Registry

	calculations    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates a registry with the Go/process collectors and the service's own.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Number of calculations performed, by operation and outcome.",
		}, []string{"operation", "outcome"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	registry.MustRegister(m.calculations, m.requestDuration)
	return m
}

// ObserveCalculation counts one calculation.
func (m *Metrics) ObserveCalculation(operation, outcome string) {
	m.calculations.WithLabelValues(operation, outcome).Inc()
}

// ObserveRequest records one HTTP request.
//
// route must be the route template, never the raw URL, to keep label
// cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
