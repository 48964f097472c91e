package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service collectors on a private registry.
type Metrics struct {
	registry    *prometheus.Registry
	validations *prometheus.CounterVec
	violations  *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	sanitized   prometheus.Counter
}

// NewMetrics registers the collectors, plus Go runtime and process
// collectors, on a new registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "schemakit",
			Name:      "validations_total",
			Help:      "Validation requests by schema and outcome.",
		}, []string{"schema", "outcome"}),
		violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "schemakit",
			Name:      "violations_total",
			Help:      "Recorded violations by schema and kind.",
		}, []string{"schema", "kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "schemakit",
			Name:      "validation_duration_seconds",
			Help:      "Time spent evaluating a schema.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8),
		}, []string{"schema"}),
		sanitized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "schemakit",
			Name:      "sanitize_total",
			Help:      "Sanitize requests served.",
		}),
	}
	m.registry.MustRegister(
		m.validations, m.violations, m.duration, m.sanitized,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) observeValidation(schema string, valid bool, kinds []string, took time.Duration) {
	if m == nil {
		return
	}
	outcome := "invalid"
	if valid {
		outcome = "valid"
	}
	m.validations.WithLabelValues(schema, outcome).Inc()
	m.duration.WithLabelValues(schema).Observe(took.Seconds())
	for _, k := range kinds {
		m.violations.WithLabelValues(schema, k).Inc()
	}
}

func (m *Metrics) observeSanitize() {
	if m != nil {
		m.sanitized.Inc()
	}
}
