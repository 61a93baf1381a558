package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ship_registry"

// Build outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics holds the collectors of the application on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry
	builds   *prometheus.CounterVec
	duration prometheus.Histogram
	ships    prometheus.Gauge
	mods     prometheus.Gauge
	issues   prometheus.Gauge
}

// New creates the collectors and registers them, along with the Go runtime
// and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "builds_total",
			Help:      "Collection builds by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Time spent loading a snapshot and building its collection.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		ships: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ships",
			Help:      "Ships in the current collection.",
		}),
		mods: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mods",
			Help:      "Stage records in the current collection.",
		}),
		issues: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "skipped_records",
			Help:      "Records skipped by the last successful build.",
		}),
	}

	m.registry.MustRegister(
		m.builds, m.duration, m.ships, m.mods, m.issues,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveBuild records one build attempt.
func (m *Metrics) ObserveBuild(outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.builds.WithLabelValues(outcome).Inc()
	m.duration.Observe(took.Seconds())
}

// SetCollection records the size of the collection being served.
func (m *Metrics) SetCollection(ships, mods, issues int) {
	if m == nil {
		return
	}
	m.ships.Set(float64(ships))
	m.mods.Set(float64(mods))
	m.issues.Set(float64(issues))
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
