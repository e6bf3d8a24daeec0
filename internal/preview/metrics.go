package preview

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/inputkit/internal/config"
)

// MetricsConfig configures the preview server metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "inputkit").
	Namespace string

	// Buckets are the histogram buckets for render duration.
	Buckets []float64

	// Registry receives the collectors.
	Registry prometheus.Registerer
}

// MetricsOption configures Metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithBuckets sets the render duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// metricsOptions maps the configured namespace and buckets onto options.
func metricsOptions(cfg config.MetricsConfig, registry prometheus.Registerer) []MetricsOption {
	opts := []MetricsOption{WithRegistry(registry)}
	if cfg.Namespace != "" {
		opts = append(opts, WithNamespace(cfg.Namespace))
	}
	if len(cfg.Buckets) > 0 {
		opts = append(opts, WithBuckets(cfg.Buckets))
	}
	return opts
}

// Render error reasons.
const (
	ReasonUnknownKind  = "unknown_kind"
	ReasonUnknownTheme = "unknown_theme"
	ReasonBadAttribute = "bad_attribute"
)

// Metrics holds the preview server collectors.
type Metrics struct {
	renders  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec
	reloads  *prometheus.CounterVec
}

// NewMetrics registers the preview collectors.
//
// Metrics collected:
//   - inputkit_renders_total: elements rendered, by kind
//   - inputkit_render_duration_seconds: render latency, by kind
//   - inputkit_render_errors_total: rejected render requests, by reason
//   - inputkit_config_reloads_total: config reloads, by status
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := MetricsConfig{
		Namespace: "inputkit",
		Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "renders_total",
			Help:      "Total number of elements rendered",
		}, []string{"kind"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "render_duration_seconds",
			Help:      "Element render duration in seconds",
			Buckets:   config.Buckets,
		}, []string{"kind"}),

		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "render_errors_total",
			Help:      "Total number of rejected render requests",
		}, []string{"reason"}),

		reloads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "config_reloads_total",
			Help:      "Total number of configuration reloads",
		}, []string{"status"}),
	}
}

// ObserveRender records one render of kind.
func (m *Metrics) ObserveRender(kind string, d time.Duration) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(kind).Inc()
	m.duration.WithLabelValues(kind).Observe(d.Seconds())
}

// RenderError records a rejected render request.
func (m *Metrics) RenderError(reason string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(reason).Inc()
}

// Reload records a config reload attempt.
func (m *Metrics) Reload(err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.reloads.WithLabelValues(status).Inc()
}
