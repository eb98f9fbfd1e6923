package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Network Metrics
	NetworkComponentsTotal  *prometheus.GaugeVec
	NetworkConnectionsTotal prometheus.Gauge
	NetworkMutationsTotal   *prometheus.CounterVec

	// Analysis Metrics
	AnalysisRunsTotal      *prometheus.CounterVec
	AnalysisStepDuration   *prometheus.HistogramVec
	AnalysisMaxOrder       prometheus.Gauge
	AnalysisBlocksTotal    *prometheus.GaugeVec
	AnalysisJointsTotal    prometheus.Gauge
	AnalysisSnapshotsTotal prometheus.Counter

	// Validation Metrics
	ValidationRunsTotal     *prometheus.CounterVec
	ValidationFindingsTotal *prometheus.CounterVec
	ValidationDuration      prometheus.Histogram

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initNetworkMetrics()
	r.initAnalysisMetrics()
	r.initValidationMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
