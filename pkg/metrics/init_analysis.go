package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.AnalysisRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "pilotwater_analysis_runs_total",
			Help: "Total number of analysis pipeline runs",
		},
		[]string{"step", "status"},
	)

	r.AnalysisStepDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pilotwater_analysis_step_duration_seconds",
			Help:    "Analysis step duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"step"},
	)

	r.AnalysisMaxOrder = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "pilotwater_analysis_max_order",
			Help: "Maximum hierarchy order computed by the last analysis run",
		},
	)

	r.AnalysisBlocksTotal = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pilotwater_analysis_blocks_total",
			Help: "Number of blocks detected by the last analysis run, by block type",
		},
		[]string{"type"},
	)

	r.AnalysisJointsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "pilotwater_analysis_joints_total",
			Help: "Number of joints created by the last analysis run",
		},
	)

	r.AnalysisSnapshotsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "pilotwater_analysis_snapshots_total",
			Help: "Total number of result snapshots published",
		},
	)
}
