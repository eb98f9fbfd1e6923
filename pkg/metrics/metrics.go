package metrics

import (
	"time"
)

// RecordNetworkMutation records a network mutation with its outcome
func (r *Registry) RecordNetworkMutation(operation, status string) {
	r.NetworkMutationsTotal.WithLabelValues(operation, status).Inc()
}

// UpdateNetworkSize updates the component and connection gauges
func (r *Registry) UpdateNetworkSize(componentsByType map[string]int, connections int) {
	for typ, count := range componentsByType {
		r.NetworkComponentsTotal.WithLabelValues(typ).Set(float64(count))
	}
	r.NetworkConnectionsTotal.Set(float64(connections))
}

// RecordAnalysisStep records one analysis step with its duration
func (r *Registry) RecordAnalysisStep(step, status string, duration time.Duration) {
	r.AnalysisRunsTotal.WithLabelValues(step, status).Inc()
	r.AnalysisStepDuration.WithLabelValues(step).Observe(duration.Seconds())
}

// UpdateAnalysisResults updates gauges after a completed analysis run
func (r *Registry) UpdateAnalysisResults(maxOrder int, blocksByType map[string]int, joints int) {
	r.AnalysisMaxOrder.Set(float64(maxOrder))
	for typ, count := range blocksByType {
		r.AnalysisBlocksTotal.WithLabelValues(typ).Set(float64(count))
	}
	r.AnalysisJointsTotal.Set(float64(joints))
}

// RecordSnapshot records the publication of a result snapshot
func (r *Registry) RecordSnapshot() {
	r.AnalysisSnapshotsTotal.Inc()
}

// RecordValidation records a validation run and its findings
func (r *Registry) RecordValidation(status string, duration time.Duration, findingsByCheck map[string]map[string]int) {
	r.ValidationRunsTotal.WithLabelValues(status).Inc()
	r.ValidationDuration.Observe(duration.Seconds())
	for check, bySeverity := range findingsByCheck {
		for severity, count := range bySeverity {
			r.ValidationFindingsTotal.WithLabelValues(check, severity).Add(float64(count))
		}
	}
}
