package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initNetworkMetrics() {
	r.NetworkComponentsTotal = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pilotwater_network_components_total",
			Help: "Number of components in the network by type",
		},
		[]string{"type"},
	)

	r.NetworkConnectionsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "pilotwater_network_connections_total",
			Help: "Number of directed connections in the network",
		},
	)

	r.NetworkMutationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "pilotwater_network_mutations_total",
			Help: "Total number of network mutations",
		},
		[]string{"operation", "status"},
	)
}
