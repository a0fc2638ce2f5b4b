// Package metrics provides the Prometheus collectors for the relationship subsystem.
// HTTP request metrics come from fiberprometheus; these cover what it cannot see:
//   - cascade_deleted_associations_total: Counter with entity label
//   - associations_created_total: Counter
//   - orphaned_associations_swept_total: Counter
//   - rate_limited_requests_total: Counter
//   - rate_limit_buckets: Gauge for tracked clients
//
// All collectors are registered with the Prometheus default registry
// during package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CascadeDeletedAssociations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cascade_deleted_associations_total",
			Help: "Associations removed because their medicamento or compuesto was deleted",
		},
		[]string{"entity"},
	)

	AssociationsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "associations_created_total",
			Help: "Compuestos added to medicamentos",
		},
	)

	OrphansSwept = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orphaned_associations_swept_total",
			Help: "Dangling associations removed by the background sweep",
		},
	)

	RateLimitedRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_limited_requests_total",
			Help: "Requests rejected with 429",
		},
	)

	RateLimitBuckets = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limit_buckets",
			Help: "Clients currently tracked by the rate limiter",
		},
	)
)

func init() {
	prometheus.MustRegister(CascadeDeletedAssociations)
	prometheus.MustRegister(AssociationsCreated)
	prometheus.MustRegister(OrphansSwept)
	prometheus.MustRegister(RateLimitedRequests)
	prometheus.MustRegister(RateLimitBuckets)
}
