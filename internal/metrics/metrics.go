// Package metrics provides Prometheus metrics for the entity store
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the entity store
type Metrics struct {
	// gRPC request metrics
	GrpcRequestsTotal    *prometheus.CounterVec
	GrpcRequestDuration  *prometheus.HistogramVec
	GrpcRequestsInFlight prometheus.Gauge

	// Collection metrics
	EntitiesAddedTotal        *prometheus.CounterVec
	EntitiesDeduplicatedTotal *prometheus.CounterVec
	EntitiesRejectedTotal     *prometheus.CounterVec
	EntitiesStored            *prometheus.GaugeVec
	PublishRequestsTotal      *prometheus.CounterVec
	PublishDuration           prometheus.Histogram
	QueryRequestsTotal        *prometheus.CounterVec
	SnapshotsPublishedTotal   prometheus.Counter

	// Server metrics
	ServerUptimeSeconds prometheus.GaugeFunc
	ServerStartTime     time.Time
}

// NewMetrics creates all metrics and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	m := &Metrics{
		ServerStartTime: time.Now(),
	}

	// gRPC request metrics
	m.GrpcRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trakhound_grpc_requests_total",
			Help: "Total number of gRPC requests",
		},
		[]string{"method", "status"},
	)

	m.GrpcRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trakhound_grpc_request_duration_seconds",
			Help:    "Duration of gRPC requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	m.GrpcRequestsInFlight = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "trakhound_grpc_requests_in_flight",
			Help: "Number of gRPC requests currently being processed",
		},
	)

	// Collection metrics
	m.EntitiesAddedTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trakhound_entities_added_total",
			Help: "Total number of entities that changed the collection",
		},
		[]string{"category", "class"},
	)

	m.EntitiesDeduplicatedTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trakhound_entities_deduplicated_total",
			Help: "Total number of published entities dropped as unchanged",
		},
		[]string{"category", "class"},
	)

	m.EntitiesRejectedTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trakhound_entities_rejected_total",
			Help: "Total number of published entities refused by a stored entity of higher priority",
		},
		[]string{"category", "class"},
	)

	m.EntitiesStored = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "trakhound_entities_stored",
			Help: "Number of entities currently stored, by kind",
		},
		[]string{"kind"},
	)

	m.PublishRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trakhound_publish_requests_total",
			Help: "Total number of publish requests",
		},
		[]string{"status"},
	)

	m.PublishDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trakhound_publish_duration_seconds",
			Help:    "Duration of publish requests in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
	)

	m.QueryRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trakhound_query_requests_total",
			Help: "Total number of read requests, by operation",
		},
		[]string{"operation"},
	)

	m.SnapshotsPublishedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "trakhound_snapshots_published_total",
			Help: "Total number of read snapshots published",
		},
	)

	// Server metrics
	m.ServerUptimeSeconds = factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "trakhound_server_uptime_seconds",
			Help: "Server uptime in seconds",
		},
		func() float64 { return time.Since(m.ServerStartTime).Seconds() },
	)

	return m
}

// RecordGrpcRequest records a gRPC request with its status
func (m *Metrics) RecordGrpcRequest(method string, status string, duration time.Duration) {
	m.GrpcRequestsTotal.WithLabelValues(method, status).Inc()
	m.GrpcRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordEntities records how many published entities of one class were
// stored, dropped as duplicates, or refused by the stored entity
func (m *Metrics) RecordEntities(category, class string, added, deduplicated, rejected int) {
	if added > 0 {
		m.EntitiesAddedTotal.WithLabelValues(category, class).Add(float64(added))
	}
	if deduplicated > 0 {
		m.EntitiesDeduplicatedTotal.WithLabelValues(category, class).Add(float64(deduplicated))
	}
	if rejected > 0 {
		m.EntitiesRejectedTotal.WithLabelValues(category, class).Add(float64(rejected))
	}
}

// RecordPublish records a publish request
func (m *Metrics) RecordPublish(status string, duration time.Duration) {
	m.PublishRequestsTotal.WithLabelValues(status).Inc()
	m.PublishDuration.Observe(duration.Seconds())
}

func (m *Metrics) RecordQuery(operation string) {
	m.QueryRequestsTotal.WithLabelValues(operation).Inc()
}

func (m *Metrics) RecordSnapshot() {
	m.SnapshotsPublishedTotal.Inc()
}

// UpdateEntityCounts replaces the stored-entity gauge with counts keyed by kind name
func (m *Metrics) UpdateEntityCounts(counts map[string]int) {
	m.EntitiesStored.Reset()
	for kind, n := range counts {
		m.EntitiesStored.WithLabelValues(kind).Set(float64(n))
	}
}
