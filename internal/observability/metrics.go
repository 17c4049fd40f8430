package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus instruments for the exchange ledger.
// Instruments register against the default registry at construction, so
// NewMetrics must be called at most once per process.
type Metrics struct {
	// Engine
	OpsApplied   *prometheus.CounterVec
	OpsRejected  *prometheus.CounterVec
	OpDuration   *prometheus.HistogramVec
	CoreSequence prometheus.Gauge
	OpenOrders   prometheus.Gauge

	// Persistence
	EventsPersisted  prometheus.Counter
	PersistErrors    prometheus.Counter
	PersistBatchSize prometheus.Histogram
	PersistLagEvents prometheus.Gauge

	// Projection
	ProjectionApplied prometheus.Counter
	ProjectionDropped prometheus.Counter
	ProjectionErrors  prometheus.Counter

	// Snapshots
	SnapshotsTaken    prometheus.Counter
	SnapshotDuration  prometheus.Histogram
	ReplayedEvents    prometheus.Counter
	ReplayDuration    prometheus.Histogram
	IntegrityFailures prometheus.Counter

	// Feed
	FeedPublished     prometheus.Counter
	FeedPublishErrors prometheus.Counter

	// Query
	QueriesServed *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		OpsApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dex_ops_applied_total",
			Help: "Operations applied by the engine, by kind",
		}, []string{"kind"}),
		OpsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dex_ops_rejected_total",
			Help: "Operations rejected by the engine, by reason",
		}, []string{"reason"}),
		OpDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dex_op_duration_seconds",
			Help:    "Engine operation latency inside the critical section",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 15),
		}, []string{"kind"}),
		CoreSequence: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "dex_core_sequence",
			Help: "Next event sequence the engine will assign",
		}),
		OpenOrders: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "dex_open_orders",
			Help: "Number of open orders in the book",
		}),

		EventsPersisted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dex_events_persisted_total",
			Help: "Events durably written to the event log",
		}),
		PersistErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dex_persist_errors_total",
			Help: "Failed event log write attempts (before retry)",
		}),
		PersistBatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dex_persist_batch_size",
			Help:    "Events per persisted batch",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		PersistLagEvents: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "dex_persist_lag_events",
			Help: "Events buffered in the persistence channel",
		}),

		ProjectionApplied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dex_projection_applied_total",
			Help: "Events applied to read-side projections",
		}),
		ProjectionDropped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dex_projection_dropped_total",
			Help: "Events dropped because the projection channel was full",
		}),
		ProjectionErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dex_projection_errors_total",
			Help: "Projection upsert failures",
		}),

		SnapshotsTaken: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dex_snapshots_taken_total",
			Help: "State snapshots written",
		}),
		SnapshotDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dex_snapshot_duration_seconds",
			Help:    "Snapshot serialization and write latency",
			Buckets: prometheus.DefBuckets,
		}),
		ReplayedEvents: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dex_replayed_events_total",
			Help: "Events replayed from the log at startup",
		}),
		ReplayDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "dex_replay_duration_seconds",
			Help:    "Total startup replay latency",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		IntegrityFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dex_integrity_failures_total",
			Help: "State hash chain mismatches detected",
		}),

		FeedPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dex_feed_published_total",
			Help: "Events published to the NATS feed",
		}),
		FeedPublishErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dex_feed_publish_errors_total",
			Help: "Failed feed publish attempts",
		}),

		QueriesServed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dex_queries_served_total",
			Help: "Query service requests, by method",
		}, []string{"method"}),
		QueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dex_query_duration_seconds",
			Help:    "Query service latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
}
