// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xgrowth_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "xgrowth_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Aggregation Metrics
	AggregationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "xgrowth_aggregation_duration_seconds",
			Help:    "Duration of pipeline aggregations, SQL and in-memory stages together",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"collection"},
	)

	AggregationPushedStages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xgrowth_aggregation_pushed_stages_total",
			Help: "Pipeline stages compiled to SQL instead of evaluated in memory",
		},
		[]string{"collection", "stage"},
	)

	// Event Metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xgrowth_events_published_total",
			Help: "Domain events published, by subject and result",
		},
		[]string{"subject", "result"},
	)

	EventsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xgrowth_events_consumed_total",
			Help: "Domain events handled by workers, by subject and result",
		},
		[]string{"subject", "result"},
	)

	NotificationsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "xgrowth_notifications_created_total",
			Help: "Notifications written for users",
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "xgrowth_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordAggregation records the duration of one pipeline execution
func RecordAggregation(collection string, duration time.Duration) {
	AggregationDuration.WithLabelValues(collection).Observe(duration.Seconds())
}

// RecordPushDown counts a stage executed by the database
func RecordPushDown(collection, stage string) {
	AggregationPushedStages.WithLabelValues(collection, stage).Inc()
}

// RecordEventPublished counts a publish attempt
func RecordEventPublished(subject string, err error) {
	EventsPublished.WithLabelValues(subject, result(err)).Inc()
}

// RecordEventConsumed counts a handled event
func RecordEventConsumed(subject string, err error) {
	EventsConsumed.WithLabelValues(subject, result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
