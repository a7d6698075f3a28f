package prometheus

import (
	"sync"
	"time"

	"wardrobe-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var initOnce sync.Once

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Item metrics
	ItemOperationsCounter prometheus.CounterVec

	// Outfit record metrics
	OutfitOperationsCounter prometheus.CounterVec

	// Inspiration metrics
	InspirationOperationsCounter prometheus.CounterVec

	// Batch import metrics
	BatchImportCounter prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration. Metrics
// register on the default registry, so repeated calls are a no-op.
func InitMetrics(config *config.Config) {
	initOnce.Do(func() { register(config.Metrics.Prefix) })
}

func register(prefix string) {
	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Database operation metrics
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// Item metrics
	ItemOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_item_operations_total",
			Help: "Total number of wardrobe item operations",
		},
		[]string{"operation"},
	)

	// Outfit record metrics
	OutfitOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_outfit_operations_total",
			Help: "Total number of outfit record operations",
		},
		[]string{"operation"},
	)

	// Inspiration metrics
	InspirationOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_inspiration_operations_total",
			Help: "Total number of inspiration operations",
		},
		[]string{"operation"},
	)

	// Batch import metrics
	BatchImportCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_batch_import_rows_total",
			Help: "Total number of rows inserted through batch import",
		},
		[]string{"resource"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordItemOperation increments the counter for wardrobe item operations
func RecordItemOperation(operation string) {
	ItemOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordOutfitOperation increments the counter for outfit record operations
func RecordOutfitOperation(operation string) {
	OutfitOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordInspirationOperation increments the counter for inspiration operations
func RecordInspirationOperation(operation string) {
	InspirationOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordBatchImport adds the number of rows committed by a batch import
func RecordBatchImport(resource string, rows int) {
	BatchImportCounter.WithLabelValues(resource).Add(float64(rows))
}
