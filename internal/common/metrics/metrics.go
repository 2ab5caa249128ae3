// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BatchesProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "intake_batches_processed_total",
			Help: "Total number of intake batches processed",
		},
	)

	RecordsNormalized = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "intake_records_normalized_total",
			Help: "Total number of intake records normalized",
		},
	)

	RecordsFlagged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_records_flagged_total",
			Help: "Total number of flagged records by severity",
		},
		[]string{"severity"},
	)

	ExportFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_export_failures_total",
			Help: "Total number of failed exports by target",
		},
		[]string{"target"},
	)

	BatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "intake_batch_duration_seconds",
			Help: "Duration of batch processing in seconds",
		},
	)
)
