package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	accountOperations    *prometheus.CounterVec
	deletionsBlocked     prometheus.Counter
	deletionBlockerCount prometheus.Histogram
	syncTotal            *prometheus.CounterVec
	summaryDuration      *prometheus.HistogramVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		accountOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_operations_total",
				Help: "Total number of account lifecycle operations",
			},
			[]string{"operation", "status"},
		),
		deletionsBlocked: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "account_deletions_blocked_total",
				Help: "Total number of deletions refused due to linked transfers",
			},
		),
		deletionBlockerCount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "account_deletion_blockers",
				Help:    "Number of linked transfers found per blocked deletion",
				Buckets: prometheus.LinearBuckets(1, 2, 10),
			},
		),
		syncTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_syncs_total",
				Help: "Total number of account sync attempts by source",
			},
			[]string{"source", "status"},
		),
		summaryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "account_summary_duration_milliseconds",
				Help:    "Summary computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"kind"},
		),
	}
}

func (m *PrometheusMetrics) RecordAccountOperation(operation, status string) {
	m.accountOperations.WithLabelValues(operation, status).Inc()
}

func (m *PrometheusMetrics) RecordDeletionBlocked(blockerCount int) {
	m.deletionsBlocked.Inc()
	m.deletionBlockerCount.Observe(float64(blockerCount))
}

func (m *PrometheusMetrics) RecordSync(source, status string) {
	m.syncTotal.WithLabelValues(source, status).Inc()
}

func (m *PrometheusMetrics) ObserveSummaryDuration(kind string, duration time.Duration) {
	m.summaryDuration.WithLabelValues(kind).Observe(float64(duration.Milliseconds()))
}
