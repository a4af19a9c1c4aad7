package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by the recorder
const (
	MetricTransactionAdded   = "ledger.transaction.added"
	MetricTransactionRemoved = "ledger.transaction.removed"
	MetricValidationFailed   = "ledger.validation.failed"
	MetricPersistFailed      = "ledger.persist.failed"
	MetricLoadRecovered      = "ledger.load.recovered"
	MetricTransactions       = "ledger.transactions"
	MetricSaveDuration       = "ledger.save"
)

type PrometheusMetrics struct {
	transactionsAdded   *prometheus.CounterVec
	transactionsRemoved prometheus.Counter
	validationFailures  *prometheus.CounterVec
	persistFailures     *prometheus.CounterVec
	loadRecoveries      prometheus.Counter
	transactions        prometheus.Gauge
	saveDuration        prometheus.Histogram
}

// NewPrometheusMetrics registers the ledger collectors with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transactionsAdded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_added_total",
				Help: "Total number of transactions added to the ledger",
			},
			[]string{"type"},
		),
		transactionsRemoved: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_transactions_removed_total",
				Help: "Total number of transactions removed from the ledger",
			},
		),
		validationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_validation_failures_total",
				Help: "Total number of rejected drafts by failing field",
			},
			[]string{"field"},
		),
		persistFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_persist_failures_total",
				Help: "Total number of ledger writes that failed",
			},
			[]string{"operation"},
		),
		loadRecoveries: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_load_recoveries_total",
				Help: "Total number of loads that discarded unreadable stored data",
			},
		),
		transactions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_transactions",
				Help: "Current number of transactions in the ledger",
			},
		),
		saveDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_save_duration_milliseconds",
				Help:    "Ledger save duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricTransactionAdded:
		if txType := tags["type"]; txType != "" {
			m.transactionsAdded.WithLabelValues(txType).Inc()
		}
	case MetricTransactionRemoved:
		m.transactionsRemoved.Inc()
	case MetricValidationFailed:
		if field := tags["field"]; field != "" {
			m.validationFailures.WithLabelValues(field).Inc()
		}
	case MetricPersistFailed:
		if operation := tags["operation"]; operation != "" {
			m.persistFailures.WithLabelValues(operation).Inc()
		}
	case MetricLoadRecovered:
		m.loadRecoveries.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricSaveDuration:
		m.saveDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricTransactions:
		m.transactions.Set(value)
	}
}
