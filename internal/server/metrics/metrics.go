// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type Metrics struct {
	Operations        *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	DBQueryDuration   *prometheus.HistogramVec
	PhotoUploads      *prometheus.CounterVec
}

// NewMetrics registers all collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Operations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "staffql_operations_total",
			Help: "GraphQL operations by name and outcome.",
		}, []string{"operation", "outcome"}),
		OperationDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "staffql_operation_duration_seconds",
			Help:    "Time spent serving a GraphQL operation.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "staffql_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}),
		PhotoUploads: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "staffql_photo_uploads_total",
			Help: "Employee photo uploads by outcome.",
		}, []string{"outcome"}),
	}

	m.PhotoUploads.WithLabelValues(OutcomeSuccess)
	m.PhotoUploads.WithLabelValues(OutcomeFailure)

	return m
}

// ObserveQuery records the time since start under queryType. A nil
// receiver is a no-op so repositories work without metrics.
func (m *Metrics) ObserveQuery(queryType string, start time.Time) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
}

// ObserveOperation counts one finished operation and its duration.
func (m *Metrics) ObserveOperation(operation string, success bool, start time.Time) {
	if m == nil {
		return
	}
	outcome := OutcomeFailure
	if success {
		outcome = OutcomeSuccess
	}
	m.Operations.WithLabelValues(operation, outcome).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveUpload(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.PhotoUploads.WithLabelValues(OutcomeFailure).Inc()
		return
	}
	m.PhotoUploads.WithLabelValues(OutcomeSuccess).Inc()
}
