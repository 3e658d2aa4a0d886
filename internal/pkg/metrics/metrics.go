// Package metrics exposes the Prometheus instruments of the service.
//
// HTTP metrics:
//   - wildlife_http_requests_total{method, route, status}
//   - wildlife_http_request_duration_seconds{method, route}
//   - wildlife_http_requests_in_flight
//
// Import metrics:
//   - wildlife_import_rows_total{outcome} with outcome imported, skipped or failed
//   - wildlife_import_runs_total{result} with result success or failure
//
// Export metrics:
//   - wildlife_exports_total{entity, format}
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Import row outcomes
const (
	RowImported = "imported"
	RowSkipped  = "skipped"
	RowFailed   = "failed"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wildlife_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wildlife_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wildlife_http_requests_in_flight",
			Help: "Number of HTTP requests being served",
		},
	)

	ImportRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wildlife_import_rows_total",
			Help: "Spreadsheet rows processed by species imports",
		},
		[]string{"outcome"},
	)

	ImportRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wildlife_import_runs_total",
			Help: "Species imports by final result",
		},
		[]string{"result"},
	)

	Exports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wildlife_exports_total",
			Help: "File exports served",
		},
		[]string{"entity", "format"},
	)
)

// RecordHTTPRequest records a served request
func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackInFlight increments or decrements the in-flight gauge
func TrackInFlight(inc bool) {
	if inc {
		HTTPRequestsInFlight.Inc()
	} else {
		HTTPRequestsInFlight.Dec()
	}
}

// RecordImport records the row outcomes of one import run
func RecordImport(imported, skipped, failed int, err error) {
	ImportRows.WithLabelValues(RowImported).Add(float64(imported))
	ImportRows.WithLabelValues(RowSkipped).Add(float64(skipped))
	ImportRows.WithLabelValues(RowFailed).Add(float64(failed))
	if err != nil {
		ImportRuns.WithLabelValues("failure").Inc()
		return
	}
	ImportRuns.WithLabelValues("success").Inc()
}

// RecordExport records a served export
func RecordExport(entity, format string) {
	Exports.WithLabelValues(entity, format).Inc()
}
