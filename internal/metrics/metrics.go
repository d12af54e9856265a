// Package metrics exposes Prometheus instrumentation for the audit service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks project mutations, imports, exports and the current grade.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	Operations      *prometheus.CounterVec
	OperationErrors *prometheus.CounterVec
	OperationTime   *prometheus.HistogramVec
	ImportedRows    *prometheus.CounterVec
	ExportBytes     *prometheus.CounterVec
	CapItems        prometheus.Gauge
	Requirements    *prometheus.GaugeVec
}

// New creates a Metrics instance backed by its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hrpaudit_operations_total",
			Help: "Total number of project operations by name",
		}, []string{"op"}),
		OperationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hrpaudit_operation_errors_total",
			Help: "Total number of failed project operations by name",
		}, []string{"op"}),
		OperationTime: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hrpaudit_operation_duration_seconds",
			Help:    "Duration of project operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"op"}),
		ImportedRows: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hrpaudit_imported_records_total",
			Help: "Total number of imported master requirements and response rows",
		}, []string{"kind"}),
		ExportBytes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hrpaudit_export_bytes_total",
			Help: "Total bytes rendered by exporters",
		}, []string{"format"}),
		CapItems: factory.NewGauge(prometheus.GaugeOpts{
			Name: "hrpaudit_cap_items",
			Help: "Number of corrective action plan items in the active project",
		}),
		Requirements: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hrpaudit_requirements",
			Help: "Requirements of the active project by compliance verdict",
		}, []string{"complies"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveOperation records one operation and its duration.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveOperation(op string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(op).Inc()
	m.OperationTime.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		m.OperationErrors.WithLabelValues(op).Inc()
	}
}

// AddImported records n imported records of the given kind.
func (m *Metrics) AddImported(kind string, n int) {
	if m == nil {
		return
	}
	m.ImportedRows.WithLabelValues(kind).Add(float64(n))
}

// AddExportBytes records the size of a rendered export.
func (m *Metrics) AddExportBytes(format string, n int) {
	if m == nil {
		return
	}
	m.ExportBytes.WithLabelValues(format).Add(float64(n))
}

// SetProjectState publishes the CAP size and verdict tally of the active project.
func (m *Metrics) SetProjectState(capItems int, byVerdict map[string]int) {
	if m == nil {
		return
	}
	m.CapItems.Set(float64(capItems))
	m.Requirements.Reset()
	for verdict, n := range byVerdict {
		m.Requirements.WithLabelValues(verdict).Set(float64(n))
	}
}
