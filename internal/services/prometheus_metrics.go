package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	salesSaves                *prometheus.CounterVec
	salesGross                prometheus.Histogram
	salesSaveDuration         prometheus.Histogram
	eventsCreatedTotal        prometheus.Counter
	staffAssignmentsTotal     *prometheus.CounterVec
	reportsSavedTotal         prometheus.Counter
	importRowsTotal           *prometheus.CounterVec
	importDuration            prometheus.Histogram
	authenticationEventsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return newPrometheusMetrics(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWith registers the collectors on the given registerer
func NewPrometheusMetricsWith(registerer prometheus.Registerer) MetricsRecorderInterface {
	return newPrometheusMetrics(registerer)
}

func newPrometheusMetrics(registerer prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		salesSaves: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_save_attempts_total",
				Help: "Sales save attempts by outcome",
			},
			[]string{"status"},
		),
		salesGross: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sales_gross_total_dollars",
				Help:    "Gross takings per saved sales record",
				Buckets: prometheus.ExponentialBuckets(50, 2, 10),
			},
		),
		salesSaveDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sales_save_duration_milliseconds",
				Help:    "Time to run the save gate and append a sales record",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		eventsCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "events_created_total",
				Help: "Total number of events registered",
			},
		),
		staffAssignmentsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "staff_assignments_total",
				Help: "Staff assignments, split by whether the shift ran long",
			},
			[]string{"long_shift"},
		),
		reportsSavedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "event_reports_saved_total",
				Help: "Total number of daily reports saved",
			},
		),
		importRowsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sheet_import_rows_total",
				Help: "Spreadsheet rows processed by import",
			},
			[]string{"sheet", "status"},
		),
		importDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sheet_import_duration_seconds",
				Help:    "Spreadsheet import duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "sales_saved":
		m.salesSaves.WithLabelValues("saved").Inc()
	case "sales_blocked":
		m.salesSaves.WithLabelValues("blocked").Inc()
	case "sales_persist_failed":
		m.salesSaves.WithLabelValues("failed").Inc()
	case "event_created":
		m.eventsCreatedTotal.Inc()
	case "staff_assigned":
		m.staffAssignmentsTotal.WithLabelValues(tags["long_shift"]).Inc()
	case "report_saved":
		m.reportsSavedTotal.Inc()
	case "import_row":
		if status := tags["status"]; status != "" {
			m.importRowsTotal.WithLabelValues(tags["sheet"], status).Inc()
		}
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "sales_save":
		m.salesSaveDuration.Observe(float64(duration.Milliseconds()))
	case "sheet_import":
		m.importDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "sales_gross":
		m.salesGross.Observe(value)
	}
}
