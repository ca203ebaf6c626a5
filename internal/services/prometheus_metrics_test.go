package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gathered returns the sample values of each metric family, keyed by name
func gathered(t *testing.T, registry *prometheus.Registry) map[string][]float64 {
	families, err := registry.Gather()
	require.NoError(t, err)

	values := make(map[string][]float64, len(families))
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				values[family.GetName()] = append(values[family.GetName()], metric.GetCounter().GetValue())
			case metric.GetHistogram() != nil:
				values[family.GetName()] = append(values[family.GetName()], float64(metric.GetHistogram().GetSampleCount()))
			}
		}
	}
	return values
}

func TestPrometheusMetrics_Counters(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := newPrometheusMetrics(registry)

	m.IncrementCounter("sales_saved", nil)
	m.IncrementCounter("sales_saved", nil)
	m.IncrementCounter("sales_blocked", nil)
	m.IncrementCounter("event_created", map[string]string{"event_type": "Market"})
	m.IncrementCounter("staff_assigned", map[string]string{"long_shift": "true"})
	m.IncrementCounter("report_saved", nil)
	m.IncrementCounter("import_row", map[string]string{"sheet": "events", "status": "imported"})
	m.IncrementCounter("import_row", map[string]string{"sheet": "events"})
	m.IncrementCounter("authentication_event", map[string]string{"event_type": "login_success"})
	m.IncrementCounter("unknown_metric", nil)

	values := gathered(t, registry)

	assert.ElementsMatch(t, []float64{1, 2}, values["sales_save_attempts_total"])
	assert.Equal(t, []float64{1}, values["events_created_total"])
	assert.Equal(t, []float64{1}, values["staff_assignments_total"])
	assert.Equal(t, []float64{1}, values["event_reports_saved_total"])
	assert.Equal(t, []float64{1}, values["sheet_import_rows_total"])
	assert.Equal(t, []float64{1}, values["authentication_events_total"])
}

func TestPrometheusMetrics_Histograms(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := newPrometheusMetrics(registry)

	m.RecordProcessingTime("sales_save", 12*time.Millisecond)
	m.RecordProcessingTime("sheet_import", 2*time.Second)
	m.RecordProcessingTime("unknown", time.Second)
	m.RecordGauge("sales_gross", 1500, nil)

	values := gathered(t, registry)

	assert.Equal(t, []float64{1}, values["sales_save_duration_milliseconds"])
	assert.Equal(t, []float64{1}, values["sheet_import_duration_seconds"])
	assert.Equal(t, []float64{1}, values["sales_gross_total_dollars"])
}

func TestPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		newPrometheusMetrics(prometheus.NewRegistry())
		newPrometheusMetrics(prometheus.NewRegistry())
	})
}
