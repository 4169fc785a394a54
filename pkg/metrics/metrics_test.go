package metrics

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogMetricsExportsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCatalogMetrics(reg)
	m.IncLookup(SourceStore)
	m.IncLookup(SourceStatic)
	m.IncLookup(SourceStatic)
	m.IncFallback(FallbackStoreError)
	m.IncCache(true)
	m.IncCache(false)
	m.SetBreakerState(2)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	got, err := fetchCounterValue(mfs, "catalog_lookups_total", "source", SourceStatic)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	got, err = fetchCounterValue(mfs, "catalog_fallbacks_total", "reason", FallbackStoreError)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = fetchCounterValue(mfs, "catalog_cache_requests_total", "result", "miss")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	mf := findMetricFamily(mfs, "catalog_store_breaker_state")
	require.NotNil(t, mf)
	assert.Equal(t, 2.0, mf.GetMetric()[0].GetGauge().GetValue())
}

func TestPaymentMetricsByTier(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPaymentMetrics(reg)
	m.ObserveFee(2000)
	m.ObserveFee(2000)
	m.ObserveFee(5000)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	got, err := fetchCounterValue(mfs, "joining_fees_charged_total", "fee", "2000")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	mf := findMetricFamily(mfs, "joining_fees_amount_total")
	require.NotNil(t, mf)
	assert.Equal(t, 9000.0, mf.GetMetric()[0].GetCounter().GetValue())
}

func TestHTTPMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)
	done := m.Start()
	done(http.MethodGet, "/api/groups/{id}", http.StatusOK)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	got, err := fetchCounterValue(mfs, "http_requests_total", "route", "/api/groups/{id}")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	sum, err := fetchHistogramCount(mfs, "http_request_duration_seconds", "method", http.MethodGet)
	require.NoError(t, err)
	assert.EqualValues(t, 1, sum)
}

func TestNilRegistererIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		NewCatalogMetrics(nil).IncLookup(SourceStore)
		NewPaymentMetrics(nil).ObserveFee(1000)
		NewHTTPMetrics(nil).Start()("GET", "/", 200)
		var c *CatalogMetrics
		c.SetBreakerState(1)
	})
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func fetchHistogramCount(mfs []*dto.MetricFamily, name, label, value string) (uint64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetHistogram().GetSampleCount(), nil
		}
	}
	return 0, fmt.Errorf("histogram %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
