package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Catalog lookup sources.
const (
	SourceStore  = "store"
	SourceStatic = "static"
	SourceNone   = "none"
)

// Fallback reasons.
const (
	FallbackMissing    = "missing"
	FallbackStoreError = "store_error"
)

// CatalogMetrics tracks how brand lookups are resolved.
type CatalogMetrics struct {
	lookups      *prometheus.CounterVec
	fallbacks    *prometheus.CounterVec
	cache        *prometheus.CounterVec
	breakerState prometheus.Gauge
}

// NewCatalogMetrics registers the catalog metrics on the provided registerer.
func NewCatalogMetrics(reg prometheus.Registerer) *CatalogMetrics {
	if reg == nil {
		return &CatalogMetrics{}
	}
	lookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_lookups_total",
		Help: "Brand catalog lookups by the source that answered.",
	}, []string{"source"})
	fallbacks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_fallbacks_total",
		Help: "Lookups served by the static table instead of the store.",
	}, []string{"reason"})
	cache := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_cache_requests_total",
		Help: "Catalog cache reads by result.",
	}, []string{"result"})
	breaker := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_store_breaker_state",
		Help: "Catalog store circuit breaker state (0 closed, 1 half-open, 2 open).",
	})
	reg.MustRegister(lookups, fallbacks, cache, breaker)
	return &CatalogMetrics{
		lookups:      lookups,
		fallbacks:    fallbacks,
		cache:        cache,
		breakerState: breaker,
	}
}

// IncLookup counts a lookup answered by source.
func (c *CatalogMetrics) IncLookup(source string) {
	if c == nil || c.lookups == nil {
		return
	}
	c.lookups.WithLabelValues(normalizeLabel(source)).Inc()
}

// IncFallback counts a fall back to the static table.
func (c *CatalogMetrics) IncFallback(reason string) {
	if c == nil || c.fallbacks == nil {
		return
	}
	c.fallbacks.WithLabelValues(normalizeLabel(reason)).Inc()
}

// IncCache counts a cache hit or miss.
func (c *CatalogMetrics) IncCache(hit bool) {
	if c == nil || c.cache == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	c.cache.WithLabelValues(result).Inc()
}

// SetBreakerState records the breaker state as a number.
func (c *CatalogMetrics) SetBreakerState(state int) {
	if c == nil || c.breakerState == nil {
		return
	}
	c.breakerState.Set(float64(state))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
