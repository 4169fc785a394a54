package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/groupdrive-backend/pkg/metrics"
)

func TestBreakerSourceTripsAndRecovers(t *testing.T) {
	ctx := context.Background()
	next := newFakeSource(map[string]BrandCatalog{"A": {}})
	next.setErr(errors.New("db down"))

	b, err := NewBreakerSource(next, BreakerConfig{
		Timeout:      50 * time.Millisecond,
		FailureRatio: 0.5,
		MinRequests:  3,
	}, nil, metrics.NewCatalogMetrics(prometheus.NewRegistry()))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, _, err := b.BrandCatalog(ctx, "A")
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, b.State())

	calls := next.callCount()
	_, err = b.Brands(ctx)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, calls, next.callCount(), "open breaker must not reach the store")

	next.setErr(nil)
	time.Sleep(80 * time.Millisecond)

	_, found, err := b.BrandCatalog(ctx, "A")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, gobreaker.StateClosed, b.State())
}

func TestBreakerSourcePassesThrough(t *testing.T) {
	ctx := context.Background()
	next := newFakeSource(map[string]BrandCatalog{"A": {"M": {}}})
	b, err := NewBreakerSource(next, BreakerConfig{Timeout: time.Second, FailureRatio: 0.5, MinRequests: 5}, nil, nil)
	require.NoError(t, err)

	brands, err := b.Brands(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, brands)

	_, found, err := b.BrandCatalog(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	_, err = NewBreakerSource(nil, BreakerConfig{}, nil, nil)
	assert.Error(t, err)
}

func TestResolverFallsBackWhileBreakerOpen(t *testing.T) {
	ctx := context.Background()
	next := newFakeSource(map[string]BrandCatalog{"Tata": {}})
	next.setErr(errors.New("db down"))
	b, err := NewBreakerSource(next, BreakerConfig{Timeout: time.Minute, FailureRatio: 0.5, MinRequests: 1}, nil, nil)
	require.NoError(t, err)

	r := newResolver(t, b)
	assert.Contains(t, r.GetBrandCatalog(ctx, "Tata"), "Nexon")
	assert.Equal(t, gobreaker.StateOpen, b.State())
	assert.Contains(t, r.GetBrandCatalog(ctx, "Tata"), "Nexon")
}
