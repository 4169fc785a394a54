package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/groupdrive-backend/pkg/logger"
	"github.com/angelmondragon/groupdrive-backend/pkg/metrics"
	"github.com/sony/gobreaker/v2"
)

// BreakerConfig tunes the circuit breaker in front of the catalog store.
type BreakerConfig struct {
	Name         string
	Timeout      time.Duration
	FailureRatio float64
	MinRequests  uint32
}

// BreakerSource stops calling a failing source until it recovers. While open
// every call fails fast with gobreaker.ErrOpenState, which the resolver
// treats like any other store error.
type BreakerSource struct {
	next    Source
	breaker *gobreaker.CircuitBreaker[any]
}

type brandResult struct {
	catalog BrandCatalog
	found   bool
}

// NewBreakerSource wraps next with a breaker.
func NewBreakerSource(next Source, cfg BreakerConfig, logg *logger.Logger, m *metrics.CatalogMetrics) (*BreakerSource, error) {
	if next == nil {
		return nil, fmt.Errorf("next source required")
	}
	if cfg.Name == "" {
		cfg.Name = "catalog-store"
	}
	if cfg.MinRequests == 0 {
		cfg.MinRequests = 1
	}
	if logg == nil {
		logg = logger.Nop()
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			ctx := logg.WithFields(context.Background(), map[string]any{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
			logg.Warn(ctx, "catalog store breaker state change")
			m.SetBreakerState(stateValue(to))
		},
	}
	m.SetBreakerState(stateValue(gobreaker.StateClosed))

	return &BreakerSource{next: next, breaker: gobreaker.NewCircuitBreaker[any](settings)}, nil
}

// Brands calls through the breaker.
func (b *BreakerSource) Brands(ctx context.Context) ([]string, error) {
	out, err := b.breaker.Execute(func() (any, error) {
		return b.next.Brands(ctx)
	})
	if err != nil {
		return nil, err
	}
	brands, _ := out.([]string)
	return brands, nil
}

// BrandCatalog calls through the breaker.
func (b *BreakerSource) BrandCatalog(ctx context.Context, brand string) (BrandCatalog, bool, error) {
	out, err := b.breaker.Execute(func() (any, error) {
		bc, found, err := b.next.BrandCatalog(ctx, brand)
		if err != nil {
			return nil, err
		}
		return brandResult{catalog: bc, found: found}, nil
	})
	if err != nil {
		return nil, false, err
	}
	res := out.(brandResult)
	return res.catalog, res.found, nil
}

// State exposes the breaker state for readiness reporting.
func (b *BreakerSource) State() gobreaker.State {
	return b.breaker.State()
}

func stateValue(state gobreaker.State) int {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
