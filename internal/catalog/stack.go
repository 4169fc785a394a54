package catalog

import (
	"fmt"

	"github.com/angelmondragon/groupdrive-backend/pkg/config"
	"github.com/angelmondragon/groupdrive-backend/pkg/db"
	"github.com/angelmondragon/groupdrive-backend/pkg/logger"
	"github.com/angelmondragon/groupdrive-backend/pkg/metrics"
	redisclient "github.com/angelmondragon/groupdrive-backend/pkg/redis"
)

// StackParams configures NewStack. Redis may be nil, which disables caching.
type StackParams struct {
	DB       *db.Client
	Redis    *redisclient.Client
	Config   config.CatalogConfig
	UseCache bool
	Logger   *logger.Logger
	Metrics  *metrics.CatalogMetrics
}

// Stack is the assembled catalog: the store behind a breaker and an optional
// cache, resolved against the static table, plus the seeder that fills it.
type Stack struct {
	Resolver *Resolver
	Seeder   *Seeder
	Cache    *CachedSource
}

func NewStack(p StackParams) (*Stack, error) {
	if p.DB == nil {
		return nil, fmt.Errorf("database client required")
	}
	if p.Logger == nil {
		p.Logger = logger.Nop()
	}

	store, err := NewStore(p.DB)
	if err != nil {
		return nil, err
	}
	guarded, err := NewBreakerSource(store, BreakerConfig{
		Timeout:      p.Config.BreakerTimeout,
		FailureRatio: p.Config.BreakerFailureRatio,
		MinRequests:  p.Config.BreakerMinRequests,
	}, p.Logger, p.Metrics)
	if err != nil {
		return nil, err
	}

	static := NewStaticSource()
	stack := &Stack{}
	var primary Source = guarded

	if p.UseCache && p.Redis != nil {
		stack.Cache, err = NewCachedSource(CachedSourceParams{
			Next:    guarded,
			Cache:   p.Redis,
			TTL:     p.Config.CacheTTL,
			Logger:  p.Logger,
			Metrics: p.Metrics,
		})
		if err != nil {
			return nil, err
		}
		primary = stack.Cache
	}

	stack.Resolver, err = NewResolver(ResolverParams{
		Primary:   primary,
		Secondary: static,
		Logger:    p.Logger,
		Metrics:   p.Metrics,
	})
	if err != nil {
		return nil, err
	}

	if stack.Cache != nil {
		stack.Seeder, err = NewSeeder(static, store, stack.Cache, p.Logger)
	} else {
		stack.Seeder, err = NewSeeder(static, store, nil, p.Logger)
	}
	if err != nil {
		return nil, err
	}
	return stack, nil
}
