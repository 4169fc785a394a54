package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/angelmondragon/groupdrive-backend/pkg/logger"
	"github.com/angelmondragon/groupdrive-backend/pkg/metrics"
	redisclient "github.com/angelmondragon/groupdrive-backend/pkg/redis"
)

const brandsCacheKey = "brands"

type cacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	DelPrefix(ctx context.Context, prefix string) (int, error)
	CatalogKey(parts ...string) string
	CatalogPrefix() string
}

type cachedBrand struct {
	Found  bool         `json:"found"`
	Models BrandCatalog `json:"models,omitempty"`
}

// CachedSource keeps Redis copies of another source's answers, including
// "brand not defined" answers. Redis failures degrade to direct reads.
type CachedSource struct {
	next    Source
	cache   cacheStore
	ttl     time.Duration
	logg    *logger.Logger
	metrics *metrics.CatalogMetrics
}

// CachedSourceParams configures NewCachedSource.
type CachedSourceParams struct {
	Next    Source
	Cache   cacheStore
	TTL     time.Duration
	Logger  *logger.Logger
	Metrics *metrics.CatalogMetrics
}

// NewCachedSource wraps p.Next with a Redis cache.
func NewCachedSource(p CachedSourceParams) (*CachedSource, error) {
	if p.Next == nil {
		return nil, fmt.Errorf("next source required")
	}
	if p.Cache == nil {
		return nil, fmt.Errorf("cache required")
	}
	if p.TTL <= 0 {
		return nil, fmt.Errorf("cache ttl must be positive")
	}
	if p.Logger == nil {
		p.Logger = logger.Nop()
	}
	return &CachedSource{next: p.Next, cache: p.Cache, ttl: p.TTL, logg: p.Logger, metrics: p.Metrics}, nil
}

// Brands serves the cached brand list or refreshes it.
func (c *CachedSource) Brands(ctx context.Context) ([]string, error) {
	key := c.cache.CatalogKey(brandsCacheKey)
	var brands []string
	if c.read(ctx, key, &brands) {
		return brands, nil
	}

	brands, err := c.next.Brands(ctx)
	if err != nil {
		return nil, err
	}
	c.write(ctx, key, brands)
	return brands, nil
}

// BrandCatalog serves the cached brand subtree or refreshes it.
func (c *CachedSource) BrandCatalog(ctx context.Context, brand string) (BrandCatalog, bool, error) {
	key := c.cache.CatalogKey("brand", brand)
	var hit cachedBrand
	if c.read(ctx, key, &hit) {
		if !hit.Found {
			return nil, false, nil
		}
		if hit.Models == nil {
			hit.Models = BrandCatalog{}
		}
		return hit.Models, true, nil
	}

	bc, found, err := c.next.BrandCatalog(ctx, brand)
	if err != nil {
		return nil, false, err
	}
	c.write(ctx, key, cachedBrand{Found: found, Models: bc})
	return bc, found, nil
}

// Invalidate drops every cached catalog document.
func (c *CachedSource) Invalidate(ctx context.Context) error {
	n, err := c.cache.DelPrefix(ctx, c.cache.CatalogPrefix())
	if err != nil {
		return fmt.Errorf("invalidate catalog cache: %w", err)
	}
	c.logg.Info(c.logg.WithField(ctx, "keys", n), "catalog cache invalidated")
	return nil
}

func (c *CachedSource) read(ctx context.Context, key string, dest any) bool {
	raw, err := c.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redisclient.Nil) {
			c.logg.Warn(c.logg.WithFields(ctx, map[string]any{"key": key, "error": err.Error()}), "catalog cache read failed")
		}
		c.metrics.IncCache(false)
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		c.logg.Warn(c.logg.WithFields(ctx, map[string]any{"key": key, "error": err.Error()}), "catalog cache entry corrupt")
		c.metrics.IncCache(false)
		return false
	}
	c.metrics.IncCache(true)
	return true
}

func (c *CachedSource) write(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.logg.Error(c.logg.WithField(ctx, "key", key), "encode catalog cache entry", err)
		return
	}
	if err := c.cache.Set(ctx, key, payload, c.ttl); err != nil {
		c.logg.Warn(c.logg.WithFields(ctx, map[string]any{"key": key, "error": err.Error()}), "catalog cache write failed")
	}
}
