package catalog

import (
	"context"
	"fmt"

	"github.com/angelmondragon/groupdrive-backend/pkg/logger"
)

type brandWriter interface {
	ReplaceBrands(ctx context.Context, data map[string]BrandCatalog) error
}

type invalidator interface {
	Invalidate(ctx context.Context) error
}

// SeedResult summarises a seeding run.
type SeedResult struct {
	Brands  int `json:"brands"`
	Entries int `json:"entries"`
}

// Seeder copies the static table into the persisted store.
type Seeder struct {
	static *StaticSource
	store  brandWriter
	cache  invalidator
	logg   *logger.Logger
}

// NewSeeder wires a seeder. cache may be nil when caching is disabled.
func NewSeeder(static *StaticSource, store brandWriter, cache invalidator, logg *logger.Logger) (*Seeder, error) {
	if static == nil {
		return nil, fmt.Errorf("static source required")
	}
	if store == nil {
		return nil, fmt.Errorf("store required")
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &Seeder{static: static, store: store, cache: cache, logg: logg}, nil
}

// Seed overwrites every static brand in the store with the static data.
// Re-running it leaves the store unchanged.
func (s *Seeder) Seed(ctx context.Context) (SeedResult, error) {
	data := s.static.All()
	if err := s.store.ReplaceBrands(ctx, data); err != nil {
		return SeedResult{}, fmt.Errorf("seed catalog: %w", err)
	}

	res := SeedResult{Brands: len(data)}
	for brand, bc := range data {
		res.Entries += len(entriesFor(brand, bc))
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			// store is already updated; stale cache entries expire on their own
			s.logg.Error(ctx, "catalog seeded but cache invalidation failed", err)
		}
	}

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{"brands": res.Brands, "entries": res.Entries}), "catalog seeded")
	return res, nil
}
