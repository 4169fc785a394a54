package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/angelmondragon/groupdrive-backend/pkg/enums"
	"github.com/angelmondragon/groupdrive-backend/pkg/logger"
	"github.com/angelmondragon/groupdrive-backend/pkg/metrics"
)

// Resolver answers catalog reads from a primary source with a per-brand
// fallback to a secondary one. It never surfaces source errors.
type Resolver struct {
	primary   Source
	secondary Source
	logg      *logger.Logger
	metrics   *metrics.CatalogMetrics
}

// ResolverParams configures NewResolver. Primary may be nil, in which case
// only the secondary is consulted.
type ResolverParams struct {
	Primary   Source
	Secondary Source
	Logger    *logger.Logger
	Metrics   *metrics.CatalogMetrics
}

// NewResolver builds a two-tier resolver.
func NewResolver(p ResolverParams) (*Resolver, error) {
	if p.Secondary == nil {
		return nil, fmt.Errorf("secondary source required")
	}
	if p.Logger == nil {
		p.Logger = logger.Nop()
	}
	return &Resolver{
		primary:   p.Primary,
		secondary: p.Secondary,
		logg:      p.Logger,
		metrics:   p.Metrics,
	}, nil
}

// ListBrands returns the sorted union of both sources' brands.
func (r *Resolver) ListBrands(ctx context.Context) []string {
	seen := map[string]struct{}{}
	for _, src := range r.sources() {
		brands, err := src.Brands(ctx)
		if err != nil {
			r.logg.Error(ctx, "catalog source brand listing failed", err)
			continue
		}
		for _, brand := range brands {
			seen[brand] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for brand := range seen {
		out = append(out, brand)
	}
	sort.Strings(out)
	return out
}

// GetBrandCatalog returns the brand's model tree. A brand defined by the
// primary source is answered from it even when it has no models; otherwise
// the secondary answers; an unknown brand yields an empty catalog.
func (r *Resolver) GetBrandCatalog(ctx context.Context, brand string) BrandCatalog {
	if r.primary != nil {
		bc, found, err := r.primary.BrandCatalog(ctx, brand)
		switch {
		case err != nil:
			r.logg.Error(r.logg.WithField(ctx, "brand", brand), "catalog store lookup failed, using static table", err)
			r.metrics.IncFallback(metrics.FallbackStoreError)
		case found:
			r.metrics.IncLookup(metrics.SourceStore)
			return nonNil(bc)
		default:
			r.metrics.IncFallback(metrics.FallbackMissing)
		}
	}

	bc, found, err := r.secondary.BrandCatalog(ctx, brand)
	if err != nil {
		r.logg.Error(r.logg.WithField(ctx, "brand", brand), "static catalog lookup failed", err)
		found = false
	}
	if !found {
		r.metrics.IncLookup(metrics.SourceNone)
		return BrandCatalog{}
	}
	r.metrics.IncLookup(metrics.SourceStatic)
	return nonNil(bc)
}

// Catalog resolves every known brand.
func (r *Resolver) Catalog(ctx context.Context) map[string]BrandCatalog {
	brands := r.ListBrands(ctx)
	out := make(map[string]BrandCatalog, len(brands))
	for _, brand := range brands {
		out[brand] = r.GetBrandCatalog(ctx, brand)
	}
	return out
}

// Price resolves one selection under brand.
func (r *Resolver) Price(ctx context.Context, brand, model, variant string, tx enums.Transmission) (int64, bool) {
	return r.GetBrandCatalog(ctx, brand).Price(model, variant, tx)
}

func (r *Resolver) sources() []Source {
	if r.primary == nil {
		return []Source{r.secondary}
	}
	return []Source{r.primary, r.secondary}
}

func nonNil(bc BrandCatalog) BrandCatalog {
	if bc == nil {
		return BrandCatalog{}
	}
	return bc
}
