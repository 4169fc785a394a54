// Package catalog resolves the brand → model → variant → transmission → price
// table from the persisted store, falling back to the built-in price list.
package catalog

import (
	"context"
	"sort"

	"github.com/angelmondragon/groupdrive-backend/pkg/enums"
)

// VariantPrices maps a transmission to its on-road price in rupees.
type VariantPrices map[enums.Transmission]int64

// ModelCatalog maps a variant name to its prices.
type ModelCatalog map[string]VariantPrices

// BrandCatalog maps a model name to its variants.
type BrandCatalog map[string]ModelCatalog

// Source is one tier of catalog data. BrandCatalog reports found=false when
// the source does not define the brand at all; a defined brand may still have
// no models.
type Source interface {
	Brands(ctx context.Context) ([]string, error)
	BrandCatalog(ctx context.Context, brand string) (BrandCatalog, bool, error)
}

// Clone returns a deep copy. A nil catalog clones to an empty one.
func (b BrandCatalog) Clone() BrandCatalog {
	out := make(BrandCatalog, len(b))
	for model, variants := range b {
		mc := make(ModelCatalog, len(variants))
		for variant, prices := range variants {
			vp := make(VariantPrices, len(prices))
			for tx, price := range prices {
				vp[tx] = price
			}
			mc[variant] = vp
		}
		out[model] = mc
	}
	return out
}

// Price looks up a single leaf.
func (b BrandCatalog) Price(model, variant string, tx enums.Transmission) (int64, bool) {
	price, ok := b[model][variant][tx]
	return price, ok
}

// Models returns the model names in sorted order.
func (b BrandCatalog) Models() []string {
	names := make([]string, 0, len(b))
	for model := range b {
		names = append(names, model)
	}
	sort.Strings(names)
	return names
}

func cloneAll(in map[string]BrandCatalog) map[string]BrandCatalog {
	out := make(map[string]BrandCatalog, len(in))
	for brand, bc := range in {
		out[brand] = bc.Clone()
	}
	return out
}
