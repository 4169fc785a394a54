package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/groupdrive-backend/api/responses"
	"github.com/angelmondragon/groupdrive-backend/api/validators"
	"github.com/angelmondragon/groupdrive-backend/internal/catalog"
	"github.com/angelmondragon/groupdrive-backend/internal/fees"
	pkgerrors "github.com/angelmondragon/groupdrive-backend/pkg/errors"
	"github.com/angelmondragon/groupdrive-backend/pkg/logger"
)

// CatalogReader is the read side of the catalog resolver.
type CatalogReader interface {
	ListBrands(ctx context.Context) []string
	GetBrandCatalog(ctx context.Context, brand string) catalog.BrandCatalog
	Catalog(ctx context.Context) map[string]catalog.BrandCatalog
}

type CatalogSeeder interface {
	Seed(ctx context.Context) (catalog.SeedResult, error)
}

// FeeQuote previews the joining fee for an on-road price.
type FeeQuote struct {
	Price int64 `json:"price"`
	Fee   int64 `json:"fee"`
}

// CarData returns the full brand to model to variant table.
func CarData(reader CatalogReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if reader == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("catalog"))
			return
		}
		responses.WriteSuccess(w, reader.Catalog(r.Context()))
	}
}

// CarDataBrand returns one brand's models, or an empty object when unknown.
func CarDataBrand(reader CatalogReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if reader == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("catalog"))
			return
		}
		brand := strings.TrimSpace(chi.URLParam(r, "brand"))
		responses.WriteSuccess(w, reader.GetBrandCatalog(r.Context(), brand))
	}
}

func CarBrands(reader CatalogReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if reader == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("catalog"))
			return
		}
		responses.WriteSuccess(w, reader.ListBrands(r.Context()))
	}
}

// FeesQuote validates the price before calling the calculator, which treats
// non-positive prices as a programming error.
func FeesQuote(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		price, err := validators.ParseQueryInt64(r, "price")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, FeeQuote{Price: price, Fee: fees.ComputeJoiningFee(price)})
	}
}

// AdminSeedCarData copies the built-in catalog into the database.
func AdminSeedCarData(seeder CatalogSeeder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if seeder == nil {
			responses.WriteError(r.Context(), logg, w, unavailable("catalog seeder"))
			return
		}

		result, err := seeder.Seed(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed car data"))
			return
		}
		responses.WriteSuccess(w, result)
	}
}
