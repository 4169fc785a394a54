package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/groupdrive-backend/pkg/enums"
)

func TestStaticSourceBrands(t *testing.T) {
	brands, err := NewStaticSource().Brands(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Honda", "Hyundai", "Kia", "Mahindra", "Maruti", "Tata", "Toyota", "Volkswagen"}, brands)
}

func TestStaticSourceReturnsCopies(t *testing.T) {
	ctx := context.Background()
	src := NewStaticSource()

	bc, found, err := src.BrandCatalog(ctx, "Tata")
	require.NoError(t, err)
	require.True(t, found)
	bc["Nexon"]["XZ+"][enums.TransmissionManual] = 1
	delete(bc, "Punch")

	again, _, err := src.BrandCatalog(ctx, "Tata")
	require.NoError(t, err)
	price, ok := again.Price("Nexon", "XZ+", enums.TransmissionManual)
	require.True(t, ok)
	assert.EqualValues(t, 1_050_000, price)
	assert.Contains(t, again, "Punch")
}

func TestStaticSourceUnknownBrand(t *testing.T) {
	bc, found, err := NewStaticSource().BrandCatalog(context.Background(), "Nonexistent")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, bc)
}

func TestStaticDataIsWellFormed(t *testing.T) {
	for brand, models := range staticData {
		require.NotEmpty(t, models, brand)
		for model, variants := range models {
			require.NotEmpty(t, variants, "%s %s", brand, model)
			for variant, prices := range variants {
				require.NotEmpty(t, prices, "%s %s %s", brand, model, variant)
				for tx, price := range prices {
					assert.True(t, tx.IsValid(), "%s %s %s %s", brand, model, variant, tx)
					assert.Positive(t, price, "%s %s %s %s", brand, model, variant, tx)
				}
			}
		}
	}
}

func TestBrandCatalogHelpers(t *testing.T) {
	var empty BrandCatalog
	assert.NotNil(t, empty.Clone())
	_, ok := empty.Price("x", "y", enums.TransmissionManual)
	assert.False(t, ok)

	bc := BrandCatalog{"b": {}, "a": {}}
	assert.Equal(t, []string{"a", "b"}, bc.Models())
}
