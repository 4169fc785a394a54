package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/angelmondragon/groupdrive-backend/pkg/db"
	"github.com/angelmondragon/groupdrive-backend/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const insertBatchSize = 200

// Store persists the catalog in catalog_brands and catalog_entries.
type Store struct {
	client *db.Client
}

// NewStore binds the store to a database client.
func NewStore(client *db.Client) (*Store, error) {
	if client == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &Store{client: client}, nil
}

// Brands lists the persisted brands, sorted.
func (s *Store) Brands(ctx context.Context) ([]string, error) {
	var names []string
	if err := s.client.DB().WithContext(ctx).
		Model(&models.CatalogBrand{}).
		Order("name ASC").
		Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("list catalog brands: %w", err)
	}
	return names, nil
}

// BrandCatalog loads every entry of brand. found is false when the brand row
// does not exist.
func (s *Store) BrandCatalog(ctx context.Context, brand string) (BrandCatalog, bool, error) {
	conn := s.client.DB().WithContext(ctx)

	var count int64
	if err := conn.Model(&models.CatalogBrand{}).Where("name = ?", brand).Count(&count).Error; err != nil {
		return nil, false, fmt.Errorf("lookup catalog brand: %w", err)
	}
	if count == 0 {
		return nil, false, nil
	}

	var rows []models.CatalogEntry
	if err := conn.Where("brand = ?", brand).Find(&rows).Error; err != nil {
		return nil, false, fmt.Errorf("load catalog entries: %w", err)
	}

	out := BrandCatalog{}
	for _, row := range rows {
		variants, ok := out[row.Model]
		if !ok {
			variants = ModelCatalog{}
			out[row.Model] = variants
		}
		prices, ok := variants[row.Variant]
		if !ok {
			prices = VariantPrices{}
			variants[row.Variant] = prices
		}
		prices[row.Transmission] = row.Price
	}
	return out, true, nil
}

// ReplaceBrands makes the store hold exactly data for each brand in data,
// inside one transaction. Brands not in data are left untouched.
func (s *Store) ReplaceBrands(ctx context.Context, data map[string]BrandCatalog) error {
	brands := make([]string, 0, len(data))
	for brand := range data {
		brands = append(brands, brand)
	}
	sort.Strings(brands)

	return s.client.WithTx(ctx, func(tx *gorm.DB) error {
		for _, brand := range brands {
			if err := replaceBrand(tx, brand, data[brand]); err != nil {
				return fmt.Errorf("replace brand %q: %w", brand, err)
			}
		}
		return nil
	})
}

func replaceBrand(tx *gorm.DB, brand string, bc BrandCatalog) error {
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.CatalogBrand{Name: brand}).Error; err != nil {
		return err
	}
	if err := tx.Where("brand = ?", brand).Delete(&models.CatalogEntry{}).Error; err != nil {
		return err
	}

	rows := entriesFor(brand, bc)
	if len(rows) == 0 {
		return nil
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "brand"}, {Name: "model"}, {Name: "variant"}, {Name: "transmission"}},
		DoUpdates: clause.AssignmentColumns([]string{"price", "updated_at"}),
	}).CreateInBatches(rows, insertBatchSize).Error
}

func entriesFor(brand string, bc BrandCatalog) []models.CatalogEntry {
	var rows []models.CatalogEntry
	for model, variants := range bc {
		for variant, prices := range variants {
			for tx, price := range prices {
				rows = append(rows, models.CatalogEntry{
					Brand:        brand,
					Model:        model,
					Variant:      variant,
					Transmission: tx,
					Price:        price,
				})
			}
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Model != b.Model {
			return a.Model < b.Model
		}
		if a.Variant != b.Variant {
			return a.Variant < b.Variant
		}
		return a.Transmission < b.Transmission
	})
	return rows
}
