package models

import (
	"time"

	"github.com/angelmondragon/groupdrive-backend/pkg/enums"
)

// CatalogBrand marks a brand as defined by the persisted catalog, even when it
// has no entries.
type CatalogBrand struct {
	Name      string    `gorm:"column:name;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (CatalogBrand) TableName() string { return "catalog_brands" }

// CatalogEntry is one priced leaf of the catalog, keyed by its full path.
type CatalogEntry struct {
	Brand        string             `gorm:"column:brand;primaryKey"`
	Model        string             `gorm:"column:model;primaryKey"`
	Variant      string             `gorm:"column:variant;primaryKey"`
	Transmission enums.Transmission `gorm:"column:transmission;type:text;primaryKey"`
	Price        int64              `gorm:"column:price;not null"`
	UpdatedAt    time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (CatalogEntry) TableName() string { return "catalog_entries" }
