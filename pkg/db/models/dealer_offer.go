package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DealerOffer is a dealer's bid for a locked group.
type DealerOffer struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GroupID      uuid.UUID       `gorm:"column:group_id;type:uuid;not null;index"`
	DealerName   string          `gorm:"column:dealer_name;not null"`
	Price        decimal.Decimal `gorm:"column:price;type:numeric(14,2);not null"`
	DeliveryTime string          `gorm:"column:delivery_time;not null"`
	BonusItems   string          `gorm:"column:bonus_items;not null;default:''"`
	Votes        int             `gorm:"column:votes;not null;default:0"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
}
