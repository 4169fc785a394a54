package models

import (
	"time"

	"github.com/angelmondragon/groupdrive-backend/pkg/enums"
	"github.com/google/uuid"
)

// Payment records the mock premium charge a user pays before joining a group.
// Amount and OnRoadPrice are whole rupees.
type Payment struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID          `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_payments_user_group"`
	GroupID      uuid.UUID          `gorm:"column:group_id;type:uuid;not null;uniqueIndex:uq_payments_user_group"`
	Amount       int64              `gorm:"column:amount;not null"`
	OnRoadPrice  int64              `gorm:"column:on_road_price;not null"`
	CarModel     string             `gorm:"column:car_model;not null"`
	Variant      string             `gorm:"column:variant;not null"`
	Transmission enums.Transmission `gorm:"column:transmission;type:text;not null"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime"`
}
