package models

import (
	"time"

	"github.com/angelmondragon/groupdrive-backend/pkg/enums"
	"github.com/google/uuid"
)

// CarPreference is a member's chosen model, variant and transmission within a group.
type CarPreference struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey"`
	GroupID      uuid.UUID          `gorm:"column:group_id;type:uuid;not null;uniqueIndex:uq_car_preferences_group_user"`
	UserID       uuid.UUID          `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_car_preferences_group_user"`
	UserName     string             `gorm:"column:user_name;not null"`
	CarModel     string             `gorm:"column:car_model;not null"`
	Variant      string             `gorm:"column:variant;not null"`
	Transmission enums.Transmission `gorm:"column:transmission;type:text;not null"`
	OnRoadPrice  int64              `gorm:"column:on_road_price;not null"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
