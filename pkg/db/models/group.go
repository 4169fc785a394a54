package models

import (
	"time"

	"github.com/angelmondragon/groupdrive-backend/pkg/enums"
	"github.com/google/uuid"
)

// Group is a cohort of buyers pooling demand for one car model in a city.
type Group struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey"`
	CarModel       string            `gorm:"column:car_model;not null"`
	Brand          string            `gorm:"column:brand;not null"`
	City           string            `gorm:"column:city;not null"`
	ImageURL       string            `gorm:"column:image_url;not null;default:''"`
	MaxMembers     int               `gorm:"column:max_members;not null"`
	CurrentMembers int               `gorm:"column:current_members;not null;default:0"`
	Status         enums.GroupStatus `gorm:"column:status;type:text;not null;default:forming"`
	CreatedBy      *uuid.UUID        `gorm:"column:created_by;type:uuid"`
	CreatedAt      time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

// IsFull reports whether every seat is taken.
func (g Group) IsFull() bool {
	return g.CurrentMembers >= g.MaxMembers
}
