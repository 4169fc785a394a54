package models

import (
	"time"

	"github.com/google/uuid"
)

// Vote is a user's single ballot within a group; it points at one offer.
type Vote struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	GroupID   uuid.UUID `gorm:"column:group_id;type:uuid;not null;uniqueIndex:uq_votes_group_user"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_votes_group_user"`
	OfferID   uuid.UUID `gorm:"column:offer_id;type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
