package models

import (
	"time"

	"github.com/google/uuid"
)

// GroupMember links a user to a group they joined.
type GroupMember struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	GroupID   uuid.UUID `gorm:"column:group_id;type:uuid;not null;uniqueIndex:uq_group_members_group_user"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_group_members_group_user"`
	UserName  string    `gorm:"column:user_name;not null"`
	UserEmail string    `gorm:"column:user_email;not null"`
	JoinedAt  time.Time `gorm:"column:joined_at;autoCreateTime"`
}
