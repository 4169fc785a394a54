package groups

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/groupdrive-backend/pkg/db/models"
	"github.com/angelmondragon/groupdrive-backend/pkg/enums"
	"github.com/angelmondragon/groupdrive-backend/pkg/pagination"
)

// GroupDTO is the transport shape of a group.
type GroupDTO struct {
	ID             uuid.UUID         `json:"id"`
	CarModel       string            `json:"car_model"`
	Brand          string            `json:"brand"`
	City           string            `json:"city"`
	ImageURL       string            `json:"image_url"`
	MaxMembers     int               `json:"max_members"`
	CurrentMembers int               `json:"current_members"`
	Status         enums.GroupStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
}

// MemberDTO is the transport shape of a group member.
type MemberDTO struct {
	ID        uuid.UUID `json:"id"`
	GroupID   uuid.UUID `json:"group_id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	JoinedAt  time.Time `json:"joined_at"`
}

// CreateRequest is the payload of POST /api/groups.
type CreateRequest struct {
	CarModel   string `json:"car_model" validate:"required,max=120"`
	Brand      string `json:"brand" validate:"required,max=60"`
	City       string `json:"city" validate:"required,max=80"`
	ImageURL   string `json:"image_url" validate:"omitempty,url"`
	MaxMembers int    `json:"max_members" validate:"required,min=1,max=1000"`
}

// JoinResult is returned after a successful join.
type JoinResult struct {
	Message        string    `json:"message"`
	CurrentMembers int       `json:"current_members"`
	Group          *GroupDTO `json:"group"`
}

// ListFilter narrows GET /api/groups. Brand and City match exactly; Search
// is a case-insensitive substring over car model, brand and city.
type ListFilter struct {
	Brand  string
	City   string
	Search string
	pagination.Params
}

// CreateGroupDTO holds what the repository persists for a new group.
type CreateGroupDTO struct {
	CarModel       string
	Brand          string
	City           string
	ImageURL       string
	MaxMembers     int
	CurrentMembers int
	Status         enums.GroupStatus
	CreatedBy      *uuid.UUID
}

func FromModel(g *models.Group) *GroupDTO {
	if g == nil {
		return nil
	}
	return &GroupDTO{
		ID:             g.ID,
		CarModel:       g.CarModel,
		Brand:          g.Brand,
		City:           g.City,
		ImageURL:       g.ImageURL,
		MaxMembers:     g.MaxMembers,
		CurrentMembers: g.CurrentMembers,
		Status:         g.Status,
		CreatedAt:      g.CreatedAt,
	}
}

func FromModels(rows []models.Group) []GroupDTO {
	out := make([]GroupDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}

func MemberFromModel(m *models.GroupMember) MemberDTO {
	return MemberDTO{
		ID:        m.ID,
		GroupID:   m.GroupID,
		UserID:    m.UserID,
		UserName:  m.UserName,
		UserEmail: m.UserEmail,
		JoinedAt:  m.JoinedAt,
	}
}

func (c CreateGroupDTO) ToModel() *models.Group {
	status := c.Status
	if status == "" {
		status = enums.GroupStatusForming
	}
	now := time.Now().UTC()
	return &models.Group{
		ID:             uuid.New(),
		CarModel:       strings.TrimSpace(c.CarModel),
		Brand:          strings.TrimSpace(c.Brand),
		City:           strings.TrimSpace(c.City),
		ImageURL:       strings.TrimSpace(c.ImageURL),
		MaxMembers:     c.MaxMembers,
		CurrentMembers: c.CurrentMembers,
		Status:         status,
		CreatedBy:      c.CreatedBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
