package preferences

import (
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/groupdrive-backend/pkg/db/models"
	"github.com/angelmondragon/groupdrive-backend/pkg/enums"
)

// SaveRequest is a member's car selection. The price is always taken from
// the catalog.
type SaveRequest struct {
	CarModel     string `json:"car_model" validate:"required"`
	Variant      string `json:"variant" validate:"required"`
	Transmission string `json:"transmission" validate:"required"`
}

// PreferenceDTO is the transport shape of a car preference.
type PreferenceDTO struct {
	ID           uuid.UUID          `json:"id"`
	GroupID      uuid.UUID          `json:"group_id"`
	UserID       uuid.UUID          `json:"user_id"`
	UserName     string             `json:"user_name"`
	CarModel     string             `json:"car_model"`
	Variant      string             `json:"variant"`
	Transmission enums.Transmission `json:"transmission"`
	OnRoadPrice  int64              `json:"on_road_price"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// UpsertDTO holds the persisted fields of a preference.
type UpsertDTO struct {
	GroupID      uuid.UUID
	UserID       uuid.UUID
	UserName     string
	CarModel     string
	Variant      string
	Transmission enums.Transmission
	OnRoadPrice  int64
}

func FromModel(p *models.CarPreference) *PreferenceDTO {
	if p == nil {
		return nil
	}
	return &PreferenceDTO{
		ID:           p.ID,
		GroupID:      p.GroupID,
		UserID:       p.UserID,
		UserName:     p.UserName,
		CarModel:     p.CarModel,
		Variant:      p.Variant,
		Transmission: p.Transmission,
		OnRoadPrice:  p.OnRoadPrice,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (u UpsertDTO) ToModel() *models.CarPreference {
	now := time.Now().UTC()
	return &models.CarPreference{
		ID:           uuid.New(),
		GroupID:      u.GroupID,
		UserID:       u.UserID,
		UserName:     u.UserName,
		CarModel:     u.CarModel,
		Variant:      u.Variant,
		Transmission: u.Transmission,
		OnRoadPrice:  u.OnRoadPrice,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
