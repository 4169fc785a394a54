package payments

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/groupdrive-backend/pkg/db/models"
	"github.com/angelmondragon/groupdrive-backend/pkg/enums"
)

// PayRequest is the car selection submitted with a joining payment. The
// on-road price is optional; when present it must match the catalog.
type PayRequest struct {
	CarModel     string           `json:"car_model" validate:"required"`
	Variant      string           `json:"variant" validate:"required"`
	Transmission string           `json:"transmission" validate:"required"`
	OnRoadPrice  *decimal.Decimal `json:"on_road_price,omitempty"`
}

// PayResult is returned after a successful mock charge.
type PayResult struct {
	Message     string    `json:"message"`
	PaymentID   uuid.UUID `json:"payment_id"`
	Amount      int64     `json:"amount"`
	OnRoadPrice int64     `json:"on_road_price"`
}

// PaymentStatus answers whether a user has paid for a group.
type PaymentStatus struct {
	HasPaid bool `json:"has_paid"`
}

// CreatePaymentDTO holds what the repository persists.
type CreatePaymentDTO struct {
	UserID       uuid.UUID
	GroupID      uuid.UUID
	Amount       int64
	OnRoadPrice  int64
	CarModel     string
	Variant      string
	Transmission enums.Transmission
}

func (c CreatePaymentDTO) ToModel() *models.Payment {
	return &models.Payment{
		ID:           uuid.New(),
		UserID:       c.UserID,
		GroupID:      c.GroupID,
		Amount:       c.Amount,
		OnRoadPrice:  c.OnRoadPrice,
		CarModel:     c.CarModel,
		Variant:      c.Variant,
		Transmission: c.Transmission,
		CreatedAt:    time.Now().UTC(),
	}
}
