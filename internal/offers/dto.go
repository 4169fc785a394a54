package offers

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/groupdrive-backend/internal/groups"
	"github.com/angelmondragon/groupdrive-backend/pkg/db/models"
)

// CreateRequest is a dealer bid entered by an admin.
type CreateRequest struct {
	DealerName   string          `json:"dealer_name" validate:"required,max=120"`
	Price        decimal.Decimal `json:"price"`
	DeliveryTime string          `json:"delivery_time" validate:"required,max=120"`
	BonusItems   string          `json:"bonus_items" validate:"max=1000"`
}

// OfferDTO is the transport shape of a dealer offer.
type OfferDTO struct {
	ID           uuid.UUID       `json:"id"`
	GroupID      uuid.UUID       `json:"group_id"`
	DealerName   string          `json:"dealer_name"`
	Price        decimal.Decimal `json:"price"`
	DeliveryTime string          `json:"delivery_time"`
	BonusItems   string          `json:"bonus_items"`
	Votes        int             `json:"votes"`
	CreatedAt    time.Time       `json:"created_at"`
}

// VoteResult is returned after a vote is cast or moved.
type VoteResult struct {
	Message string    `json:"message"`
	OfferID uuid.UUID `json:"offer_id"`
	Changed bool      `json:"changed"`
}

// MyVote answers which offer, if any, the user backs in a group.
type MyVote struct {
	OfferID *uuid.UUID `json:"offer_id"`
}

// Analytics is the admin summary of a group.
type Analytics struct {
	Group        *groups.GroupDTO `json:"group"`
	MembersCount int64            `json:"members_count"`
	Offers       []OfferDTO       `json:"offers"`
	TotalVotes   int64            `json:"total_votes"`
}

func FromModel(o *models.DealerOffer) OfferDTO {
	return OfferDTO{
		ID:           o.ID,
		GroupID:      o.GroupID,
		DealerName:   o.DealerName,
		Price:        o.Price,
		DeliveryTime: o.DeliveryTime,
		BonusItems:   o.BonusItems,
		Votes:        o.Votes,
		CreatedAt:    o.CreatedAt,
	}
}

func FromModels(rows []models.DealerOffer) []OfferDTO {
	out := make([]OfferDTO, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}

func (c CreateRequest) toModel(groupID uuid.UUID) *models.DealerOffer {
	return &models.DealerOffer{
		ID:           uuid.New(),
		GroupID:      groupID,
		DealerName:   strings.TrimSpace(c.DealerName),
		Price:        c.Price.Round(2),
		DeliveryTime: strings.TrimSpace(c.DeliveryTime),
		BonusItems:   strings.TrimSpace(c.BonusItems),
		CreatedAt:    time.Now().UTC(),
	}
}
