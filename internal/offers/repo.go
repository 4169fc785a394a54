package offers

import (
	"context"
	"time"

	"github.com/angelmondragon/groupdrive-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository persists dealer offers and the per-user votes on them.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds an offers repo to the provided GORM DB (or tx).
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, offer *models.DealerOffer) error {
	return r.db.WithContext(ctx).Create(offer).Error
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.DealerOffer, error) {
	var offer models.DealerOffer
	if err := r.db.WithContext(ctx).First(&offer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}

// ListByGroup returns the group's offers, oldest first.
func (r *Repository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]models.DealerOffer, error) {
	var rows []models.DealerOffer
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

// AdjustVotes adds delta to the offer's tally. It reports false when no row
// changed, which for a negative delta means the tally would go below zero.
func (r *Repository) AdjustVotes(ctx context.Context, offerID uuid.UUID, delta int) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.DealerOffer{}).Where("id = ?", offerID)
	if delta < 0 {
		q = q.Where("votes >= ?", -delta)
	}
	res := q.UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// FindVote loads the user's vote in a group.
func (r *Repository) FindVote(ctx context.Context, groupID, userID uuid.UUID) (*models.Vote, error) {
	var vote models.Vote
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&vote).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func (r *Repository) CreateVote(ctx context.Context, vote *models.Vote) error {
	now := time.Now().UTC()
	if vote.ID == uuid.Nil {
		vote.ID = uuid.New()
	}
	vote.CreatedAt, vote.UpdatedAt = now, now
	return r.db.WithContext(ctx).Create(vote).Error
}

// MoveVote points a vote at offerID only while it still points at fromOfferID.
// It reports false when another writer moved the vote first.
func (r *Repository) MoveVote(ctx context.Context, voteID, fromOfferID, offerID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Vote{}).
		Where("id = ? AND offer_id = ?", voteID, fromOfferID).
		Updates(map[string]any{"offer_id": offerID, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// CountVotes counts vote records in a group.
func (r *Repository) CountVotes(ctx context.Context, groupID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Vote{}).
		Where("group_id = ?", groupID).
		Count(&count).Error
	return count, err
}
