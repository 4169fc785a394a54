package payments

import (
	"context"

	"github.com/angelmondragon/groupdrive-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository persists mock payments.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a payments repo to the provided GORM DB (or tx).
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create stores a payment.
func (r *Repository) Create(ctx context.Context, dto CreatePaymentDTO) (*models.Payment, error) {
	payment := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

// FindByUserAndGroup loads the user's payment for a group.
func (r *Repository) FindByUserAndGroup(ctx context.Context, userID, groupID uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// Exists reports whether the user has paid for the group.
func (r *Repository) Exists(ctx context.Context, userID, groupID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		Count(&count).Error
	return count > 0, err
}
