package preferences

import (
	"context"

	"github.com/angelmondragon/groupdrive-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository persists car preferences, one per member and group.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a preferences repo to the provided GORM DB (or tx).
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts the preference or overwrites every selection field of the
// member's existing one.
func (r *Repository) Upsert(ctx context.Context, dto UpsertDTO) (*models.CarPreference, error) {
	pref := dto.ToModel()
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "group_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"user_name", "car_model", "variant", "transmission", "on_road_price", "updated_at",
		}),
	}).Create(pref).Error
	if err != nil {
		return nil, err
	}
	return r.FindByGroupAndUser(ctx, dto.GroupID, dto.UserID)
}

// FindByGroupAndUser loads one member's preference.
func (r *Repository) FindByGroupAndUser(ctx context.Context, groupID, userID uuid.UUID) (*models.CarPreference, error) {
	var pref models.CarPreference
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&pref).Error
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// ListByGroup returns the group's preferences, oldest first.
func (r *Repository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]models.CarPreference, error) {
	var prefs []models.CarPreference
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&prefs).Error
	return prefs, err
}
