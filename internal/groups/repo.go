package groups

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/angelmondragon/groupdrive-backend/pkg/db/models"
	"github.com/angelmondragon/groupdrive-backend/pkg/enums"
	"github.com/angelmondragon/groupdrive-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes group and membership persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a groups repo to the provided GORM DB (or tx).
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new group.
func (r *Repository) Create(ctx context.Context, dto CreateGroupDTO) (*models.Group, error) {
	group := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

// FindByID loads a group.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	var group models.Group
	if err := r.db.WithContext(ctx).First(&group, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// List returns up to LimitWithBuffer rows, newest first, after the cursor.
func (r *Repository) List(ctx context.Context, filter ListFilter, cursor *pagination.Cursor) ([]models.Group, error) {
	q := r.db.WithContext(ctx).Model(&models.Group{})
	if filter.Brand != "" {
		q = q.Where("brand = ?", filter.Brand)
	}
	if filter.City != "" {
		q = q.Where("city = ?", filter.City)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		q = q.Where(
			"LOWER(car_model) LIKE ? ESCAPE '\\' OR LOWER(brand) LIKE ? ESCAPE '\\' OR LOWER(city) LIKE ? ESCAPE '\\'",
			pattern, pattern, pattern,
		)
	}
	if cursor != nil {
		q = q.Where("(created_at < ? OR (created_at = ? AND id < ?))", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var rows []models.Group
	err := q.Order("created_at DESC").
		Order("id DESC").
		Limit(pagination.LimitWithBuffer(filter.Limit)).
		Find(&rows).Error
	return rows, err
}

// ListByStatus returns every group in the status, newest first.
func (r *Repository) ListByStatus(ctx context.Context, status enums.GroupStatus) ([]models.Group, error) {
	var rows []models.Group
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// ClaimSeat increments current_members when a seat is free and locks the
// group when the last seat is taken. It reports false when the group is full.
func (r *Repository) ClaimSeat(ctx context.Context, groupID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Exec(`
		UPDATE "groups"
		SET current_members = current_members + 1,
		    status = CASE WHEN current_members + 1 >= max_members THEN ? ELSE status END,
		    updated_at = ?
		WHERE id = ? AND current_members < max_members`,
		enums.GroupStatusLocked, time.Now().UTC(), groupID,
	)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// TransitionStatus moves the group to `to` only from one of the `from`
// statuses. It reports whether a row changed.
func (r *Repository) TransitionStatus(ctx context.Context, groupID uuid.UUID, from []enums.GroupStatus, to enums.GroupStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Group{}).
		Where("id = ? AND status IN ?", groupID, from).
		Updates(map[string]any{"status": to, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// CreateIfBrandMissing creates dto unless the brand already has a group, in
// which case the oldest one is returned untouched and created is false.
func (r *Repository) CreateIfBrandMissing(ctx context.Context, dto CreateGroupDTO) (*models.Group, bool, error) {
	var existing models.Group
	err := r.db.WithContext(ctx).
		Where("brand = ?", dto.Brand).
		Order("created_at ASC").
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		created, err := r.Create(ctx, dto)
		return created, err == nil, err
	}
	if err != nil {
		return nil, false, err
	}
	return &existing, false, nil
}

// AddMember inserts the membership row.
func (r *Repository) AddMember(ctx context.Context, member *models.GroupMember) error {
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(member).Error
}

// FindMember loads the user's membership in the group.
func (r *Repository) FindMember(ctx context.Context, groupID, userID uuid.UUID) (*models.GroupMember, error) {
	var member models.GroupMember
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListMembers returns members in join order.
func (r *Repository) ListMembers(ctx context.Context, groupID uuid.UUID) ([]models.GroupMember, error) {
	var rows []models.GroupMember
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("joined_at ASC").
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

// CountMembers counts membership rows.
func (r *Repository) CountMembers(ctx context.Context, groupID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.GroupMember{}).
		Where("group_id = ?", groupID).
		Count(&count).Error
	return count, err
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
