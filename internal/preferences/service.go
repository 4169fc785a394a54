package preferences

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/angelmondragon/groupdrive-backend/pkg/db/models"
	"github.com/angelmondragon/groupdrive-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/groupdrive-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service manages members' car preferences.
type Service interface {
	Save(ctx context.Context, userID, groupID uuid.UUID, req SaveRequest) (*PreferenceDTO, error)
	List(ctx context.Context, groupID uuid.UUID) ([]PreferenceDTO, error)
	Mine(ctx context.Context, userID, groupID uuid.UUID) (*PreferenceDTO, error)
}

type groupLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Group, error)
	FindMember(ctx context.Context, groupID, userID uuid.UUID) (*models.GroupMember, error)
}

type pricer interface {
	Price(ctx context.Context, brand, model, variant string, tx enums.Transmission) (int64, bool)
}

type service struct {
	repo    *Repository
	groups  groupLookup
	catalog pricer
}

// NewService builds the preference service.
func NewService(repo *Repository, groups groupLookup, catalog pricer) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("preferences repository required")
	}
	if groups == nil {
		return nil, fmt.Errorf("group lookup required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog required")
	}
	return &service{repo: repo, groups: groups, catalog: catalog}, nil
}

func (s *service) Save(ctx context.Context, userID, groupID uuid.UUID, req SaveRequest) (*PreferenceDTO, error) {
	group, err := s.loadGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	member, err := s.groups.FindMember(ctx, groupID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, "join the group before choosing a car")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check membership")
	}

	model := strings.TrimSpace(req.CarModel)
	variant := strings.TrimSpace(req.Variant)
	tx, err := enums.ParseTransmission(strings.TrimSpace(req.Transmission))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid transmission").
			WithDetails(map[string]any{"transmission": req.Transmission})
	}
	price, ok := s.catalog.Price(ctx, group.Brand, model, variant, tx)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "selected car is not available").
			WithDetails(map[string]any{"brand": group.Brand, "car_model": model, "variant": variant, "transmission": tx})
	}

	pref, err := s.repo.Upsert(ctx, UpsertDTO{
		GroupID:      groupID,
		UserID:       userID,
		UserName:     member.UserName,
		CarModel:     model,
		Variant:      variant,
		Transmission: tx,
		OnRoadPrice:  price,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save preference")
	}
	return FromModel(pref), nil
}

func (s *service) List(ctx context.Context, groupID uuid.UUID) ([]PreferenceDTO, error) {
	if _, err := s.loadGroup(ctx, groupID); err != nil {
		return nil, err
	}
	rows, err := s.repo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list preferences")
	}
	out := make([]PreferenceDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

// Mine returns nil without error when the user has not chosen yet.
func (s *service) Mine(ctx context.Context, userID, groupID uuid.UUID) (*PreferenceDTO, error) {
	pref, err := s.repo.FindByGroupAndUser(ctx, groupID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load preference")
	}
	return FromModel(pref), nil
}

func (s *service) loadGroup(ctx context.Context, groupID uuid.UUID) (*models.Group, error) {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("group")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load group")
	}
	return group, nil
}
