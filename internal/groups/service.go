package groups

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/groupdrive-backend/internal/payments"
	"github.com/angelmondragon/groupdrive-backend/internal/preferences"
	"github.com/angelmondragon/groupdrive-backend/internal/users"
	"github.com/angelmondragon/groupdrive-backend/pkg/db"
	"github.com/angelmondragon/groupdrive-backend/pkg/db/models"
	"github.com/angelmondragon/groupdrive-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/groupdrive-backend/pkg/errors"
	"github.com/angelmondragon/groupdrive-backend/pkg/logger"
	"github.com/angelmondragon/groupdrive-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const joinedMessage = "Successfully joined group"

// Service defines group browsing, membership and lifecycle operations.
type Service interface {
	List(ctx context.Context, filter ListFilter) (pagination.Page[GroupDTO], error)
	Get(ctx context.Context, id uuid.UUID) (*GroupDTO, error)
	Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*GroupDTO, error)
	Members(ctx context.Context, id uuid.UUID) ([]MemberDTO, error)
	Join(ctx context.Context, userID, groupID uuid.UUID) (*JoinResult, error)
	Locked(ctx context.Context) ([]GroupDTO, error)
	Complete(ctx context.Context, groupID uuid.UUID) (*GroupDTO, error)
	SeedSamples(ctx context.Context) (*SeedResult, error)
}

type service struct {
	db   *db.Client
	repo *Repository
	logg *logger.Logger
}

// NewService builds the group service over the shared DB client.
func NewService(client *db.Client, logg *logger.Logger) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("database client required")
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{db: client, repo: NewRepository(client.DB()), logg: logg}, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) (pagination.Page[GroupDTO], error) {
	cursor, err := pagination.ParseCursor(filter.Cursor)
	if err != nil {
		return pagination.Page[GroupDTO]{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	rows, err := s.repo.List(ctx, filter, cursor)
	if err != nil {
		return pagination.Page[GroupDTO]{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list groups")
	}
	return pagination.BuildPage(FromModels(rows), filter.Limit, func(g GroupDTO) pagination.Cursor {
		return pagination.Cursor{CreatedAt: g.CreatedAt, ID: g.ID}
	}), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*GroupDTO, error) {
	group, err := s.load(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	return FromModel(group), nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*GroupDTO, error) {
	if req.MaxMembers <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "max_members must be positive")
	}
	var createdBy *uuid.UUID
	if userID != uuid.Nil {
		createdBy = &userID
	}
	group, err := s.repo.Create(ctx, CreateGroupDTO{
		CarModel:   req.CarModel,
		Brand:      req.Brand,
		City:       req.City,
		ImageURL:   req.ImageURL,
		MaxMembers: req.MaxMembers,
		CreatedBy:  createdBy,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create group")
	}
	s.logg.Info(s.logg.WithGroupID(ctx, group.ID.String()), "group created")
	return FromModel(group), nil
}

func (s *service) Members(ctx context.Context, id uuid.UUID) ([]MemberDTO, error) {
	if _, err := s.load(ctx, s.repo, id); err != nil {
		return nil, err
	}
	rows, err := s.repo.ListMembers(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list members")
	}
	out := make([]MemberDTO, 0, len(rows))
	for i := range rows {
		out = append(out, MemberFromModel(&rows[i]))
	}
	return out, nil
}

// Join admits a paid user. Seat claiming is a single conditional UPDATE so
// concurrent joins can never exceed max_members.
func (s *service) Join(ctx context.Context, userID, groupID uuid.UUID) (*JoinResult, error) {
	var joined *models.Group
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		groupRepo := NewRepository(tx)

		payment, err := payments.NewRepository(tx).FindByUserAndGroup(ctx, userID, groupID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeForbidden, "payment required to join this group")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check payment")
		}

		if _, err := s.load(ctx, groupRepo, groupID); err != nil {
			return err
		}

		if _, err := groupRepo.FindMember(ctx, groupID, userID); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "already a member of this group")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check membership")
		}

		user, err := users.NewRepository(tx).FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeUnauthorized, "user no longer exists")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
		}

		claimed, err := groupRepo.ClaimSeat(ctx, groupID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "claim seat")
		}
		if !claimed {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "group is full")
		}

		if err := groupRepo.AddMember(ctx, &models.GroupMember{
			GroupID:   groupID,
			UserID:    userID,
			UserName:  user.Name,
			UserEmail: user.Email,
		}); err != nil {
			if db.IsUniqueViolation(err, "uq_group_members_group_user") {
				return pkgerrors.New(pkgerrors.CodeConflict, "already a member of this group")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "add member")
		}

		if _, err := preferences.NewRepository(tx).Upsert(ctx, preferences.UpsertDTO{
			GroupID:      groupID,
			UserID:       userID,
			UserName:     user.Name,
			CarModel:     payment.CarModel,
			Variant:      payment.Variant,
			Transmission: payment.Transmission,
			OnRoadPrice:  payment.OnRoadPrice,
		}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save preference")
		}

		joined, err = groupRepo.FindByID(ctx, groupID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload group")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logCtx := s.logg.WithGroupID(s.logg.WithUserID(ctx, userID.String()), groupID.String())
	if joined.Status == enums.GroupStatusLocked {
		s.logg.Info(logCtx, "group filled and locked")
	} else {
		s.logg.Info(logCtx, "member joined group")
	}

	return &JoinResult{
		Message:        joinedMessage,
		CurrentMembers: joined.CurrentMembers,
		Group:          FromModel(joined),
	}, nil
}

func (s *service) Locked(ctx context.Context) ([]GroupDTO, error) {
	rows, err := s.repo.ListByStatus(ctx, enums.GroupStatusLocked)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list locked groups")
	}
	return FromModels(rows), nil
}

func (s *service) Complete(ctx context.Context, groupID uuid.UUID) (*GroupDTO, error) {
	group, err := s.load(ctx, s.repo, groupID)
	if err != nil {
		return nil, err
	}
	moved, err := s.repo.TransitionStatus(ctx, groupID, []enums.GroupStatus{enums.GroupStatusNegotiation}, enums.GroupStatusCompleted)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "complete group")
	}
	if !moved {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "only groups in negotiation can be completed").
			WithDetails(map[string]any{"status": group.Status})
	}
	return s.Get(ctx, groupID)
}

func (s *service) load(ctx context.Context, repo *Repository, id uuid.UUID) (*models.Group, error) {
	group, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("group")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load group")
	}
	return group, nil
}
