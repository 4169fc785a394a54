package offers

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/groupdrive-backend/internal/groups"
	"github.com/angelmondragon/groupdrive-backend/pkg/db"
	"github.com/angelmondragon/groupdrive-backend/pkg/db/models"
	"github.com/angelmondragon/groupdrive-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/groupdrive-backend/pkg/errors"
	"github.com/angelmondragon/groupdrive-backend/pkg/logger"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	votedMessage  = "Vote recorded successfully"
	unchangedVote = "Vote already recorded for this offer"
)

func voteRaceError() error {
	return pkgerrors.New(pkgerrors.CodeConflict, "vote changed concurrently, retry")
}

// Service covers dealer offers, member voting and the admin summary.
type Service interface {
	Create(ctx context.Context, groupID uuid.UUID, req CreateRequest) (*OfferDTO, error)
	List(ctx context.Context, groupID uuid.UUID) ([]OfferDTO, error)
	Vote(ctx context.Context, userID, offerID uuid.UUID) (*VoteResult, error)
	MyVote(ctx context.Context, userID, groupID uuid.UUID) (*MyVote, error)
	Analytics(ctx context.Context, groupID uuid.UUID) (*Analytics, error)
}

type service struct {
	db     *db.Client
	repo   *Repository
	groups *groups.Repository
	logg   *logger.Logger
}

// NewService builds the offers service over the shared DB client.
func NewService(client *db.Client, logg *logger.Logger) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("database client required")
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{
		db:     client,
		repo:   NewRepository(client.DB()),
		groups: groups.NewRepository(client.DB()),
		logg:   logg,
	}, nil
}

// Create records an offer for a locked or negotiating group and moves a
// locked group into negotiation.
func (s *service) Create(ctx context.Context, groupID uuid.UUID, req CreateRequest) (*OfferDTO, error) {
	if !req.Price.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
	}

	offer := req.toModel(groupID)
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		groupRepo := groups.NewRepository(tx)
		group, err := loadGroup(ctx, groupRepo, groupID)
		if err != nil {
			return err
		}
		if !group.Status.AcceptsOffers() {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "offers can only be added to locked groups").
				WithDetails(map[string]any{"status": group.Status})
		}
		if err := NewRepository(tx).Create(ctx, offer); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create offer")
		}
		if _, err := groupRepo.TransitionStatus(ctx, groupID,
			[]enums.GroupStatus{enums.GroupStatusLocked}, enums.GroupStatusNegotiation); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "start negotiation")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logCtx := s.logg.WithOfferID(s.logg.WithGroupID(ctx, groupID.String()), offer.ID.String())
	s.logg.Info(s.logg.WithField(logCtx, "dealer", offer.DealerName), "dealer offer created")
	dto := FromModel(offer)
	return &dto, nil
}

func (s *service) List(ctx context.Context, groupID uuid.UUID) ([]OfferDTO, error) {
	if _, err := loadGroup(ctx, s.groups, groupID); err != nil {
		return nil, err
	}
	rows, err := s.repo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list offers")
	}
	return FromModels(rows), nil
}

// Vote gives the user's single vote in the offer's group to offerID. A
// previous vote for another offer is moved; re-voting the same offer
// changes nothing.
func (s *service) Vote(ctx context.Context, userID, offerID uuid.UUID) (*VoteResult, error) {
	offer, err := s.repo.FindByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("offer")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load offer")
	}

	if _, err := s.groups.FindMember(ctx, offer.GroupID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, "only group members can vote")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check membership")
	}

	result := &VoteResult{Message: votedMessage, OfferID: offerID, Changed: true}
	var previous uuid.UUID
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		existing, err := repo.FindVote(ctx, offer.GroupID, userID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := repo.CreateVote(ctx, &models.Vote{GroupID: offer.GroupID, UserID: userID, OfferID: offerID}); err != nil {
				if db.IsUniqueViolation(err, "uq_votes_group_user") {
					return voteRaceError()
				}
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "record vote")
			}
		case err != nil:
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vote")
		case existing.OfferID == offerID:
			result.Message = unchangedVote
			result.Changed = false
			return nil
		default:
			previous = existing.OfferID
			moved, err := repo.MoveVote(ctx, existing.ID, existing.OfferID, offerID)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "move vote")
			}
			if !moved {
				return voteRaceError()
			}
			released, err := repo.AdjustVotes(ctx, existing.OfferID, -1)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "release previous vote")
			}
			if !released {
				return voteRaceError()
			}
		}

		counted, err := repo.AdjustVotes(ctx, offerID, 1)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count vote")
		}
		if !counted {
			return pkgerrors.NotFound("offer")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if previous != uuid.Nil {
		logCtx := s.logg.WithOfferID(s.logg.WithGroupID(ctx, offer.GroupID.String()), offerID.String())
		s.logg.Info(s.logg.WithField(logCtx, "from_offer_id", previous.String()), "vote moved")
	}
	return result, nil
}

func (s *service) MyVote(ctx context.Context, userID, groupID uuid.UUID) (*MyVote, error) {
	vote, err := s.repo.FindVote(ctx, groupID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &MyVote{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load vote")
	}
	id := vote.OfferID
	return &MyVote{OfferID: &id}, nil
}

// Analytics loads the group summary with the independent queries running
// concurrently.
func (s *service) Analytics(ctx context.Context, groupID uuid.UUID) (*Analytics, error) {
	var (
		group   *models.Group
		members int64
		offers  []models.DealerOffer
		votes   int64
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		group, err = loadGroup(egCtx, s.groups, groupID)
		return err
	})
	eg.Go(func() error {
		var err error
		if members, err = s.groups.CountMembers(egCtx, groupID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count members")
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		if offers, err = s.repo.ListByGroup(egCtx, groupID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list offers")
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		if votes, err = s.repo.CountVotes(egCtx, groupID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count votes")
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &Analytics{
		Group:        groups.FromModel(group),
		MembersCount: members,
		Offers:       FromModels(offers),
		TotalVotes:   votes,
	}, nil
}

func loadGroup(ctx context.Context, repo *groups.Repository, id uuid.UUID) (*models.Group, error) {
	group, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("group")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load group")
	}
	return group, nil
}
