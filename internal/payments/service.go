package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/angelmondragon/groupdrive-backend/internal/fees"
	"github.com/angelmondragon/groupdrive-backend/internal/users"
	"github.com/angelmondragon/groupdrive-backend/pkg/db"
	"github.com/angelmondragon/groupdrive-backend/pkg/db/models"
	"github.com/angelmondragon/groupdrive-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/groupdrive-backend/pkg/errors"
	"github.com/angelmondragon/groupdrive-backend/pkg/logger"
	"github.com/angelmondragon/groupdrive-backend/pkg/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const paidMessage = "Payment successful! You can now join the group."

// Service handles the mock joining payment.
type Service interface {
	Pay(ctx context.Context, userID, groupID uuid.UUID, req PayRequest) (*PayResult, error)
	Status(ctx context.Context, userID, groupID uuid.UUID) (*PaymentStatus, error)
}

type groupLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Group, error)
}

type pricer interface {
	Price(ctx context.Context, brand, model, variant string, tx enums.Transmission) (int64, bool)
}

// ServiceParams wires the payment service.
type ServiceParams struct {
	DB      *db.Client
	Groups  groupLookup
	Catalog pricer
	// Fees overrides the default fee table.
	Fees    *fees.Table
	Metrics *metrics.PaymentMetrics
	Logger  *logger.Logger
}

type service struct {
	db      *db.Client
	repo    *Repository
	groups  groupLookup
	catalog pricer
	fees    *fees.Table
	metrics *metrics.PaymentMetrics
	logg    *logger.Logger
}

// NewService validates the params and builds the service.
func NewService(p ServiceParams) (Service, error) {
	if p.DB == nil {
		return nil, fmt.Errorf("database client required")
	}
	if p.Groups == nil {
		return nil, fmt.Errorf("group lookup required")
	}
	if p.Catalog == nil {
		return nil, fmt.Errorf("catalog required")
	}
	if p.Fees == nil {
		p.Fees = fees.Default
	}
	if p.Logger == nil {
		p.Logger = logger.Nop()
	}
	return &service{
		db:      p.DB,
		repo:    NewRepository(p.DB.DB()),
		groups:  p.Groups,
		catalog: p.Catalog,
		fees:    p.Fees,
		metrics: p.Metrics,
		logg:    p.Logger,
	}, nil
}

func (s *service) Pay(ctx context.Context, userID, groupID uuid.UUID, req PayRequest) (*PayResult, error) {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("group")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load group")
	}

	paid, err := s.repo.Exists(ctx, userID, groupID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check payment")
	}
	if paid {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "already paid for this group")
	}
	if group.Status != enums.GroupStatusForming {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "group is no longer accepting members")
	}
	if group.CurrentMembers >= group.MaxMembers {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "group is full")
	}

	sel, err := s.resolve(ctx, group.Brand, req)
	if err != nil {
		return nil, err
	}
	fee := s.fees.Fee(sel.price)

	var payment *models.Payment
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		created, err := NewRepository(tx).Create(ctx, CreatePaymentDTO{
			UserID:       userID,
			GroupID:      groupID,
			Amount:       fee,
			OnRoadPrice:  sel.price,
			CarModel:     sel.model,
			Variant:      sel.variant,
			Transmission: sel.transmission,
		})
		if err != nil {
			if db.IsUniqueViolation(err, "uq_payments_user_group") {
				return pkgerrors.New(pkgerrors.CodeConflict, "already paid for this group")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create payment")
		}
		if err := users.NewRepository(tx).MarkPremium(ctx, userID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mark premium")
		}
		payment = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveFee(fee)
	logCtx := s.logg.WithPaymentID(s.logg.WithGroupID(ctx, groupID.String()), payment.ID.String())
	s.logg.Info(s.logg.WithFields(logCtx, map[string]any{
		"amount":        fee,
		"on_road_price": sel.price,
	}), "joining fee charged")

	return &PayResult{
		Message:     paidMessage,
		PaymentID:   payment.ID,
		Amount:      payment.Amount,
		OnRoadPrice: payment.OnRoadPrice,
	}, nil
}

func (s *service) Status(ctx context.Context, userID, groupID uuid.UUID) (*PaymentStatus, error) {
	paid, err := s.repo.Exists(ctx, userID, groupID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check payment")
	}
	return &PaymentStatus{HasPaid: paid}, nil
}

type selection struct {
	model        string
	variant      string
	transmission enums.Transmission
	price        int64
}

func (s *service) resolve(ctx context.Context, brand string, req PayRequest) (selection, error) {
	model := strings.TrimSpace(req.CarModel)
	variant := strings.TrimSpace(req.Variant)
	tx, err := enums.ParseTransmission(strings.TrimSpace(req.Transmission))
	if err != nil {
		return selection{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid transmission").
			WithDetails(map[string]any{"transmission": req.Transmission})
	}

	price, ok := s.catalog.Price(ctx, brand, model, variant, tx)
	if !ok {
		return selection{}, pkgerrors.New(pkgerrors.CodeValidation, "selected car is not available").
			WithDetails(map[string]any{"brand": brand, "car_model": model, "variant": variant, "transmission": tx})
	}

	if req.OnRoadPrice != nil && !req.OnRoadPrice.Equal(decimal.NewFromInt(price)) {
		return selection{}, pkgerrors.New(pkgerrors.CodeValidation, "on_road_price does not match the catalog price").
			WithDetails(map[string]any{"expected": price})
	}

	return selection{model: model, variant: variant, transmission: tx, price: price}, nil
}
