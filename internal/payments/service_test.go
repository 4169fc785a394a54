package payments

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/angelmondragon/groupdrive-backend/internal/catalog"
	"github.com/angelmondragon/groupdrive-backend/internal/users"
	"github.com/angelmondragon/groupdrive-backend/pkg/db"
	"github.com/angelmondragon/groupdrive-backend/pkg/db/dbtest"
	"github.com/angelmondragon/groupdrive-backend/pkg/db/models"
	"github.com/angelmondragon/groupdrive-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/groupdrive-backend/pkg/errors"
	"github.com/angelmondragon/groupdrive-backend/pkg/metrics"
)

type stubGroups map[uuid.UUID]*models.Group

func (s stubGroups) FindByID(_ context.Context, id uuid.UUID) (*models.Group, error) {
	g, ok := s[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return g, nil
}

type fixture struct {
	svc    Service
	client *db.Client
	users  *users.Repository
	group  *models.Group
	reg    *prometheus.Registry
	userID uuid.UUID
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	client := dbtest.OpenClient(t)
	userRepo := users.NewRepository(client.DB())
	user, err := userRepo.Create(context.Background(), users.CreateUserDTO{Name: "Payer", Email: "payer@example.com", PasswordHash: "x"})
	require.NoError(t, err)

	group := &models.Group{ID: uuid.New(), Brand: "Tata", CarModel: "Nexon", City: "Pune", MaxMembers: 10, Status: enums.GroupStatusForming}
	resolver, err := catalog.NewResolver(catalog.ResolverParams{Secondary: catalog.NewStaticSource()})
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	svc, err := NewService(ServiceParams{
		DB:      client,
		Groups:  stubGroups{group.ID: group},
		Catalog: resolver,
		Metrics: metrics.NewPaymentMetrics(reg),
	})
	require.NoError(t, err)
	return fixture{svc: svc, client: client, users: userRepo, group: group, reg: reg, userID: user.ID}
}

func requireCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed, "expected typed error, got %v", err)
	assert.Equal(t, code, typed.Code())
}

func nexon() PayRequest {
	return PayRequest{CarModel: "Nexon", Variant: "XZ+", Transmission: "Manual"}
}

func TestPayChargesCatalogFee(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	res, err := f.svc.Pay(ctx, f.userID, f.group.ID, nexon())
	require.NoError(t, err)
	assert.EqualValues(t, 2_000, res.Amount)
	assert.EqualValues(t, 1_050_000, res.OnRoadPrice)
	assert.NotEqual(t, uuid.Nil, res.PaymentID)
	assert.NotEmpty(t, res.Message)

	stored, err := NewRepository(f.client.DB()).FindByUserAndGroup(ctx, f.userID, f.group.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.TransmissionManual, stored.Transmission)
	assert.Equal(t, "XZ+", stored.Variant)

	user, err := f.users.FindByID(ctx, f.userID)
	require.NoError(t, err)
	assert.True(t, user.IsPremium)

	status, err := f.svc.Status(ctx, f.userID, f.group.ID)
	require.NoError(t, err)
	assert.True(t, status.HasPaid)

	assert.Equal(t, 1.0, f.chargedCount(t, "2000"))
}

func (f fixture) chargedCount(t *testing.T, fee string) float64 {
	t.Helper()
	families, err := f.reg.Gather()
	require.NoError(t, err)
	for _, fam := range families {
		if fam.GetName() != "joining_fees_charged_total" {
			continue
		}
		for _, m := range fam.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "fee" && l.GetValue() == fee {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestPayRejectsSecondPayment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Pay(ctx, f.userID, f.group.ID, nexon())
	require.NoError(t, err)
	_, err = f.svc.Pay(ctx, f.userID, f.group.ID, nexon())
	requireCode(t, err, pkgerrors.CodeConflict)
}

func TestPayRejectsGroupsThatCannotBeJoined(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.group.Status = enums.GroupStatusLocked
	_, err := f.svc.Pay(ctx, f.userID, f.group.ID, nexon())
	requireCode(t, err, pkgerrors.CodeStateConflict)

	f.group.Status = enums.GroupStatusForming
	f.group.CurrentMembers = f.group.MaxMembers
	_, err = f.svc.Pay(ctx, f.userID, f.group.ID, nexon())
	requireCode(t, err, pkgerrors.CodeStateConflict)

	status, err := f.svc.Status(ctx, f.userID, f.group.ID)
	require.NoError(t, err)
	assert.False(t, status.HasPaid)

	user, err := f.users.FindByID(ctx, f.userID)
	require.NoError(t, err)
	assert.False(t, user.IsPremium, "no charge, no premium")
}

func TestPayValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Pay(ctx, f.userID, uuid.New(), nexon())
	requireCode(t, err, pkgerrors.CodeNotFound)

	req := nexon()
	req.Transmission = "manual"
	_, err = f.svc.Pay(ctx, f.userID, f.group.ID, req)
	requireCode(t, err, pkgerrors.CodeValidation)

	req = nexon()
	req.Variant = "XZ++"
	_, err = f.svc.Pay(ctx, f.userID, f.group.ID, req)
	requireCode(t, err, pkgerrors.CodeValidation)

	req = PayRequest{CarModel: "City", Variant: "V", Transmission: "Manual"}
	_, err = f.svc.Pay(ctx, f.userID, f.group.ID, req)
	requireCode(t, err, pkgerrors.CodeValidation)

	wrong := decimal.NewFromInt(1)
	req = nexon()
	req.OnRoadPrice = &wrong
	_, err = f.svc.Pay(ctx, f.userID, f.group.ID, req)
	requireCode(t, err, pkgerrors.CodeValidation)

	status, err := f.svc.Status(ctx, f.userID, f.group.ID)
	require.NoError(t, err)
	assert.False(t, status.HasPaid, "failed attempts must not record a payment")
}

func TestPayAcceptsMatchingClientPrice(t *testing.T) {
	f := newFixture(t)
	price := decimal.RequireFromString("1050000.00")
	req := nexon()
	req.OnRoadPrice = &price

	res, err := f.svc.Pay(context.Background(), f.userID, f.group.ID, req)
	require.NoError(t, err)
	assert.EqualValues(t, 2_000, res.Amount)
}
