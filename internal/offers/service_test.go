package offers

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/groupdrive-backend/internal/groups"
	"github.com/angelmondragon/groupdrive-backend/pkg/db"
	"github.com/angelmondragon/groupdrive-backend/pkg/db/dbtest"
	"github.com/angelmondragon/groupdrive-backend/pkg/db/models"
	"github.com/angelmondragon/groupdrive-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/groupdrive-backend/pkg/errors"
)

type fixture struct {
	svc    Service
	client *db.Client
	groups *groups.Repository
	offers *Repository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	client := dbtest.OpenClient(t)
	svc, err := NewService(client, nil)
	require.NoError(t, err)
	return fixture{svc: svc, client: client, groups: groups.NewRepository(client.DB()), offers: NewRepository(client.DB())}
}

func (f fixture) group(t *testing.T, status enums.GroupStatus, members ...uuid.UUID) *models.Group {
	t.Helper()
	ctx := context.Background()
	g, err := f.groups.Create(ctx, groups.CreateGroupDTO{
		CarModel: "Creta", Brand: "Hyundai", City: "Jaipur",
		MaxMembers: 5, CurrentMembers: len(members), Status: status,
	})
	require.NoError(t, err)
	for _, id := range members {
		require.NoError(t, f.groups.AddMember(ctx, &models.GroupMember{GroupID: g.ID, UserID: id, UserName: "m", UserEmail: "m@example.com"}))
	}
	return g
}

func offerReq(dealer string, price int64) CreateRequest {
	return CreateRequest{DealerName: dealer, Price: decimal.NewFromInt(price), DeliveryTime: "4 weeks", BonusItems: "mats"}
}

func requireCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed, "expected typed error, got %v", err)
	assert.Equal(t, code, typed.Code())
}

func (f fixture) votes(t *testing.T, offerID uuid.UUID) int {
	t.Helper()
	o, err := f.offers.FindByID(context.Background(), offerID)
	require.NoError(t, err)
	return o.Votes
}

func TestCreateOfferMovesGroupToNegotiation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	g := f.group(t, enums.GroupStatusLocked)

	offer, err := f.svc.Create(ctx, g.ID, offerReq("Jaipur Motors", 1_480_000))
	require.NoError(t, err)
	assert.Equal(t, "Jaipur Motors", offer.DealerName)
	assert.Zero(t, offer.Votes)

	stored, err := f.groups.FindByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.GroupStatusNegotiation, stored.Status)

	_, err = f.svc.Create(ctx, g.ID, offerReq("Pink City Hyundai", 1_470_000))
	require.NoError(t, err, "negotiating groups still accept offers")

	list, err := f.svc.List(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].Price.Equal(decimal.NewFromInt(1_480_000)))
}

func TestCreateOfferRejectsFormingGroup(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	g := f.group(t, enums.GroupStatusForming)

	_, err := f.svc.Create(ctx, g.ID, offerReq("Early Bird", 1_000_000))
	requireCode(t, err, pkgerrors.CodeStateConflict)

	_, err = f.svc.Create(ctx, uuid.New(), offerReq("Ghost", 1_000_000))
	requireCode(t, err, pkgerrors.CodeNotFound)

	_, err = f.svc.Create(ctx, g.ID, offerReq("Free", 0))
	requireCode(t, err, pkgerrors.CodeValidation)
}

func TestVoteLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice, bob := uuid.New(), uuid.New()
	g := f.group(t, enums.GroupStatusLocked, alice, bob)

	a, err := f.svc.Create(ctx, g.ID, offerReq("A", 1_400_000))
	require.NoError(t, err)
	b, err := f.svc.Create(ctx, g.ID, offerReq("B", 1_390_000))
	require.NoError(t, err)

	mine, err := f.svc.MyVote(ctx, alice, g.ID)
	require.NoError(t, err)
	assert.Nil(t, mine.OfferID)

	res, err := f.svc.Vote(ctx, alice, a.ID)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	_, err = f.svc.Vote(ctx, bob, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, f.votes(t, a.ID))

	res, err = f.svc.Vote(ctx, alice, a.ID)
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, 2, f.votes(t, a.ID), "re-voting the same offer is a no-op")

	_, err = f.svc.Vote(ctx, alice, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, f.votes(t, a.ID))
	assert.Equal(t, 1, f.votes(t, b.ID))

	mine, err = f.svc.MyVote(ctx, alice, g.ID)
	require.NoError(t, err)
	require.NotNil(t, mine.OfferID)
	assert.Equal(t, b.ID, *mine.OfferID)

	count, err := f.offers.CountVotes(ctx, g.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count, "one vote record per member")
}

func TestVoteRequiresMembershipAndOffer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	g := f.group(t, enums.GroupStatusLocked, uuid.New())
	offer, err := f.svc.Create(ctx, g.ID, offerReq("A", 1_400_000))
	require.NoError(t, err)

	_, err = f.svc.Vote(ctx, uuid.New(), offer.ID)
	requireCode(t, err, pkgerrors.CodeForbidden)

	_, err = f.svc.Vote(ctx, uuid.New(), uuid.New())
	requireCode(t, err, pkgerrors.CodeNotFound)
}

func TestMoveVoteOnlyFromExpectedOffer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := uuid.New()
	g := f.group(t, enums.GroupStatusLocked, alice)
	a, err := f.svc.Create(ctx, g.ID, offerReq("A", 1_400_000))
	require.NoError(t, err)
	b, err := f.svc.Create(ctx, g.ID, offerReq("B", 1_390_000))
	require.NoError(t, err)
	c, err := f.svc.Create(ctx, g.ID, offerReq("C", 1_380_000))
	require.NoError(t, err)

	_, err = f.svc.Vote(ctx, alice, a.ID)
	require.NoError(t, err)
	vote, err := f.offers.FindVote(ctx, g.ID, alice)
	require.NoError(t, err)

	moved, err := f.offers.MoveVote(ctx, vote.ID, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, moved)

	// a second writer that also read A must not move the vote again
	moved, err = f.offers.MoveVote(ctx, vote.ID, a.ID, c.ID)
	require.NoError(t, err)
	assert.False(t, moved)

	vote, err = f.offers.FindVote(ctx, g.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, b.ID, vote.OfferID)
}

func TestAdjustVotesReportsEmptyTally(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	g := f.group(t, enums.GroupStatusLocked)
	offer, err := f.svc.Create(ctx, g.ID, offerReq("A", 1_400_000))
	require.NoError(t, err)

	changed, err := f.offers.AdjustVotes(ctx, offer.ID, -1)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Zero(t, f.votes(t, offer.ID))

	changed, err = f.offers.AdjustVotes(ctx, offer.ID, 1)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1, f.votes(t, offer.ID))
}

func TestVoteMoveRollsBackWhenTallyDisagrees(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := uuid.New()
	g := f.group(t, enums.GroupStatusLocked, alice)
	a, err := f.svc.Create(ctx, g.ID, offerReq("A", 1_400_000))
	require.NoError(t, err)
	b, err := f.svc.Create(ctx, g.ID, offerReq("B", 1_390_000))
	require.NoError(t, err)

	_, err = f.svc.Vote(ctx, alice, a.ID)
	require.NoError(t, err)
	require.NoError(t, f.client.DB().Model(&models.DealerOffer{}).
		Where("id = ?", a.ID).UpdateColumn("votes", 0).Error)

	_, err = f.svc.Vote(ctx, alice, b.ID)
	requireCode(t, err, pkgerrors.CodeConflict)

	assert.Zero(t, f.votes(t, b.ID))
	vote, err := f.offers.FindVote(ctx, g.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, a.ID, vote.OfferID, "vote row is untouched after rollback")
}

func TestAnalytics(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice, bob, carol := uuid.New(), uuid.New(), uuid.New()
	g := f.group(t, enums.GroupStatusLocked, alice, bob, carol)

	a, err := f.svc.Create(ctx, g.ID, offerReq("A", 1_400_000))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, g.ID, offerReq("B", 1_390_000))
	require.NoError(t, err)
	_, err = f.svc.Vote(ctx, alice, a.ID)
	require.NoError(t, err)
	_, err = f.svc.Vote(ctx, bob, a.ID)
	require.NoError(t, err)

	summary, err := f.svc.Analytics(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, summary.Group.ID)
	assert.Equal(t, enums.GroupStatusNegotiation, summary.Group.Status)
	assert.EqualValues(t, 3, summary.MembersCount)
	assert.Len(t, summary.Offers, 2)
	assert.EqualValues(t, 2, summary.TotalVotes)

	_, err = f.svc.Analytics(ctx, uuid.New())
	requireCode(t, err, pkgerrors.CodeNotFound)
}
