//go:build unit

package commands_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"
	"time"

	"parkspot/internal/domain/pricing"
	"parkspot/internal/domain/promotion"
	"parkspot/internal/domain/reservation"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/pkg/ptr"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"
	"parkspot/internal/usecase/shared"
	"parkspot/tests/common/builder"
	queriesmock "parkspot/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeStore backs an in-memory UnitOfWork so the committer's transaction
// ordering can be observed without a database.
type fakeStore struct {
	location    *shared.LocationSnapshot
	rules       []shared.RuleSnapshot
	promotion   *shared.PromotionSnapshot
	overlapping int32
	redeemErr   error

	idempotency  map[uuid.UUID]*shared.IdempotencyRecord
	reservations map[uuid.UUID]*reservation.Reservation
	redeemed     int
	jobs         int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		idempotency:  make(map[uuid.UUID]*shared.IdempotencyRecord),
		reservations: make(map[uuid.UUID]*reservation.Reservation),
	}
}

type fakeUoW struct{ store *fakeStore }

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct{ store *fakeStore }

func (t *fakeTx) Reservations() shared.ReservationRepository { return &fakeReservationRepo{t.store} }
func (t *fakeTx) Promotions() shared.PromotionRepository     { return &fakePromotionRepo{t.store} }
func (t *fakeTx) Disputes() shared.DisputeRepository         { return nil }
func (t *fakeTx) Refunds() shared.RefundRepository           { return nil }
func (t *fakeTx) AuditLog() shared.AuditRepository           { return nil }
func (t *fakeTx) Idempotency() shared.IdempotencyRepository  { return &fakeIdempotencyRepo{t.store} }
func (t *fakeTx) Notifications() shared.NotificationRepository {
	return &fakeNotificationRepo{t.store}
}
func (t *fakeTx) Reads() shared.CommandReads { return &fakeReads{store: t.store} }

type fakeReads struct{ store *fakeStore }

func (r *fakeReads) LocationByID(_ context.Context, id uuid.UUID) (*shared.LocationSnapshot, error) {
	if r.store.location == nil || r.store.location.ID != id {
		return nil, infra.WrapRepoErr("location not found", nil, infra.KindNotFound)
	}
	return r.store.location, nil
}

func (r *fakeReads) PricingRulesByLocation(_ context.Context, _ uuid.UUID) ([]shared.RuleSnapshot, error) {
	return r.store.rules, nil
}

func (r *fakeReads) PromotionByCode(_ context.Context, code string) (*shared.PromotionSnapshot, error) {
	if r.store.promotion == nil || r.store.promotion.Code != code {
		return nil, infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound)
	}
	return r.store.promotion, nil
}

func (r *fakeReads) CountOverlapping(_ context.Context, _ uuid.UUID, _, _ time.Time) (int32, error) {
	return r.store.overlapping, nil
}

func (r *fakeReads) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	res, ok := r.store.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return &shared.ReservationSnapshot{
		ID:         res.ID(),
		LocationID: res.LocationID(),
		UserID:     res.UserID(),
		Status:     res.Status().String(),
		CheckIn:    res.Stay().CheckIn(),
		CheckOut:   res.Stay().CheckOut(),
		TotalCents: res.Total().Cents(),
	}, nil
}

func (r *fakeReads) DisputeByID(_ context.Context, _ uuid.UUID) (*shared.DisputeSnapshot, error) {
	return nil, infra.WrapRepoErr("dispute not found", nil, infra.KindNotFound)
}

func (r *fakeReads) RefundByID(_ context.Context, _ uuid.UUID) (*shared.RefundSnapshot, error) {
	return nil, infra.WrapRepoErr("refund not found", nil, infra.KindNotFound)
}

func (r *fakeReads) IdempotencyByKey(_ context.Context, key, _ uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.store.idempotency[key]
	if !ok {
		return nil, infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return rec, nil
}

type fakeReservationRepo struct{ store *fakeStore }

func (r *fakeReservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	r.store.reservations[res.ID()] = res
	return nil
}

func (r *fakeReservationRepo) UpdateStatus(_ context.Context, _ uuid.UUID, _ reservation.Status) error {
	return nil
}

type fakePromotionRepo struct{ store *fakeStore }

func (r *fakePromotionRepo) Redeem(_ context.Context, _ uuid.UUID) error {
	if r.store.redeemErr != nil {
		return r.store.redeemErr
	}
	r.store.redeemed++
	return nil
}

type fakeIdempotencyRepo struct{ store *fakeStore }

func (r *fakeIdempotencyRepo) TryInsert(_ context.Context, key, userID uuid.UUID, _, requestHash string, expiresAt time.Time) (bool, error) {
	if _, ok := r.store.idempotency[key]; ok {
		return false, nil
	}
	r.store.idempotency[key] = &shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Status:      "processing",
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r *fakeIdempotencyRepo) UpdateStatusCompleted(_ context.Context, key, _ uuid.UUID, _ string, resultReservationID uuid.UUID) error {
	rec, ok := r.store.idempotency[key]
	if !ok {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	rec.Status = "completed"
	rec.ResultReservationID = &resultReservationID
	return nil
}

type fakeNotificationRepo struct{ store *fakeStore }

func (r *fakeNotificationRepo) CreateJob(_ context.Context, _, _ string, _ []byte, _ time.Time) error {
	r.store.jobs++
	return nil
}

func hashOf(t *testing.T, in commands.CreateReservationInput) string {
	t.Helper()
	data, err := json.Marshal(in)
	require.NoError(t, err)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func TestCreateReservation(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	checkIn := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 2)
	userID := uuid.New()
	idempotencyKey := uuid.New()

	type fixture struct {
		store      *fakeStore
		resQueries *queriesmock.MockReservationQueries
		sut        commands.ReservationCommands
	}

	newCommitFixture := func(t *testing.T) *fixture {
		t.Helper()
		ctrl := gomock.NewController(t)
		store := newFakeStore()
		store.location = builder.NewLocationBuilder().BuildSnapshot()
		resQueries := queriesmock.NewMockReservationQueries(ctrl)
		evaluator := pricing.NewEvaluator(pricing.FlatRatePolicy{RateBasisPoints: 800, ServiceFeeCents: 300})
		return &fixture{
			store:      store,
			resQueries: resQueries,
			sut:        commands.NewReservationUseCase(&fakeUoW{store}, evaluator, resQueries, clock.NewMockClock(now)),
		}
	}

	input := func(f *fixture) commands.CreateReservationInput {
		return commands.CreateReservationInput{
			LocationID: f.store.location.ID,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
		}
	}

	// serveCommittedView answers GetByIDSystem from whatever the fake
	// transaction persisted.
	serveCommittedView := func(f *fixture) {
		f.resQueries.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
				res, ok := f.store.reservations[id]
				if !ok {
					return nil, queries.ErrReservationNotFound
				}
				return &queries.ReservationView{
					ID:            res.ID(),
					LocationID:    res.LocationID(),
					UserID:        res.UserID(),
					CheckIn:       res.Stay().CheckIn(),
					CheckOut:      res.Stay().CheckOut(),
					Status:        res.Status().String(),
					SubtotalCents: res.Subtotal().Cents(),
					DiscountCents: res.Discount().Cents(),
					TaxCents:      res.Tax().Cents(),
					FeeCents:      res.Fee().Cents(),
					TotalCents:    res.Total().Cents(),
					PromotionCode: res.PromotionCode(),
				}, nil
			})
	}

	t.Run("never-seen key creates and confirms the reservation", func(t *testing.T) {
		f := newCommitFixture(t)
		serveCommittedView(f)

		got, err := f.sut.CreateReservation(context.Background(), input(f), userID, idempotencyKey)

		require.NoError(t, err)
		assert.False(t, got.IsReplayed)
		assert.Equal(t, string(reservation.StatusConfirmed), got.Reservation.Status)
		assert.Equal(t, int64(5000), got.Reservation.SubtotalCents)
		assert.Equal(t, int64(5700), got.Reservation.TotalCents)

		require.Len(t, f.store.reservations, 1)
		assert.Equal(t, 1, f.store.jobs)
		rec := f.store.idempotency[idempotencyKey]
		require.NotNil(t, rec)
		assert.Equal(t, "completed", rec.Status)
		require.NotNil(t, rec.ResultReservationID)
		assert.Equal(t, got.Reservation.ID, *rec.ResultReservationID)
	})

	t.Run("valid promotion is redeemed inside the commit", func(t *testing.T) {
		f := newCommitFixture(t)
		f.store.promotion = builder.NewPromotionBuilder().
			WithValidity(now.Add(-time.Hour), now.AddDate(0, 1, 0)).
			BuildSnapshot()
		serveCommittedView(f)

		in := input(f)
		in.PromoCode = ptr.To("SAVE20")
		got, err := f.sut.CreateReservation(context.Background(), in, userID, idempotencyKey)

		require.NoError(t, err)
		// 20% of 5000 capped at 1000
		assert.Equal(t, int64(1000), got.Reservation.DiscountCents)
		assert.Equal(t, int64(4700), got.Reservation.TotalCents)
		assert.Equal(t, 1, f.store.redeemed)
	})

	t.Run("completed key replays the stored result", func(t *testing.T) {
		f := newCommitFixture(t)
		in := input(f)
		storedID := uuid.New()
		f.store.idempotency[idempotencyKey] = &shared.IdempotencyRecord{
			Key:                 idempotencyKey,
			UserID:              userID,
			Status:              "completed",
			RequestHash:         hashOf(t, in),
			ResultReservationID: &storedID,
		}
		stored := builder.NewReservationBuilder().WithUserID(userID).BuildView()
		stored.ID = storedID
		f.resQueries.EXPECT().GetByIDSystem(gomock.Any(), storedID).Return(stored, nil)

		got, err := f.sut.CreateReservation(context.Background(), in, userID, idempotencyKey)

		require.NoError(t, err)
		assert.True(t, got.IsReplayed)
		assert.Equal(t, storedID, got.Reservation.ID)
		assert.Empty(t, f.store.reservations, "replay must not create a second reservation")
	})

	t.Run("key still processing conflicts", func(t *testing.T) {
		f := newCommitFixture(t)
		in := input(f)
		f.store.idempotency[idempotencyKey] = &shared.IdempotencyRecord{
			Key:         idempotencyKey,
			UserID:      userID,
			Status:      "processing",
			RequestHash: hashOf(t, in),
		}

		_, err := f.sut.CreateReservation(context.Background(), in, userID, idempotencyKey)

		assert.ErrorIs(t, err, commands.ErrIdempotencyInProgress)
		assert.Empty(t, f.store.reservations)
	})

	t.Run("key reused with a different payload is rejected", func(t *testing.T) {
		for _, status := range []string{"processing", "completed"} {
			f := newCommitFixture(t)
			f.store.idempotency[idempotencyKey] = &shared.IdempotencyRecord{
				Key:         idempotencyKey,
				UserID:      userID,
				Status:      status,
				RequestHash: "different-request",
			}

			_, err := f.sut.CreateReservation(context.Background(), input(f), userID, idempotencyKey)

			assert.ErrorIs(t, err, commands.ErrDuplicateRequest, "status %s", status)
		}
	})

	t.Run("sold out when overlapping stays reach capacity", func(t *testing.T) {
		f := newCommitFixture(t)
		f.store.overlapping = f.store.location.TotalSpots

		_, err := f.sut.CreateReservation(context.Background(), input(f), userID, idempotencyKey)

		assert.ErrorIs(t, err, commands.ErrSoldOut)
		assert.Empty(t, f.store.reservations)
		assert.Equal(t, "processing", f.store.idempotency[idempotencyKey].Status)
		assert.Zero(t, f.store.jobs)
	})

	t.Run("redeem conflict surfaces as an exhausted promotion", func(t *testing.T) {
		f := newCommitFixture(t)
		f.store.promotion = builder.NewPromotionBuilder().
			WithValidity(now.Add(-time.Hour), now.AddDate(0, 1, 0)).
			BuildSnapshot()
		f.store.redeemErr = infra.WrapRepoErr("promotion usage exhausted", nil, infra.KindConflict)

		in := input(f)
		in.PromoCode = ptr.To("SAVE20")
		_, err := f.sut.CreateReservation(context.Background(), in, userID, idempotencyKey)

		assert.True(t, errs.Is(err, commands.ErrInvalidPromotion))
		assert.True(t, errs.Is(err, promotion.ErrUsageExhausted))
		assert.Equal(t, "processing", f.store.idempotency[idempotencyKey].Status)
		assert.Zero(t, f.store.jobs)
	})

	t.Run("unknown location fails before claiming capacity", func(t *testing.T) {
		f := newCommitFixture(t)
		in := input(f)
		in.LocationID = uuid.New()

		_, err := f.sut.CreateReservation(context.Background(), in, userID, idempotencyKey)

		assert.ErrorIs(t, err, commands.ErrLocationNotFound)
		assert.Empty(t, f.store.reservations)
	})

	t.Run("reversed interval is rejected", func(t *testing.T) {
		f := newCommitFixture(t)
		in := input(f)
		in.CheckIn, in.CheckOut = in.CheckOut, in.CheckIn

		_, err := f.sut.CreateReservation(context.Background(), in, userID, idempotencyKey)

		assert.True(t, errs.Is(err, commands.ErrInvalidStay))
	})
}
