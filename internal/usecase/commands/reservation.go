package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"parkspot/internal/domain/location"
	"parkspot/internal/domain/pricing"
	"parkspot/internal/domain/promotion"
	"parkspot/internal/domain/reservation"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/pkg/jwt"
	"parkspot/internal/usecase/queries"
	"parkspot/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrLocationNotFound        = errs.New("location not found")
	ErrLocationNotBookable     = errs.New("location is not bookable")
	ErrSoldOut                 = errs.New("no spots available for the requested interval")
	ErrPromotionNotFound       = errs.New("promotion not found")
	ErrInvalidPromotion        = errs.New("invalid promotion")
	ErrInvalidStay             = errs.New("invalid stay interval")
	ErrDuplicateRequest        = errs.New("idempotency key reused with different request")
	ErrIdempotencyInProgress   = errs.New("idempotency in progress")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrForbidden               = errs.New("actor may not modify this resource")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// quoteDivergenceTolerance bounds how far a client-quoted total may drift
// from the authoritative recomputation before we log it.
const quoteDivergenceTolerance = 0.01

type CreateReservationInput struct {
	LocationID       uuid.UUID `json:"location_id"`
	CheckIn          time.Time `json:"check_in"`
	CheckOut         time.Time `json:"check_out"`
	PromoCode        *string   `json:"promo_code,omitempty"`
	QuotedTotalCents *int64    `json:"quoted_total_cents,omitempty"`
}

type CreateReservationResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, in CreateReservationInput, userID uuid.UUID, idempotencyKey uuid.UUID) (*CreateReservationResult, error)
	CancelReservation(ctx context.Context, actor uuid.UUID, role jwt.Role, id uuid.UUID) error
	CompleteReservation(ctx context.Context, role jwt.Role, id uuid.UUID) error
}

type reservationUseCaseImpl struct {
	uow                shared.UnitOfWork
	evaluator          *pricing.Evaluator
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	evaluator *pricing.Evaluator,
	reservationQueries queries.ReservationQueries,
	clk clock.Clock,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:                uow,
		evaluator:          evaluator,
		reservationQueries: reservationQueries,
		clock:              clk,
	}
}

func (r *reservationUseCaseImpl) CreateReservation(
	ctx context.Context,
	in CreateReservationInput,
	userID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*CreateReservationResult, error) {
	requestHash := r.calculateRequestHash(in)
	expiresAt := r.clock.Now().Add(24 * time.Hour)

	existingResult, err := r.handleIdempotency(ctx, idempotencyKey, userID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if existingResult != nil {
		return &CreateReservationResult{
			Reservation: existingResult,
			IsReplayed:  true,
		}, nil
	}

	reservationView, err := r.createNewReservation(ctx, in, userID, idempotencyKey)
	if err != nil {
		return nil, err
	}
	return &CreateReservationResult{
		Reservation: reservationView,
		IsReplayed:  false,
	}, nil
}

func (r *reservationUseCaseImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.ReservationView, error) {
	var claimed bool
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Idempotency().TryInsert(ctx, idempotencyKey, userID, "POST /reservations", requestHash, expiresAt)
		if err != nil {
			return err
		}
		claimed = inserted
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if claimed {
		// The key is ours; proceed to create.
		return nil, nil
	}

	existing, err := r.uow.CommandReads().IdempotencyByKey(ctx, idempotencyKey, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case "completed":
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateRequest
		}
		if existing.ResultReservationID != nil {
			// System-level access for idempotent replay
			return r.reservationQueries.GetByIDSystem(ctx, *existing.ResultReservationID)
		}
		return nil, errs.New("completed request missing result reservation ID")

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateRequest
		}
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (r *reservationUseCaseImpl) createNewReservation(
	ctx context.Context,
	in CreateReservationInput,
	userID, idempotencyKey uuid.UUID,
) (*queries.ReservationView, error) {
	stay, err := reservation.NewStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStay)
	}

	loc, err := r.validateAndGetLocation(ctx, in.LocationID)
	if err != nil {
		return nil, err
	}

	breakdown, err := r.priceStay(ctx, loc, stay)
	if err != nil {
		return nil, err
	}

	promo, discount, err := r.validateAndGetPromotion(ctx, in.PromoCode, breakdown)
	if err != nil {
		return nil, err
	}

	r.warnOnQuoteDivergence(in, breakdown.TotalCents-discount)

	var promoID *uuid.UUID
	var promoCode *string
	if promo != nil {
		id := promo.ID()
		code := promo.Code()
		promoID = &id
		promoCode = &code
	}

	res, err := reservation.NewReservation(
		in.LocationID,
		userID,
		stay,
		reservation.NewMoney(breakdown.SubtotalCents),
		reservation.NewMoney(discount),
		reservation.NewMoney(breakdown.TaxCents),
		reservation.NewMoney(breakdown.FeeCents),
		promoID,
		promoCode,
		r.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	return r.commitReservation(ctx, loc, res, promo, idempotencyKey, userID)
}

// commitReservation runs the one serializable transaction of the write path:
// the capacity re-count, the insert, the promotion redemption and the
// idempotency completion either all land or none do.
func (r *reservationUseCaseImpl) commitReservation(
	ctx context.Context,
	loc *location.Location,
	res *reservation.Reservation,
	promo *promotion.Promotion,
	idempotencyKey, userID uuid.UUID,
) (*queries.ReservationView, error) {
	err := r.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		overlapping, err := tx.Reads().CountOverlapping(ctx, res.LocationID(), res.Stay().CheckIn(), res.Stay().CheckOut())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if overlapping >= loc.TotalSpots() {
			return ErrSoldOut
		}

		if err := tx.Reservations().Create(ctx, res); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if promo != nil {
			if err := tx.Promotions().Redeem(ctx, promo.ID()); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return errs.Mark(promotion.ErrUsageExhausted, ErrInvalidPromotion)
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		if err := r.createNotificationJob(ctx, tx, res.ID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		responseHash := r.calculateIDHash(res.ID())
		if err := tx.Idempotency().UpdateStatusCompleted(ctx, idempotencyKey, userID, responseHash, res.ID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: serve the committed row from the read store
	view, err := r.reservationQueries.GetByIDSystem(ctx, res.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (r *reservationUseCaseImpl) CancelReservation(ctx context.Context, actor uuid.UUID, role jwt.Role, id uuid.UUID) error {
	snap, err := r.uow.CommandReads().ReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.UserID != actor && !role.IsStaff() {
		return ErrForbidden
	}

	res, err := reservationFromSnapshot(snap)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	if err := res.Cancel(); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().UpdateStatus(ctx, id, res.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (r *reservationUseCaseImpl) CompleteReservation(ctx context.Context, role jwt.Role, id uuid.UUID) error {
	if !role.IsStaff() {
		return ErrForbidden
	}

	snap, err := r.uow.CommandReads().ReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	res, err := reservationFromSnapshot(snap)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	if err := res.Complete(r.clock.Now()); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().UpdateStatus(ctx, id, res.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (r *reservationUseCaseImpl) validateAndGetLocation(ctx context.Context, locationID uuid.UUID) (*location.Location, error) {
	snap, err := r.uow.CommandReads().LocationByID(ctx, locationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, errs.Mark(err, ErrLocationNotFound)
	}

	loc, err := snap.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if !loc.IsBookable() {
		return nil, ErrLocationNotBookable
	}
	return loc, nil
}

func (r *reservationUseCaseImpl) priceStay(ctx context.Context, loc *location.Location, stay reservation.Stay) (pricing.Breakdown, error) {
	ruleSnaps, err := r.uow.CommandReads().PricingRulesByLocation(ctx, loc.ID())
	if err != nil {
		return pricing.Breakdown{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	rules, err := shared.RulesToDomain(ruleSnaps)
	if err != nil {
		return pricing.Breakdown{}, errs.Mark(err, ErrDomainValidation)
	}
	return r.evaluator.Evaluate(loc, rules, stay), nil
}

func (r *reservationUseCaseImpl) validateAndGetPromotion(
	ctx context.Context,
	promoCode *string,
	breakdown pricing.Breakdown,
) (*promotion.Promotion, int64, error) {
	if promoCode == nil || *promoCode == "" {
		return nil, 0, nil
	}

	snap, err := r.uow.CommandReads().PromotionByCode(ctx, *promoCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, 0, ErrPromotionNotFound
		}
		return nil, 0, errs.Mark(err, ErrPromotionNotFound)
	}

	promo, err := snap.ToDomain()
	if err != nil {
		return nil, 0, errs.Mark(err, ErrInvalidPromotion)
	}
	if err := promo.ValidateAt(r.clock.Now(), breakdown.SubtotalCents); err != nil {
		return nil, 0, errs.Mark(err, ErrInvalidPromotion)
	}

	return promo, promo.DiscountCents(breakdown.SubtotalCents, breakdown.AverageDayPriceCents()), nil
}

// warnOnQuoteDivergence logs when the client-observed quote drifted from the
// recomputed total, e.g. a rule changed between quote and commit. The server
// total always wins.
func (r *reservationUseCaseImpl) warnOnQuoteDivergence(in CreateReservationInput, totalCents int64) {
	if in.QuotedTotalCents == nil || totalCents == 0 {
		return
	}
	diff := float64(*in.QuotedTotalCents-totalCents) / float64(totalCents)
	if diff < 0 {
		diff = -diff
	}
	if diff > quoteDivergenceTolerance {
		slog.Warn("quoted total diverged from committed total",
			"location_id", in.LocationID,
			"quoted_cents", *in.QuotedTotalCents,
			"committed_cents", totalCents,
		)
	}
}

func (r *reservationUseCaseImpl) createNotificationJob(ctx context.Context, tx shared.Tx, reservationID uuid.UUID) error {
	payload, err := json.Marshal(map[string]any{
		"reservation_id": reservationID,
		"type":           "reservation_confirmed",
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, "email", "reservation_confirmed", payload, r.clock.Now())
}

func (r *reservationUseCaseImpl) calculateRequestHash(in CreateReservationInput) string {
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func (r *reservationUseCaseImpl) calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}

func reservationFromSnapshot(snap *shared.ReservationSnapshot) (*reservation.Reservation, error) {
	stay, err := reservation.NewStay(snap.CheckIn, snap.CheckOut)
	if err != nil {
		return nil, err
	}
	status, err := reservation.ParseStatus(snap.Status)
	if err != nil {
		return nil, err
	}
	zero := reservation.NewMoney(0)
	return reservation.ReconstructReservation(
		snap.ID, snap.LocationID, snap.UserID,
		stay, status,
		zero, zero, zero, zero, reservation.NewMoney(snap.TotalCents),
		nil, nil,
		time.Time{}, time.Time{},
	), nil
}
