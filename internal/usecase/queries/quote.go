package queries

import (
	"context"
	"time"

	"parkspot/internal/domain/pricing"
	"parkspot/internal/domain/reservation"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrLocationNotFound  = errs.New("location not found")
	ErrPromotionNotFound = errs.New("promotion not found")
	ErrInvalidPromotion  = errs.New("promotion not applicable")
	ErrInvalidStay       = errs.New("invalid stay interval")
)

type QuoteInput struct {
	LocationID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	PromoCode  *string
}

type QuoteQueries interface {
	GetQuote(ctx context.Context, in QuoteInput) (*QuoteView, error)
}

type LocationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.LocationSnapshot, error)
	FindRulesByLocation(ctx context.Context, locationID uuid.UUID) ([]shared.RuleSnapshot, error)
}

type AvailabilityViewRepo interface {
	// CountOverlapping counts capacity-consuming reservations intersecting
	// [start, end) at the location.
	CountOverlapping(ctx context.Context, locationID uuid.UUID, start, end time.Time) (int32, error)
}

type PromotionViewRepo interface {
	FindByCode(ctx context.Context, code string) (*shared.PromotionSnapshot, error)
	FindActive(ctx context.Context, now time.Time) ([]shared.PromotionSnapshot, error)
}

type quoteQueriesImpl struct {
	locations    LocationViewRepo
	availability AvailabilityViewRepo
	promotions   PromotionViewRepo
	evaluator    *pricing.Evaluator
	clk          clock.Clock
}

func NewQuoteQueries(
	locations LocationViewRepo,
	availability AvailabilityViewRepo,
	promotions PromotionViewRepo,
	evaluator *pricing.Evaluator,
	clk clock.Clock,
) QuoteQueries {
	return &quoteQueriesImpl{
		locations:    locations,
		availability: availability,
		promotions:   promotions,
		evaluator:    evaluator,
		clk:          clk,
	}
}

// GetQuote composes availability and price for a candidate stay. The result
// is advisory: nothing is held, and the committer re-derives every number
// from the same inputs at booking time.
func (q *quoteQueriesImpl) GetQuote(ctx context.Context, in QuoteInput) (*QuoteView, error) {
	stay, err := reservation.NewStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStay)
	}

	locSnap, err := q.locations.FindByID(ctx, in.LocationID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load location")
	}
	loc, err := locSnap.ToDomain()
	if err != nil {
		return nil, errs.Wrap(err, "corrupt location row")
	}

	ruleSnaps, err := q.locations.FindRulesByLocation(ctx, in.LocationID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load pricing rules")
	}
	rules, err := shared.RulesToDomain(ruleSnaps)
	if err != nil {
		return nil, errs.Wrap(err, "corrupt pricing rule row")
	}

	overlapping, err := q.availability.CountOverlapping(ctx, in.LocationID, stay.CheckIn(), stay.CheckOut())
	if err != nil {
		return nil, errs.Wrap(err, "failed to count overlapping reservations")
	}
	availableSpots := loc.TotalSpots() - overlapping
	if availableSpots < 0 {
		availableSpots = 0
	}

	breakdown := q.evaluator.Evaluate(loc, rules, stay)

	view := &QuoteView{
		LocationID:     loc.ID(),
		LocationName:   loc.Name(),
		CheckIn:        stay.CheckIn(),
		CheckOut:       stay.CheckOut(),
		Available:      loc.IsBookable() && availableSpots > 0,
		AvailableSpots: availableSpots,
		SubtotalCents:  breakdown.SubtotalCents,
		TaxCents:       breakdown.TaxCents,
		FeeCents:       breakdown.FeeCents,
		TotalCents:     breakdown.TotalCents,
		AppliedRuleIDs: breakdown.AppliedRuleIDs,
	}

	if in.PromoCode != nil && *in.PromoCode != "" {
		discount, err := q.priceWithPromotion(ctx, *in.PromoCode, breakdown)
		if err != nil {
			return nil, err
		}
		view.DiscountCents = discount
		view.TotalCents = breakdown.TotalCents - discount
		view.PromotionCode = in.PromoCode
	}

	return view, nil
}

func (q *quoteQueriesImpl) priceWithPromotion(ctx context.Context, code string, breakdown pricing.Breakdown) (int64, error) {
	snap, err := q.promotions.FindByCode(ctx, code)
	if err != nil {
		return 0, errs.Wrap(err, "failed to load promotion")
	}
	promo, err := snap.ToDomain()
	if err != nil {
		return 0, errs.Wrap(err, "corrupt promotion row")
	}
	if err := promo.ValidateAt(q.clk.Now(), breakdown.SubtotalCents); err != nil {
		return 0, errs.Mark(err, ErrInvalidPromotion)
	}
	return promo.DiscountCents(breakdown.SubtotalCents, breakdown.AverageDayPriceCents()), nil
}
