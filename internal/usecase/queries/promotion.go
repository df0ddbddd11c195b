package queries

import (
	"context"
	"sort"
	"time"

	"parkspot/internal/domain/reservation"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/pkg/ptr"

	"github.com/google/uuid"
)

type ApplicablePromotionsInput struct {
	LocationID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
}

type PromotionQueries interface {
	// ListApplicable returns every currently active promotion with the
	// discount it would yield for the stay, applicable ones first, ranked by
	// potential discount.
	ListApplicable(ctx context.Context, in ApplicablePromotionsInput) ([]PromotionOption, error)
}

type promotionQueriesImpl struct {
	locations  LocationViewRepo
	promotions PromotionViewRepo
	pricer     StayPricer
	clk        clock.Clock
}

// StayPricer is the slice of the pricing evaluator this query needs.
type StayPricer interface {
	PriceStay(ctx context.Context, locationID uuid.UUID, stay reservation.Stay) (subtotalCents, dayPriceCents int64, err error)
}

func NewPromotionQueries(
	locations LocationViewRepo,
	promotions PromotionViewRepo,
	pricer StayPricer,
	clk clock.Clock,
) PromotionQueries {
	return &promotionQueriesImpl{
		locations:  locations,
		promotions: promotions,
		pricer:     pricer,
		clk:        clk,
	}
}

func (q *promotionQueriesImpl) ListApplicable(ctx context.Context, in ApplicablePromotionsInput) ([]PromotionOption, error) {
	stay, err := reservation.NewStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStay)
	}

	subtotal, dayPrice, err := q.pricer.PriceStay(ctx, in.LocationID, stay)
	if err != nil {
		return nil, err
	}

	now := q.clk.Now()
	snaps, err := q.promotions.FindActive(ctx, now)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list promotions")
	}

	options := make([]PromotionOption, 0, len(snaps))
	for _, snap := range snaps {
		promo, err := snap.ToDomain()
		if err != nil {
			return nil, errs.Wrap(err, "corrupt promotion row")
		}

		opt := PromotionOption{
			ID:                     promo.ID(),
			Code:                   promo.Code(),
			Type:                   promo.PromoType().String(),
			PotentialDiscountCents: promo.DiscountCents(subtotal, dayPrice),
			IsApplicable:           true,
		}
		if verr := promo.ValidateAt(now, subtotal); verr != nil {
			opt.IsApplicable = false
			opt.Reason = ptr.To(verr.Error())
		}
		options = append(options, opt)
	}

	sort.SliceStable(options, func(i, j int) bool {
		if options[i].IsApplicable != options[j].IsApplicable {
			return options[i].IsApplicable
		}
		if options[i].PotentialDiscountCents != options[j].PotentialDiscountCents {
			return options[i].PotentialDiscountCents > options[j].PotentialDiscountCents
		}
		return options[i].Code < options[j].Code
	})

	return options, nil
}
