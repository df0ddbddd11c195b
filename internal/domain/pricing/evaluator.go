package pricing

import (
	"time"

	"parkspot/internal/domain/location"
	"parkspot/internal/domain/reservation"

	"github.com/google/uuid"
)

const secondsPerDay = 24 * 60 * 60

// Breakdown is the deterministic price of a stay before any promotion.
// Identical inputs always produce an identical Breakdown; dispute
// reconciliation depends on this.
type Breakdown struct {
	SubtotalCents  int64
	TaxCents       int64
	FeeCents       int64
	TotalCents     int64
	AppliedRuleIDs []uuid.UUID
	daySeconds     int64
}

// AverageDayPriceCents is the evaluated per-day price of the stay, used for
// free_day promotion attribution. Half-up rounded.
func (b Breakdown) AverageDayPriceCents() int64 {
	if b.daySeconds == 0 {
		return 0
	}
	return divRoundHalfUp(b.SubtotalCents*secondsPerDay, b.daySeconds)
}

// TaxPolicy is the deterministic tax/fee function applied to a subtotal.
// Jurisdiction resolution happens outside this service; whatever policy is
// injected must be a pure function of the subtotal.
type TaxPolicy interface {
	Assess(subtotalCents int64) (taxCents, feeCents int64)
}

// FlatRatePolicy taxes every subtotal at a fixed basis-point rate plus a
// flat service fee.
type FlatRatePolicy struct {
	RateBasisPoints int64
	ServiceFeeCents int64
}

func (p FlatRatePolicy) Assess(subtotalCents int64) (int64, int64) {
	tax := divRoundHalfUp(subtotalCents*p.RateBasisPoints, 10000)
	return tax, p.ServiceFeeCents
}

// Evaluator prices a stay against a location's base daily rate and its
// pricing rules.
//
// The interval splits into calendar-day segments (UTC). Each segment gets
// the single highest-precedence matching rule, or the base rate when none
// match: date-range scopes beat weekday scopes, ties break by earliest rule
// creation, then by ID. Partial days prorate by fraction of a 24h day and
// round to the nearest cent, half-up.
type Evaluator struct {
	tax TaxPolicy
}

func NewEvaluator(tax TaxPolicy) *Evaluator {
	return &Evaluator{tax: tax}
}

func (e *Evaluator) Evaluate(loc *location.Location, rules []*location.Rule, stay reservation.Stay) Breakdown {
	ordered := make([]*location.Rule, len(rules))
	copy(ordered, rules)
	location.SortByPrecedence(ordered)

	var subtotal int64
	var appliedIDs []uuid.UUID
	seen := make(map[uuid.UUID]bool)

	cursor := stay.CheckIn().UTC()
	end := stay.CheckOut().UTC()

	for cursor.Before(end) {
		dayStart := truncateToDay(cursor)
		segEnd := dayStart.AddDate(0, 0, 1)
		if segEnd.After(end) {
			segEnd = end
		}

		dayPrice := loc.BasePriceCents()
		for _, rule := range ordered {
			if rule.Matches(dayStart) {
				dayPrice = rule.Effect().Apply(loc.BasePriceCents())
				if !seen[rule.ID()] {
					seen[rule.ID()] = true
					appliedIDs = append(appliedIDs, rule.ID())
				}
				break
			}
		}

		segSeconds := int64(segEnd.Sub(cursor).Seconds())
		subtotal += divRoundHalfUp(dayPrice*segSeconds, secondsPerDay)

		cursor = segEnd
	}

	tax, fee := e.tax.Assess(subtotal)

	return Breakdown{
		SubtotalCents:  subtotal,
		TaxCents:       tax,
		FeeCents:       fee,
		TotalCents:     subtotal + tax + fee,
		AppliedRuleIDs: appliedIDs,
		daySeconds:     int64(stay.Duration().Seconds()),
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// divRoundHalfUp divides non-negative integers rounding to nearest, half up.
func divRoundHalfUp(numerator, denominator int64) int64 {
	return (numerator + denominator/2) / denominator
}
