package queries

import (
	"context"

	"parkspot/internal/domain/pricing"
	"parkspot/internal/domain/reservation"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/shared"

	"github.com/google/uuid"
)

type evaluatorPricer struct {
	locations LocationViewRepo
	evaluator *pricing.Evaluator
}

func NewStayPricer(locations LocationViewRepo, evaluator *pricing.Evaluator) StayPricer {
	return &evaluatorPricer{locations: locations, evaluator: evaluator}
}

func (p *evaluatorPricer) PriceStay(ctx context.Context, locationID uuid.UUID, stay reservation.Stay) (int64, int64, error) {
	locSnap, err := p.locations.FindByID(ctx, locationID)
	if err != nil {
		return 0, 0, errs.Wrap(err, "failed to load location")
	}
	loc, err := locSnap.ToDomain()
	if err != nil {
		return 0, 0, errs.Wrap(err, "corrupt location row")
	}

	ruleSnaps, err := p.locations.FindRulesByLocation(ctx, locationID)
	if err != nil {
		return 0, 0, errs.Wrap(err, "failed to load pricing rules")
	}
	rules, err := shared.RulesToDomain(ruleSnaps)
	if err != nil {
		return 0, 0, errs.Wrap(err, "corrupt pricing rule row")
	}

	breakdown := p.evaluator.Evaluate(loc, rules, stay)
	return breakdown.SubtotalCents, breakdown.AverageDayPriceCents(), nil
}
