package components

import (
	"parkspot/internal/domain/pricing"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/config"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewTaxPolicy,
	pricing.NewEvaluator,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewQuoteQueries,
		queries.NewStayPricer,
		queries.NewPromotionQueries,
		queries.NewReservationQueries,
		queries.NewClaimQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewClaimUseCase,
	),
)

func NewTaxPolicy(cfg config.Config) pricing.TaxPolicy {
	return pricing.FlatRatePolicy{
		RateBasisPoints: cfg.Pricing.TaxRateBasisPoints,
		ServiceFeeCents: cfg.Pricing.ServiceFeeCents,
	}
}
