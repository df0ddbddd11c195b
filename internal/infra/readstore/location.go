package readstore

import (
	"context"

	"parkspot/internal/infra"
	"parkspot/internal/infra/db"
	"parkspot/internal/pkg/pgconv"
	"parkspot/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findLocationByIDSQL = `
SELECT id, name, total_spots, base_price_cents, status
FROM locations
WHERE id = $1`

const findRulesByLocationSQL = `
SELECT id, location_id, scope_kind, start_date, end_date, weekdays,
       effect_kind, price_cents, multiplier, created_at
FROM pricing_rules
WHERE location_id = $1
ORDER BY created_at, id`

type LocationReadStore struct {
	db db.DBTX
}

func NewLocationReadStore(dbtx db.DBTX) *LocationReadStore {
	return &LocationReadStore{db: dbtx}
}

func (s *LocationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.LocationSnapshot, error) {
	var snap shared.LocationSnapshot
	err := s.db.QueryRow(ctx, findLocationByIDSQL, id).Scan(
		&snap.ID,
		&snap.Name,
		&snap.TotalSpots,
		&snap.BasePriceCents,
		&snap.Status,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find location", err)
	}
	return &snap, nil
}

func (s *LocationReadStore) FindRulesByLocation(ctx context.Context, locationID uuid.UUID) ([]shared.RuleSnapshot, error) {
	rows, err := s.db.Query(ctx, findRulesByLocationSQL, locationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query pricing rules", err)
	}
	defer rows.Close()

	var snaps []shared.RuleSnapshot
	for rows.Next() {
		var (
			snap       shared.RuleSnapshot
			startDate  pgtype.Timestamptz
			endDate    pgtype.Timestamptz
			priceCents pgtype.Int8
			multiplier pgtype.Float8
		)
		err := rows.Scan(
			&snap.ID,
			&snap.LocationID,
			&snap.ScopeKind,
			&startDate,
			&endDate,
			&snap.Weekdays,
			&snap.EffectKind,
			&priceCents,
			&multiplier,
			&snap.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing rule", err)
		}

		snap.StartDate = pgconv.TimePtrFromPgtype(startDate)
		snap.EndDate = pgconv.TimePtrFromPgtype(endDate)
		snap.PriceCents = pgconv.Int64PtrFromPgtype(priceCents)
		mult, err := pgconv.Float64PtrFromPgtype(multiplier)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert rule multiplier", err)
		}
		snap.Multiplier = mult

		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pricing rules", err)
	}
	return snaps, nil
}
