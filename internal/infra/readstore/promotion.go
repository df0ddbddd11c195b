package readstore

import (
	"context"
	"time"

	"parkspot/internal/infra"
	"parkspot/internal/infra/db"
	"parkspot/internal/pkg/pgconv"
	"parkspot/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

const promotionColumns = `
id, code, promo_type, value, min_booking_value_cents, max_discount_cents,
valid_from, valid_until, usage_limit, used_count, active, created_at`

const findPromotionByCodeSQL = `
SELECT ` + promotionColumns + `
FROM promotions
WHERE code = $1`

// findActivePromotionsSQL keeps promotions outside their validity window so
// the caller can report why one does not apply yet.
const findActivePromotionsSQL = `
SELECT ` + promotionColumns + `
FROM promotions
WHERE active
ORDER BY code`

type PromotionReadStore struct {
	db db.DBTX
}

func NewPromotionReadStore(dbtx db.DBTX) *PromotionReadStore {
	return &PromotionReadStore{db: dbtx}
}

func (s *PromotionReadStore) FindByCode(ctx context.Context, code string) (*shared.PromotionSnapshot, error) {
	snap, err := s.scanPromotion(s.db.QueryRow(ctx, findPromotionByCodeSQL, code))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find promotion", err)
	}
	return snap, nil
}

func (s *PromotionReadStore) FindActive(ctx context.Context, _ time.Time) ([]shared.PromotionSnapshot, error) {
	rows, err := s.db.Query(ctx, findActivePromotionsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query promotions", err)
	}
	defer rows.Close()

	var snaps []shared.PromotionSnapshot
	for rows.Next() {
		snap, err := s.scanPromotion(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan promotion", err)
		}
		snaps = append(snaps, *snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate promotions", err)
	}
	return snaps, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *PromotionReadStore) scanPromotion(row rowScanner) (*shared.PromotionSnapshot, error) {
	var (
		snap       shared.PromotionSnapshot
		minBooking pgtype.Int8
		maxDisc    pgtype.Int8
		usageLimit pgtype.Int4
	)
	err := row.Scan(
		&snap.ID,
		&snap.Code,
		&snap.PromoType,
		&snap.Value,
		&minBooking,
		&maxDisc,
		&snap.ValidFrom,
		&snap.ValidUntil,
		&usageLimit,
		&snap.UsedCount,
		&snap.Active,
		&snap.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	snap.MinBookingValueCents = pgconv.Int64PtrFromPgtype(minBooking)
	snap.MaxDiscountCents = pgconv.Int64PtrFromPgtype(maxDisc)
	snap.UsageLimit = pgconv.Int32PtrFromPgtype(usageLimit)
	return &snap, nil
}
