package readstore

import (
	"context"
	"time"

	"parkspot/internal/infra"
	"parkspot/internal/infra/db"
	"parkspot/internal/pkg/pgconv"
	"parkspot/internal/usecase/queries"
	"parkspot/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findReservationViewSQL = `
SELECT r.id, r.location_id, l.name, r.user_id, r.check_in, r.check_out, r.status,
       r.subtotal_cents, r.discount_cents, r.tax_cents, r.fee_cents, r.total_cents,
       r.promotion_id, r.promotion_code, r.created_at, r.updated_at
FROM reservations r
JOIN locations l ON l.id = r.location_id
WHERE r.id = $1`

const findReservationsByUserSQL = `
SELECT r.id, r.location_id, l.name, r.check_in, r.check_out, r.status, r.total_cents, r.created_at
FROM reservations r
JOIN locations l ON l.id = r.location_id
WHERE r.user_id = $1
ORDER BY r.created_at DESC
LIMIT $2`

const findReservationSnapshotSQL = `
SELECT id, location_id, user_id, status, check_in, check_out, total_cents
FROM reservations
WHERE id = $1`

// countOverlappingSQL is the capacity check: half-open intervals [a,b) and
// [c,d) overlap iff a < d and c < b, so back-to-back stays never collide.
const countOverlappingSQL = `
SELECT COUNT(*)
FROM reservations
WHERE location_id = $1
  AND status IN ('PENDING', 'CONFIRMED')
  AND check_in < $3
  AND check_out > $2`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var (
		view      queries.ReservationView
		promoID   pgtype.UUID
		promoCode pgtype.Text
	)
	err := s.db.QueryRow(ctx, findReservationViewSQL, id).Scan(
		&view.ID,
		&view.LocationID,
		&view.LocationName,
		&view.UserID,
		&view.CheckIn,
		&view.CheckOut,
		&view.Status,
		&view.SubtotalCents,
		&view.DiscountCents,
		&view.TaxCents,
		&view.FeeCents,
		&view.TotalCents,
		&promoID,
		&promoCode,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	view.PromotionID = pgconv.UUIDPtrFromPgtype(promoID)
	view.PromotionCode = pgconv.StringPtrFromPgtype(promoCode)
	return &view, nil
}

func (s *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := s.db.Query(ctx, findReservationsByUserSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservations", err)
	}
	defer rows.Close()

	var items []*queries.ReservationListItem
	for rows.Next() {
		var item queries.ReservationListItem
		err := rows.Scan(
			&item.ID,
			&item.LocationID,
			&item.LocationName,
			&item.CheckIn,
			&item.CheckOut,
			&item.Status,
			&item.TotalCents,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return items, nil
}

func (s *ReservationReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	var snap shared.ReservationSnapshot
	err := s.db.QueryRow(ctx, findReservationSnapshotSQL, id).Scan(
		&snap.ID,
		&snap.LocationID,
		&snap.UserID,
		&snap.Status,
		&snap.CheckIn,
		&snap.CheckOut,
		&snap.TotalCents,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return &snap, nil
}

func (s *ReservationReadStore) CountOverlapping(ctx context.Context, locationID uuid.UUID, start, end time.Time) (int32, error) {
	var count int32
	err := s.db.QueryRow(ctx, countOverlappingSQL, locationID, start, end).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping reservations", err)
	}
	return count, nil
}
