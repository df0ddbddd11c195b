package repository

import (
	"context"

	"parkspot/internal/domain/reservation"
	"parkspot/internal/infra"
	"parkspot/internal/infra/db"
	"parkspot/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const createReservationSQL = `
INSERT INTO reservations (
    id, location_id, user_id, check_in, check_out, status,
    subtotal_cents, discount_cents, tax_cents, fee_cents, total_cents,
    promotion_id, promotion_code
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

const updateReservationStatusSQL = `
UPDATE reservations
SET status = $2, updated_at = now()
WHERE id = $1`

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.db.Exec(ctx, createReservationSQL,
		res.ID(),
		res.LocationID(),
		res.UserID(),
		res.Stay().CheckIn(),
		res.Stay().CheckOut(),
		res.Status().String(),
		res.Subtotal().Cents(),
		res.Discount().Cents(),
		res.Tax().Cents(),
		res.Fee().Cents(),
		res.Total().Cents(),
		pgconv.UUIDPtrToPgtype(res.PromotionID()),
		pgconv.StringPtrToPgtype(res.PromotionCode()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error {
	tag, err := r.db.Exec(ctx, updateReservationStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
