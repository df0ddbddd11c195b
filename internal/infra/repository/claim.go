package repository

import (
	"context"

	"parkspot/internal/domain/claim"
	"parkspot/internal/infra"
	"parkspot/internal/infra/db"

	"github.com/google/uuid"
)

const createDisputeSQL = `
INSERT INTO disputes (id, reservation_id, requester_id, reason, status)
VALUES ($1, $2, $3, $4, $5)`

const updateDisputeStatusSQL = `
UPDATE disputes
SET status = $2, updated_at = now()
WHERE id = $1`

type DisputeRepository struct {
	db db.DBTX
}

func NewDisputeRepository(dbtx db.DBTX) *DisputeRepository {
	return &DisputeRepository{db: dbtx}
}

func (r *DisputeRepository) Create(ctx context.Context, d *claim.Dispute) error {
	_, err := r.db.Exec(ctx, createDisputeSQL,
		d.ID(), d.ReservationID(), d.RequesterID(), d.Reason(), d.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to create dispute", err)
	}
	return nil
}

func (r *DisputeRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status claim.DisputeStatus) error {
	tag, err := r.db.Exec(ctx, updateDisputeStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update dispute status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("dispute not found", nil, infra.KindNotFound)
	}
	return nil
}

const createRefundSQL = `
INSERT INTO refund_requests (id, reservation_id, requester_id, amount_cents, reason, status)
VALUES ($1, $2, $3, $4, $5, $6)`

const updateRefundStatusSQL = `
UPDATE refund_requests
SET status = $2, updated_at = now()
WHERE id = $1`

type RefundRepository struct {
	db db.DBTX
}

func NewRefundRepository(dbtx db.DBTX) *RefundRepository {
	return &RefundRepository{db: dbtx}
}

func (r *RefundRepository) Create(ctx context.Context, req *claim.RefundRequest) error {
	_, err := r.db.Exec(ctx, createRefundSQL,
		req.ID(), req.ReservationID(), req.RequesterID(), req.AmountCents(), req.Reason(), req.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to create refund request", err)
	}
	return nil
}

func (r *RefundRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status claim.RefundStatus) error {
	tag, err := r.db.Exec(ctx, updateRefundStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update refund status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("refund request not found", nil, infra.KindNotFound)
	}
	return nil
}
