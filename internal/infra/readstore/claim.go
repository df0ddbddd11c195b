package readstore

import (
	"context"

	"parkspot/internal/infra"
	"parkspot/internal/infra/db"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
)

const findDisputeByIDSQL = `
SELECT id, reservation_id, requester_id, reason, status, created_at, updated_at
FROM disputes
WHERE id = $1`

const findRefundByIDSQL = `
SELECT id, reservation_id, requester_id, amount_cents, reason, status, created_at, updated_at
FROM refund_requests
WHERE id = $1`

const findAuditBySubjectSQL = `
SELECT id, subject_kind, subject_id, actor_id, from_status, to_status, occurred_at
FROM audit_logs
WHERE subject_kind = $1 AND subject_id = $2
ORDER BY occurred_at, id`

type ClaimReadStore struct {
	db db.DBTX
}

func NewClaimReadStore(dbtx db.DBTX) *ClaimReadStore {
	return &ClaimReadStore{db: dbtx}
}

func (s *ClaimReadStore) FindDisputeByID(ctx context.Context, id uuid.UUID) (*queries.DisputeView, error) {
	var view queries.DisputeView
	err := s.db.QueryRow(ctx, findDisputeByIDSQL, id).Scan(
		&view.ID,
		&view.ReservationID,
		&view.RequesterID,
		&view.Reason,
		&view.Status,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find dispute", err)
	}
	return &view, nil
}

func (s *ClaimReadStore) FindRefundByID(ctx context.Context, id uuid.UUID) (*queries.RefundView, error) {
	var view queries.RefundView
	err := s.db.QueryRow(ctx, findRefundByIDSQL, id).Scan(
		&view.ID,
		&view.ReservationID,
		&view.RequesterID,
		&view.AmountCents,
		&view.Reason,
		&view.Status,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find refund request", err)
	}
	return &view, nil
}

func (s *ClaimReadStore) FindAuditBySubject(ctx context.Context, kind string, subjectID uuid.UUID) ([]*queries.AuditEntryView, error) {
	rows, err := s.db.Query(ctx, findAuditBySubjectSQL, kind, subjectID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query audit log", err)
	}
	defer rows.Close()

	var entries []*queries.AuditEntryView
	for rows.Next() {
		var entry queries.AuditEntryView
		err := rows.Scan(
			&entry.ID,
			&entry.SubjectKind,
			&entry.SubjectID,
			&entry.ActorID,
			&entry.FromStatus,
			&entry.ToStatus,
			&entry.OccurredAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan audit entry", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate audit log", err)
	}
	return entries, nil
}
