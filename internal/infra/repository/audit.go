package repository

import (
	"context"

	"parkspot/internal/domain/claim"
	"parkspot/internal/infra"
	"parkspot/internal/infra/db"
)

const appendAuditSQL = `
INSERT INTO audit_logs (id, subject_kind, subject_id, actor_id, from_status, to_status, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// AuditRepository is append-only; there is no update or delete path.
type AuditRepository struct {
	db db.DBTX
}

func NewAuditRepository(dbtx db.DBTX) *AuditRepository {
	return &AuditRepository{db: dbtx}
}

func (r *AuditRepository) Append(ctx context.Context, entry *claim.AuditEntry) error {
	_, err := r.db.Exec(ctx, appendAuditSQL,
		entry.ID(),
		string(entry.SubjectKind()),
		entry.SubjectID(),
		entry.ActorID(),
		entry.FromStatus(),
		entry.ToStatus(),
		entry.OccurredAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append audit entry", err)
	}
	return nil
}
