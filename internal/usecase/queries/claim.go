package queries

import (
	"context"

	"parkspot/internal/domain/claim"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrDisputeNotFound = errs.New("dispute not found")
	ErrRefundNotFound  = errs.New("refund request not found")
)

type ClaimQueries interface {
	GetDispute(ctx context.Context, actor uuid.UUID, role jwt.Role, id uuid.UUID) (*DisputeView, error)
	GetRefund(ctx context.Context, actor uuid.UUID, role jwt.Role, id uuid.UUID) (*RefundView, error)
	// AuditTrail is staff-only: the chronological transition history of a
	// dispute or refund.
	AuditTrail(ctx context.Context, role jwt.Role, kind claim.SubjectKind, subjectID uuid.UUID) ([]*AuditEntryView, error)
}

type ClaimViewRepo interface {
	FindDisputeByID(ctx context.Context, id uuid.UUID) (*DisputeView, error)
	FindRefundByID(ctx context.Context, id uuid.UUID) (*RefundView, error)
	FindAuditBySubject(ctx context.Context, kind string, subjectID uuid.UUID) ([]*AuditEntryView, error)
}

type claimQueriesImpl struct {
	repo ClaimViewRepo
}

func NewClaimQueries(repo ClaimViewRepo) ClaimQueries {
	return &claimQueriesImpl{repo: repo}
}

func (q *claimQueriesImpl) GetDispute(ctx context.Context, actor uuid.UUID, role jwt.Role, id uuid.UUID) (*DisputeView, error) {
	view, err := q.repo.FindDisputeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.RequesterID != actor && !role.IsStaff() {
		return nil, ErrForbidden
	}
	return view, nil
}

func (q *claimQueriesImpl) GetRefund(ctx context.Context, actor uuid.UUID, role jwt.Role, id uuid.UUID) (*RefundView, error) {
	view, err := q.repo.FindRefundByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.RequesterID != actor && !role.IsStaff() {
		return nil, ErrForbidden
	}
	return view, nil
}

func (q *claimQueriesImpl) AuditTrail(ctx context.Context, role jwt.Role, kind claim.SubjectKind, subjectID uuid.UUID) ([]*AuditEntryView, error) {
	if !role.IsStaff() {
		return nil, ErrForbidden
	}
	return q.repo.FindAuditBySubject(ctx, string(kind), subjectID)
}
