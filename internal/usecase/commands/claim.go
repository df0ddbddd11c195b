package commands

import (
	"context"
	"log/slog"

	"parkspot/internal/domain/claim"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/pkg/jwt"
	"parkspot/internal/usecase/queries"
	"parkspot/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDisputeNotFound        = errs.New("dispute not found")
	ErrRefundNotFound         = errs.New("refund request not found")
	ErrRefundExceedsTotal     = errs.New("refund amount exceeds reservation total")
	ErrInvalidClaimTransition = errs.New("invalid claim transition")
)

type SubmitDisputeInput struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	Reason        string    `json:"reason"`
}

type RequestRefundInput struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	AmountCents   int64     `json:"amount_cents"`
	Reason        string    `json:"reason"`
}

type DecideRefundInput struct {
	Approve bool `json:"approve"`
	// CancelReservation releases the spot alongside an approval. Capacity is
	// never touched implicitly.
	CancelReservation bool `json:"cancel_reservation"`
}

type ClaimCommands interface {
	SubmitDispute(ctx context.Context, actor uuid.UUID, in SubmitDisputeInput) (*queries.DisputeView, error)
	TransitionDispute(ctx context.Context, actor uuid.UUID, role jwt.Role, id uuid.UUID, next claim.DisputeStatus) error
	RequestRefund(ctx context.Context, actor uuid.UUID, in RequestRefundInput) (*queries.RefundView, error)
	DecideRefund(ctx context.Context, actor uuid.UUID, role jwt.Role, id uuid.UUID, in DecideRefundInput) error
	MarkRefundProcessed(ctx context.Context, actor uuid.UUID, role jwt.Role, id uuid.UUID) error
}

type claimUseCaseImpl struct {
	uow          shared.UnitOfWork
	claimQueries queries.ClaimQueries
	clock        clock.Clock
}

func NewClaimUseCase(uow shared.UnitOfWork, claimQueries queries.ClaimQueries, clk clock.Clock) ClaimCommands {
	return &claimUseCaseImpl{
		uow:          uow,
		claimQueries: claimQueries,
		clock:        clk,
	}
}

func (c *claimUseCaseImpl) SubmitDispute(ctx context.Context, actor uuid.UUID, in SubmitDisputeInput) (*queries.DisputeView, error) {
	if err := c.checkReservationOwnership(ctx, in.ReservationID, actor); err != nil {
		return nil, err
	}

	dispute, err := claim.NewDispute(in.ReservationID, actor, in.Reason)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Disputes().Create(ctx, dispute); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		c.appendAudit(ctx, tx, claim.SubjectDispute, dispute.ID(), actor, "", dispute.Status().String())
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.claimQueries.GetDispute(ctx, actor, jwt.RoleCustomer, dispute.ID())
}

func (c *claimUseCaseImpl) TransitionDispute(ctx context.Context, actor uuid.UUID, role jwt.Role, id uuid.UUID, next claim.DisputeStatus) error {
	if !role.IsStaff() {
		return ErrForbidden
	}

	snap, err := c.uow.CommandReads().DisputeByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrDisputeNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	status, err := claim.ParseDisputeStatus(snap.Status)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	dispute := claim.ReconstructDispute(snap.ID, snap.ReservationID, snap.RequesterID, snap.Reason, status, c.clock.Now(), c.clock.Now())

	from := dispute.Status()
	if err := dispute.TransitionTo(next); err != nil {
		return errs.Mark(err, ErrInvalidClaimTransition)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Disputes().UpdateStatus(ctx, id, dispute.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		c.appendAudit(ctx, tx, claim.SubjectDispute, id, actor, from.String(), dispute.Status().String())
		return nil
	})
}

func (c *claimUseCaseImpl) RequestRefund(ctx context.Context, actor uuid.UUID, in RequestRefundInput) (*queries.RefundView, error) {
	resSnap, err := c.uow.CommandReads().ReservationByID(ctx, in.ReservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if resSnap.UserID != actor {
		return nil, errs.Mark(claim.ErrRequesterMismatch, ErrForbidden)
	}
	if in.AmountCents > resSnap.TotalCents {
		return nil, ErrRefundExceedsTotal
	}

	refund, err := claim.NewRefundRequest(in.ReservationID, actor, in.AmountCents, in.Reason)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Refunds().Create(ctx, refund); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		c.appendAudit(ctx, tx, claim.SubjectRefund, refund.ID(), actor, "", refund.Status().String())
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.claimQueries.GetRefund(ctx, actor, jwt.RoleCustomer, refund.ID())
}

func (c *claimUseCaseImpl) DecideRefund(ctx context.Context, actor uuid.UUID, role jwt.Role, id uuid.UUID, in DecideRefundInput) error {
	if !role.IsStaff() {
		return ErrForbidden
	}

	refund, err := c.loadRefund(ctx, id)
	if err != nil {
		return err
	}

	from := refund.Status()
	if in.Approve {
		err = refund.Approve()
	} else {
		err = refund.Reject()
	}
	if err != nil {
		return errs.Mark(err, ErrInvalidClaimTransition)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Refunds().UpdateStatus(ctx, id, refund.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if in.Approve && in.CancelReservation {
			if err := c.cancelReservationInTx(ctx, tx, refund.ReservationID()); err != nil {
				return err
			}
		}

		c.appendAudit(ctx, tx, claim.SubjectRefund, id, actor, from.String(), refund.Status().String())
		return nil
	})
}

func (c *claimUseCaseImpl) MarkRefundProcessed(ctx context.Context, actor uuid.UUID, role jwt.Role, id uuid.UUID) error {
	if !role.IsStaff() {
		return ErrForbidden
	}

	refund, err := c.loadRefund(ctx, id)
	if err != nil {
		return err
	}

	from := refund.Status()
	if err := refund.MarkProcessed(); err != nil {
		return errs.Mark(err, ErrInvalidClaimTransition)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Refunds().UpdateStatus(ctx, id, refund.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		c.appendAudit(ctx, tx, claim.SubjectRefund, id, actor, from.String(), refund.Status().String())
		return nil
	})
}

func (c *claimUseCaseImpl) loadRefund(ctx context.Context, id uuid.UUID) (*claim.RefundRequest, error) {
	snap, err := c.uow.CommandReads().RefundByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRefundNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	status, err := claim.ParseRefundStatus(snap.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	return claim.ReconstructRefundRequest(
		snap.ID, snap.ReservationID, snap.RequesterID,
		snap.AmountCents, snap.Reason, status,
		c.clock.Now(), c.clock.Now(),
	), nil
}

func (c *claimUseCaseImpl) checkReservationOwnership(ctx context.Context, reservationID, actor uuid.UUID) error {
	snap, err := c.uow.CommandReads().ReservationByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.UserID != actor {
		return errs.Mark(claim.ErrRequesterMismatch, ErrForbidden)
	}
	return nil
}

func (c *claimUseCaseImpl) cancelReservationInTx(ctx context.Context, tx shared.Tx, reservationID uuid.UUID) error {
	snap, err := tx.Reads().ReservationByID(ctx, reservationID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	res, err := reservationFromSnapshot(snap)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	if err := res.Cancel(); err != nil {
		// Already released; the refund decision still stands
		return nil
	}
	if err := tx.Reservations().UpdateStatus(ctx, reservationID, res.Status()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// appendAudit is best-effort: a failed audit write is logged, never surfaced,
// and never aborts the transition it records.
func (c *claimUseCaseImpl) appendAudit(ctx context.Context, tx shared.Tx, kind claim.SubjectKind, subjectID, actorID uuid.UUID, from, to string) {
	entry := claim.NewAuditEntry(kind, subjectID, actorID, from, to, c.clock.Now())
	if err := tx.AuditLog().Append(ctx, entry); err != nil {
		slog.Warn("failed to append audit entry",
			"subject_kind", string(kind),
			"subject_id", subjectID,
			"error", err,
		)
	}
}
