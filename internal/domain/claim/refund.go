package claim

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveAmount = errors.New("refund amount must be positive")
	ErrInvalidRefundStat = errors.New("invalid refund status")
)

type RefundStatus string

const (
	RefundPending   RefundStatus = "PENDING"
	RefundApproved  RefundStatus = "APPROVED"
	RefundRejected  RefundStatus = "REJECTED"
	RefundProcessed RefundStatus = "PROCESSED"
)

func (s RefundStatus) String() string { return string(s) }

func ParseRefundStatus(s string) (RefundStatus, error) {
	switch RefundStatus(s) {
	case RefundPending, RefundApproved, RefundRejected, RefundProcessed:
		return RefundStatus(s), nil
	default:
		return "", ErrInvalidRefundStat
	}
}

// RefundRequest: PENDING -> APPROVED | REJECTED, and APPROVED -> PROCESSED
// once the payment side settles. Approval does not touch capacity unless the
// decision explicitly cancels the reservation.
type RefundRequest struct {
	id            uuid.UUID
	reservationID uuid.UUID
	requesterID   uuid.UUID
	amountCents   int64
	reason        string
	status        RefundStatus
	createdAt     time.Time
	updatedAt     time.Time
}

func NewRefundRequest(reservationID, requesterID uuid.UUID, amountCents int64, reason string) (*RefundRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrEmptyReason
	}
	if amountCents <= 0 {
		return nil, ErrNonPositiveAmount
	}

	return &RefundRequest{
		id:            uuid.New(),
		reservationID: reservationID,
		requesterID:   requesterID,
		amountCents:   amountCents,
		reason:        reason,
		status:        RefundPending,
	}, nil
}

func ReconstructRefundRequest(
	id, reservationID, requesterID uuid.UUID,
	amountCents int64,
	reason string,
	status RefundStatus,
	createdAt, updatedAt time.Time,
) *RefundRequest {
	return &RefundRequest{
		id:            id,
		reservationID: reservationID,
		requesterID:   requesterID,
		amountCents:   amountCents,
		reason:        reason,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *RefundRequest) Approve() error {
	if r.status != RefundPending {
		return ErrInvalidTransition
	}
	r.status = RefundApproved
	return nil
}

func (r *RefundRequest) Reject() error {
	if r.status != RefundPending {
		return ErrInvalidTransition
	}
	r.status = RefundRejected
	return nil
}

func (r *RefundRequest) MarkProcessed() error {
	if r.status != RefundApproved {
		return ErrInvalidTransition
	}
	r.status = RefundProcessed
	return nil
}

func (r *RefundRequest) ID() uuid.UUID            { return r.id }
func (r *RefundRequest) ReservationID() uuid.UUID { return r.reservationID }
func (r *RefundRequest) RequesterID() uuid.UUID   { return r.requesterID }
func (r *RefundRequest) AmountCents() int64       { return r.amountCents }
func (r *RefundRequest) Reason() string           { return r.reason }
func (r *RefundRequest) Status() RefundStatus     { return r.status }
func (r *RefundRequest) CreatedAt() time.Time     { return r.createdAt }
func (r *RefundRequest) UpdatedAt() time.Time     { return r.updatedAt }
