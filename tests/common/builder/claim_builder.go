//go:build unit || e2e

package builder

import (
	"time"

	domclaim "parkspot/internal/domain/claim"
	"parkspot/internal/usecase/queries"
	"parkspot/internal/usecase/shared"

	"github.com/google/uuid"
)

type DisputeBuilder struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	RequesterID   uuid.UUID
	Reason        string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewDisputeBuilder() *DisputeBuilder {
	now := time.Now()
	return &DisputeBuilder{
		ID:            uuid.New(),
		ReservationID: uuid.New(),
		RequesterID:   uuid.New(),
		Reason:        "Spot was occupied on arrival",
		Status:        string(domclaim.DisputeOpen),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *DisputeBuilder) BuildDomain() (*domclaim.Dispute, error) {
	return domclaim.NewDispute(b.ReservationID, b.RequesterID, b.Reason)
}

func (b *DisputeBuilder) BuildView() *queries.DisputeView {
	return &queries.DisputeView{
		ID:            b.ID,
		ReservationID: b.ReservationID,
		RequesterID:   b.RequesterID,
		Reason:        b.Reason,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *DisputeBuilder) BuildSnapshot() *shared.DisputeSnapshot {
	return &shared.DisputeSnapshot{
		ID:            b.ID,
		ReservationID: b.ReservationID,
		RequesterID:   b.RequesterID,
		Reason:        b.Reason,
		Status:        b.Status,
	}
}

func (b *DisputeBuilder) WithRequesterID(id uuid.UUID) *DisputeBuilder {
	b.RequesterID = id
	return b
}

func (b *DisputeBuilder) WithReason(reason string) *DisputeBuilder {
	b.Reason = reason
	return b
}

func (b *DisputeBuilder) WithStatus(status domclaim.DisputeStatus) *DisputeBuilder {
	b.Status = string(status)
	return b
}

type RefundBuilder struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	RequesterID   uuid.UUID
	AmountCents   int64
	Reason        string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewRefundBuilder() *RefundBuilder {
	now := time.Now()
	return &RefundBuilder{
		ID:            uuid.New(),
		ReservationID: uuid.New(),
		RequesterID:   uuid.New(),
		AmountCents:   2500,
		Reason:        "Left a day early",
		Status:        string(domclaim.RefundPending),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *RefundBuilder) BuildDomain() (*domclaim.RefundRequest, error) {
	return domclaim.NewRefundRequest(b.ReservationID, b.RequesterID, b.AmountCents, b.Reason)
}

func (b *RefundBuilder) BuildView() *queries.RefundView {
	return &queries.RefundView{
		ID:            b.ID,
		ReservationID: b.ReservationID,
		RequesterID:   b.RequesterID,
		AmountCents:   b.AmountCents,
		Reason:        b.Reason,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *RefundBuilder) BuildSnapshot() *shared.RefundSnapshot {
	return &shared.RefundSnapshot{
		ID:            b.ID,
		ReservationID: b.ReservationID,
		RequesterID:   b.RequesterID,
		AmountCents:   b.AmountCents,
		Reason:        b.Reason,
		Status:        b.Status,
	}
}

func (b *RefundBuilder) WithRequesterID(id uuid.UUID) *RefundBuilder {
	b.RequesterID = id
	return b
}

func (b *RefundBuilder) WithAmountCents(cents int64) *RefundBuilder {
	b.AmountCents = cents
	return b
}

func (b *RefundBuilder) WithStatus(status domclaim.RefundStatus) *RefundBuilder {
	b.Status = string(status)
	return b
}
