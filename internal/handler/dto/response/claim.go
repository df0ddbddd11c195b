package response

import (
	"time"

	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
)

type DisputeResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservationId"`
	RequesterID   uuid.UUID `json:"requesterId"`
	Reason        string    `json:"reason"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type RefundResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservationId"`
	RequesterID   uuid.UUID `json:"requesterId"`
	AmountCents   int64     `json:"amountCents"`
	Reason        string    `json:"reason"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type AuditEntryResponse struct {
	ID          uuid.UUID `json:"id"`
	SubjectKind string    `json:"subjectKind"`
	SubjectID   uuid.UUID `json:"subjectId"`
	ActorID     uuid.UUID `json:"actorId"`
	FromStatus  string    `json:"fromStatus"`
	ToStatus    string    `json:"toStatus"`
	OccurredAt  time.Time `json:"occurredAt"`
}

func FromDisputeView(rm *queries.DisputeView) *DisputeResponse {
	return &DisputeResponse{
		ID:            rm.ID,
		ReservationID: rm.ReservationID,
		RequesterID:   rm.RequesterID,
		Reason:        rm.Reason,
		Status:        rm.Status,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

func FromRefundView(rm *queries.RefundView) *RefundResponse {
	return &RefundResponse{
		ID:            rm.ID,
		ReservationID: rm.ReservationID,
		RequesterID:   rm.RequesterID,
		AmountCents:   rm.AmountCents,
		Reason:        rm.Reason,
		Status:        rm.Status,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

func FromAuditEntryView(rm *queries.AuditEntryView) *AuditEntryResponse {
	return &AuditEntryResponse{
		ID:          rm.ID,
		SubjectKind: rm.SubjectKind,
		SubjectID:   rm.SubjectID,
		ActorID:     rm.ActorID,
		FromStatus:  rm.FromStatus,
		ToStatus:    rm.ToStatus,
		OccurredAt:  rm.OccurredAt,
	}
}
