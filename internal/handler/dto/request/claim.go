package request

import (
	"github.com/google/uuid"
)

type SubmitDisputeRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
	Reason        string    `json:"reason" binding:"required"`
}

type TransitionDisputeRequest struct {
	Status string `json:"status" binding:"required"`
}

type RequestRefundRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
	AmountCents   int64     `json:"amount_cents" binding:"required,gt=0"`
	Reason        string    `json:"reason" binding:"required"`
}

type DecideRefundRequest struct {
	Approve           *bool `json:"approve" binding:"required"`
	CancelReservation bool  `json:"cancel_reservation"`
}
