package claim

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyReason        = errors.New("claim reason cannot be empty")
	ErrInvalidTransition  = errors.New("invalid claim status transition")
	ErrRequesterMismatch  = errors.New("requester does not own the reservation")
	ErrInvalidDisputeStat = errors.New("invalid dispute status")
)

type DisputeStatus string

const (
	DisputeOpen       DisputeStatus = "OPEN"
	DisputeInProgress DisputeStatus = "IN_PROGRESS"
	DisputeResolved   DisputeStatus = "RESOLVED"
)

func (s DisputeStatus) String() string { return string(s) }

func ParseDisputeStatus(s string) (DisputeStatus, error) {
	switch DisputeStatus(s) {
	case DisputeOpen, DisputeInProgress, DisputeResolved:
		return DisputeStatus(s), nil
	default:
		return "", ErrInvalidDisputeStat
	}
}

// disputeTransitions is the closed OPEN -> IN_PROGRESS -> RESOLVED chain.
var disputeTransitions = map[DisputeStatus]DisputeStatus{
	DisputeOpen:       DisputeInProgress,
	DisputeInProgress: DisputeResolved,
}

// Dispute is a post-booking claim against a reservation. A reservation
// referenced by a dispute is never hard-deleted.
type Dispute struct {
	id            uuid.UUID
	reservationID uuid.UUID
	requesterID   uuid.UUID
	reason        string
	status        DisputeStatus
	createdAt     time.Time
	updatedAt     time.Time
}

func NewDispute(reservationID, requesterID uuid.UUID, reason string) (*Dispute, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrEmptyReason
	}

	return &Dispute{
		id:            uuid.New(),
		reservationID: reservationID,
		requesterID:   requesterID,
		reason:        reason,
		status:        DisputeOpen,
	}, nil
}

func ReconstructDispute(
	id, reservationID, requesterID uuid.UUID,
	reason string,
	status DisputeStatus,
	createdAt, updatedAt time.Time,
) *Dispute {
	return &Dispute{
		id:            id,
		reservationID: reservationID,
		requesterID:   requesterID,
		reason:        reason,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// TransitionTo advances the state machine one legal step at a time.
func (d *Dispute) TransitionTo(next DisputeStatus) error {
	if disputeTransitions[d.status] != next {
		return ErrInvalidTransition
	}
	d.status = next
	return nil
}

func (d *Dispute) ID() uuid.UUID            { return d.id }
func (d *Dispute) ReservationID() uuid.UUID { return d.reservationID }
func (d *Dispute) RequesterID() uuid.UUID   { return d.requesterID }
func (d *Dispute) Reason() string           { return d.reason }
func (d *Dispute) Status() DisputeStatus    { return d.status }
func (d *Dispute) CreatedAt() time.Time     { return d.createdAt }
func (d *Dispute) UpdatedAt() time.Time     { return d.updatedAt }
