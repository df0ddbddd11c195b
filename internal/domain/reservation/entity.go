package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStay      = errors.New("invalid stay interval")
	ErrStayInPast       = errors.New("stay must end in the future")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")
	ErrAlreadyCompleted = errors.New("reservation is already completed")
	ErrNotYetEnded      = errors.New("reservation stay has not ended")
	ErrInvalidStatus    = errors.New("invalid reservation status")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) String() string { return string(s) }

// ConsumesCapacity reports whether a reservation in this status still
// occupies a physical spot.
func (s Status) ConsumesCapacity() bool {
	return s == StatusPending || s == StatusConfirmed
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

type Reservation struct {
	id            uuid.UUID
	locationID    uuid.UUID
	userID        uuid.UUID
	stay          Stay
	status        Status
	subtotal      Money
	discount      Money
	tax           Money
	fee           Money
	total         Money
	promotionID   *uuid.UUID
	promotionCode *string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewReservation builds a capacity-consuming reservation. Successful commits
// confirm immediately; PENDING is reserved for flows needing out-of-band
// confirmation.
func NewReservation(
	locationID, userID uuid.UUID,
	stay Stay,
	subtotal, discount, tax, fee Money,
	promotionID *uuid.UUID,
	promotionCode *string,
	now time.Time,
) (*Reservation, error) {
	if stay.HasEnded(now) {
		return nil, ErrStayInPast
	}
	if subtotal.Cents() < 0 || discount.Cents() < 0 || tax.Cents() < 0 || fee.Cents() < 0 {
		return nil, ErrNegativePrice
	}

	total := subtotal.Add(tax).Add(fee).Sub(discount)

	return &Reservation{
		id:            uuid.New(),
		locationID:    locationID,
		userID:        userID,
		stay:          stay,
		status:        StatusConfirmed,
		subtotal:      subtotal,
		discount:      discount,
		tax:           tax,
		fee:           fee,
		total:         total,
		promotionID:   promotionID,
		promotionCode: promotionCode,
	}, nil
}

func ReconstructReservation(
	id, locationID, userID uuid.UUID,
	stay Stay,
	status Status,
	subtotal, discount, tax, fee, total Money,
	promotionID *uuid.UUID,
	promotionCode *string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		locationID:    locationID,
		userID:        userID,
		stay:          stay,
		status:        status,
		subtotal:      subtotal,
		discount:      discount,
		tax:           tax,
		fee:           fee,
		total:         total,
		promotionID:   promotionID,
		promotionCode: promotionCode,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Cancel releases the spot. Completed reservations are immutable history.
func (r *Reservation) Cancel() error {
	switch r.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrAlreadyCompleted
	}
	r.status = StatusCancelled
	return nil
}

// Complete marks checkout done; only valid once the stay has ended.
func (r *Reservation) Complete(now time.Time) error {
	switch r.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrAlreadyCompleted
	}
	if !r.stay.HasEnded(now) {
		return ErrNotYetEnded
	}
	r.status = StatusCompleted
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status.ConsumesCapacity()
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) LocationID() uuid.UUID   { return r.locationID }
func (r *Reservation) UserID() uuid.UUID       { return r.userID }
func (r *Reservation) Stay() Stay              { return r.stay }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) Subtotal() Money         { return r.subtotal }
func (r *Reservation) Discount() Money         { return r.discount }
func (r *Reservation) Tax() Money              { return r.tax }
func (r *Reservation) Fee() Money              { return r.fee }
func (r *Reservation) Total() Money            { return r.total }
func (r *Reservation) PromotionID() *uuid.UUID { return r.promotionID }
func (r *Reservation) PromotionCode() *string  { return r.promotionCode }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }
