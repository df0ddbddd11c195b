package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// QuoteView is advisory and non-binding: no spot is held and no expiry is
// enforced. Double-booking prevention belongs entirely to the committer.
type QuoteView struct {
	LocationID     uuid.UUID   `json:"location_id"`
	LocationName   string      `json:"location_name"`
	CheckIn        time.Time   `json:"check_in"`
	CheckOut       time.Time   `json:"check_out"`
	Available      bool        `json:"available"`
	AvailableSpots int32       `json:"available_spots"`
	SubtotalCents  int64       `json:"subtotal_cents"`
	TaxCents       int64       `json:"tax_cents"`
	FeeCents       int64       `json:"fee_cents"`
	DiscountCents  int64       `json:"discount_cents"`
	TotalCents     int64       `json:"total_cents"`
	AppliedRuleIDs []uuid.UUID `json:"applied_rule_ids"`
	PromotionCode  *string     `json:"promotion_code,omitempty"`
}

type PromotionOption struct {
	ID                     uuid.UUID `json:"id"`
	Code                   string    `json:"code"`
	Type                   string    `json:"type"`
	PotentialDiscountCents int64     `json:"potential_discount_cents"`
	IsApplicable           bool      `json:"is_applicable"`
	Reason                 *string   `json:"reason,omitempty"`
}

type ReservationView struct {
	ID            uuid.UUID  `json:"id"`
	LocationID    uuid.UUID  `json:"location_id"`
	LocationName  string     `json:"location_name"`
	UserID        uuid.UUID  `json:"user_id"`
	CheckIn       time.Time  `json:"check_in"`
	CheckOut      time.Time  `json:"check_out"`
	Status        string     `json:"status"`
	SubtotalCents int64      `json:"subtotal_cents"`
	DiscountCents int64      `json:"discount_cents"`
	TaxCents      int64      `json:"tax_cents"`
	FeeCents      int64      `json:"fee_cents"`
	TotalCents    int64      `json:"total_cents"`
	PromotionID   *uuid.UUID `json:"promotion_id,omitempty"`
	PromotionCode *string    `json:"promotion_code,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type ReservationListItem struct {
	ID           uuid.UUID `json:"id"`
	LocationID   uuid.UUID `json:"location_id"`
	LocationName string    `json:"location_name"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	Status       string    `json:"status"`
	TotalCents   int64     `json:"total_cents"`
	CreatedAt    time.Time `json:"created_at"`
}

type DisputeView struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	RequesterID   uuid.UUID `json:"requester_id"`
	Reason        string    `json:"reason"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type RefundView struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	RequesterID   uuid.UUID `json:"requester_id"`
	AmountCents   int64     `json:"amount_cents"`
	Reason        string    `json:"reason"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type AuditEntryView struct {
	ID          uuid.UUID `json:"id"`
	SubjectKind string    `json:"subject_kind"`
	SubjectID   uuid.UUID `json:"subject_id"`
	ActorID     uuid.UUID `json:"actor_id"`
	FromStatus  string    `json:"from_status"`
	ToStatus    string    `json:"to_status"`
	OccurredAt  time.Time `json:"occurred_at"`
}
