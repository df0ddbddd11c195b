package promotion

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidType    = errors.New("invalid promotion type")
	ErrInvalidValue   = errors.New("invalid promotion value")
	ErrInactive       = errors.New("promotion is inactive")
	ErrNotYetValid    = errors.New("promotion is not yet valid")
	ErrExpired        = errors.New("promotion has expired")
	ErrUsageExhausted = errors.New("promotion usage limit reached")
	ErrBelowMinimum   = errors.New("subtotal below promotion minimum")
)

type Type string

const (
	TypePercentage Type = "percentage"
	TypeFixed      Type = "fixed"
	TypeFreeDay    Type = "free_day"
)

func (t Type) String() string { return string(t) }

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypePercentage, TypeFixed, TypeFreeDay:
		return Type(s), nil
	default:
		return "", ErrInvalidType
	}
}

// Promotion is a discount code. usedCount only ever moves up, and only
// inside the reservation commit transaction (see the promotion repository's
// conditional redeem).
type Promotion struct {
	id                   uuid.UUID
	code                 string
	promoType            Type
	value                float64
	minBookingValueCents *int64
	maxDiscountCents     *int64
	validFrom            time.Time
	validUntil           time.Time
	usageLimit           *int32
	usedCount            int32
	active               bool
	createdAt            time.Time
}

func NewPromotion(
	id uuid.UUID,
	code string,
	promoType Type,
	value float64,
	minBookingValueCents, maxDiscountCents *int64,
	validFrom, validUntil time.Time,
	usageLimit *int32,
	usedCount int32,
	active bool,
	createdAt time.Time,
) (*Promotion, error) {
	if _, err := ParseType(string(promoType)); err != nil {
		return nil, err
	}
	if value <= 0 {
		return nil, ErrInvalidValue
	}
	if promoType == TypePercentage && value > 100 {
		return nil, ErrInvalidValue
	}

	return &Promotion{
		id:                   id,
		code:                 code,
		promoType:            promoType,
		value:                value,
		minBookingValueCents: minBookingValueCents,
		maxDiscountCents:     maxDiscountCents,
		validFrom:            validFrom,
		validUntil:           validUntil,
		usageLimit:           usageLimit,
		usedCount:            usedCount,
		active:               active,
		createdAt:            createdAt,
	}, nil
}

// ValidateAt re-checks every eligibility condition at the moment of
// application. Callers must never trust a previously computed discount.
func (p *Promotion) ValidateAt(now time.Time, subtotalCents int64) error {
	if !p.active {
		return ErrInactive
	}
	if now.Before(p.validFrom) {
		return ErrNotYetValid
	}
	if now.After(p.validUntil) {
		return ErrExpired
	}
	if !p.HasRemainingUses() {
		return ErrUsageExhausted
	}
	if p.minBookingValueCents != nil && subtotalCents < *p.minBookingValueCents {
		return ErrBelowMinimum
	}
	return nil
}

func (p *Promotion) HasRemainingUses() bool {
	return p.usageLimit == nil || p.usedCount < *p.usageLimit
}

// DiscountCents computes the bounded discount for a subtotal.
// percentage: subtotal*value/100 capped at maxDiscount; fixed: value, never
// exceeding subtotal; free_day: value days at the stay's evaluated day price.
func (p *Promotion) DiscountCents(subtotalCents, dayPriceCents int64) int64 {
	var discount int64
	switch p.promoType {
	case TypePercentage:
		discount = roundHalfUp(float64(subtotalCents) * p.value / 100.0)
		if p.maxDiscountCents != nil && discount > *p.maxDiscountCents {
			discount = *p.maxDiscountCents
		}
	case TypeFixed:
		discount = roundHalfUp(p.value)
	case TypeFreeDay:
		discount = roundHalfUp(p.value * float64(dayPriceCents))
		if p.maxDiscountCents != nil && discount > *p.maxDiscountCents {
			discount = *p.maxDiscountCents
		}
	}
	if discount > subtotalCents {
		discount = subtotalCents
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}

func (p *Promotion) ID() uuid.UUID                { return p.id }
func (p *Promotion) Code() string                 { return p.code }
func (p *Promotion) PromoType() Type              { return p.promoType }
func (p *Promotion) Value() float64               { return p.value }
func (p *Promotion) MinBookingValueCents() *int64 { return p.minBookingValueCents }
func (p *Promotion) MaxDiscountCents() *int64     { return p.maxDiscountCents }
func (p *Promotion) ValidFrom() time.Time         { return p.validFrom }
func (p *Promotion) ValidUntil() time.Time        { return p.validUntil }
func (p *Promotion) UsageLimit() *int32           { return p.usageLimit }
func (p *Promotion) UsedCount() int32             { return p.usedCount }
func (p *Promotion) IsActive() bool               { return p.active }
func (p *Promotion) CreatedAt() time.Time         { return p.createdAt }

func roundHalfUp(v float64) int64 {
	return int64(v + 0.5)
}
