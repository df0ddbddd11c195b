package shared

import (
	"context"
	"time"

	"parkspot/internal/domain/location"
	"parkspot/internal/domain/promotion"

	"github.com/google/uuid"
)

// CommandReads are the minimal snapshots commands validate against. Bound to
// the pool when obtained from the UnitOfWork, or to the transaction when
// obtained through Tx.Reads().
type CommandReads interface {
	LocationByID(ctx context.Context, id uuid.UUID) (*LocationSnapshot, error)
	PricingRulesByLocation(ctx context.Context, locationID uuid.UUID) ([]RuleSnapshot, error)
	PromotionByCode(ctx context.Context, code string) (*PromotionSnapshot, error)
	// CountOverlapping counts PENDING/CONFIRMED reservations overlapping
	// [start, end) at the location.
	CountOverlapping(ctx context.Context, locationID uuid.UUID, start, end time.Time) (int32, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	DisputeByID(ctx context.Context, id uuid.UUID) (*DisputeSnapshot, error)
	RefundByID(ctx context.Context, id uuid.UUID) (*RefundSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type LocationSnapshot struct {
	ID             uuid.UUID
	Name           string
	TotalSpots     int32
	BasePriceCents int64
	Status         string
}

func (s *LocationSnapshot) ToDomain() (*location.Location, error) {
	return location.NewLocation(s.ID, s.Name, s.TotalSpots, s.BasePriceCents, location.Status(s.Status))
}

type RuleSnapshot struct {
	ID         uuid.UUID
	LocationID uuid.UUID
	ScopeKind  string
	StartDate  *time.Time
	EndDate    *time.Time
	Weekdays   []int32
	EffectKind string
	PriceCents *int64
	Multiplier *float64
	CreatedAt  time.Time
}

func (s RuleSnapshot) ToDomain() (*location.Rule, error) {
	var scope location.Scope
	var err error
	switch location.ScopeKind(s.ScopeKind) {
	case location.ScopeDateRange:
		if s.StartDate == nil || s.EndDate == nil {
			return nil, location.ErrInvalidScope
		}
		scope, err = location.NewDateRangeScope(*s.StartDate, *s.EndDate)
	case location.ScopeWeekdays:
		days := make([]time.Weekday, len(s.Weekdays))
		for i, d := range s.Weekdays {
			days[i] = time.Weekday(d)
		}
		scope, err = location.NewWeekdayScope(days...)
	default:
		return nil, location.ErrInvalidScope
	}
	if err != nil {
		return nil, err
	}

	var effect location.Effect
	switch location.EffectKind(s.EffectKind) {
	case location.EffectOverride:
		if s.PriceCents == nil {
			return nil, location.ErrInvalidEffect
		}
		effect, err = location.NewOverrideEffect(*s.PriceCents)
	case location.EffectMultiplier:
		if s.Multiplier == nil {
			return nil, location.ErrInvalidEffect
		}
		effect, err = location.NewMultiplierEffect(*s.Multiplier)
	case location.EffectSurcharge:
		if s.PriceCents == nil {
			return nil, location.ErrInvalidEffect
		}
		effect = location.NewSurchargeEffect(*s.PriceCents)
	default:
		return nil, location.ErrInvalidEffect
	}
	if err != nil {
		return nil, err
	}

	return location.NewRule(s.ID, s.LocationID, scope, effect, s.CreatedAt)
}

func RulesToDomain(snaps []RuleSnapshot) ([]*location.Rule, error) {
	rules := make([]*location.Rule, 0, len(snaps))
	for _, s := range snaps {
		r, err := s.ToDomain()
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

type PromotionSnapshot struct {
	ID                   uuid.UUID
	Code                 string
	PromoType            string
	Value                float64
	MinBookingValueCents *int64
	MaxDiscountCents     *int64
	ValidFrom            time.Time
	ValidUntil           time.Time
	UsageLimit           *int32
	UsedCount            int32
	Active               bool
	CreatedAt            time.Time
}

func (s *PromotionSnapshot) ToDomain() (*promotion.Promotion, error) {
	return promotion.NewPromotion(
		s.ID,
		s.Code,
		promotion.Type(s.PromoType),
		s.Value,
		s.MinBookingValueCents,
		s.MaxDiscountCents,
		s.ValidFrom,
		s.ValidUntil,
		s.UsageLimit,
		s.UsedCount,
		s.Active,
		s.CreatedAt,
	)
}

type ReservationSnapshot struct {
	ID         uuid.UUID
	LocationID uuid.UUID
	UserID     uuid.UUID
	Status     string
	CheckIn    time.Time
	CheckOut   time.Time
	TotalCents int64
}

type DisputeSnapshot struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	RequesterID   uuid.UUID
	Reason        string
	Status        string
}

type RefundSnapshot struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	RequesterID   uuid.UUID
	AmountCents   int64
	Reason        string
	Status        string
}

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              uuid.UUID
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ExpiresAt           time.Time
}
