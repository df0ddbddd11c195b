package location

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidScope      = errors.New("invalid rule scope")
	ErrInvalidEffect     = errors.New("invalid rule effect")
	ErrInvalidDateRange  = errors.New("rule date range start must be before end")
	ErrNoWeekdays        = errors.New("weekday rule must name at least one weekday")
	ErrNegativeOverride  = errors.New("override price cannot be negative")
	ErrInvalidMultiplier = errors.New("multiplier must be positive")
)

// ScopeKind and EffectKind are closed sets; anything else is rejected at
// construction.
type ScopeKind string

const (
	ScopeDateRange ScopeKind = "date_range"
	ScopeWeekdays  ScopeKind = "weekdays"
)

type EffectKind string

const (
	EffectOverride   EffectKind = "override"
	EffectMultiplier EffectKind = "multiplier"
	EffectSurcharge  EffectKind = "surcharge"
)

// Scope decides which calendar days a rule applies to. Date ranges are
// half-open day intervals [from, to). Holiday pricing is expressed as a
// date-range rule covering the holiday.
type Scope struct {
	kind     ScopeKind
	from     time.Time
	to       time.Time
	weekdays map[time.Weekday]bool
}

// NewDateRangeScope normalizes the bounds to day granularity: from floors to
// UTC midnight, to ceils to the next midnight when it carries a time of day.
// The scope then covers every calendar day the given range touches, so a
// range starting mid-day still matches its first day.
func NewDateRangeScope(from, to time.Time) (Scope, error) {
	from = dayFloor(from)
	if ceiled := dayFloor(to); ceiled.Equal(to.UTC()) {
		to = ceiled
	} else {
		to = ceiled.AddDate(0, 0, 1)
	}
	if !from.Before(to) {
		return Scope{}, ErrInvalidDateRange
	}
	return Scope{kind: ScopeDateRange, from: from, to: to}, nil
}

func NewWeekdayScope(days ...time.Weekday) (Scope, error) {
	if len(days) == 0 {
		return Scope{}, ErrNoWeekdays
	}
	set := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		set[d] = true
	}
	return Scope{kind: ScopeWeekdays, weekdays: set}, nil
}

func (s Scope) Kind() ScopeKind { return s.kind }

// Matches reports whether the rule covers the calendar day containing t.
func (s Scope) Matches(day time.Time) bool {
	switch s.kind {
	case ScopeDateRange:
		return !day.Before(s.from) && day.Before(s.to)
	case ScopeWeekdays:
		return s.weekdays[day.Weekday()]
	default:
		return false
	}
}

// Effect is how a matching rule changes the day price.
type Effect struct {
	kind           EffectKind
	overrideCents  int64
	multiplier     float64
	surchargeCents int64
}

func NewOverrideEffect(priceCents int64) (Effect, error) {
	if priceCents < 0 {
		return Effect{}, ErrNegativeOverride
	}
	return Effect{kind: EffectOverride, overrideCents: priceCents}, nil
}

func NewMultiplierEffect(multiplier float64) (Effect, error) {
	if multiplier <= 0 {
		return Effect{}, ErrInvalidMultiplier
	}
	return Effect{kind: EffectMultiplier, multiplier: multiplier}, nil
}

func NewSurchargeEffect(cents int64) Effect {
	return Effect{kind: EffectSurcharge, surchargeCents: cents}
}

func (e Effect) Kind() EffectKind { return e.kind }

// Apply computes the day price given the location's base day price.
// Results below zero clamp to zero.
func (e Effect) Apply(baseCents int64) int64 {
	var result int64
	switch e.kind {
	case EffectOverride:
		result = e.overrideCents
	case EffectMultiplier:
		result = roundHalfUp(float64(baseCents) * e.multiplier)
	case EffectSurcharge:
		result = baseCents + e.surchargeCents
	default:
		result = baseCents
	}
	if result < 0 {
		return 0
	}
	return result
}

// Rule belongs to exactly one Location.
type Rule struct {
	id         uuid.UUID
	locationID uuid.UUID
	scope      Scope
	effect     Effect
	createdAt  time.Time
}

func NewRule(id, locationID uuid.UUID, scope Scope, effect Effect, createdAt time.Time) (*Rule, error) {
	if scope.kind != ScopeDateRange && scope.kind != ScopeWeekdays {
		return nil, ErrInvalidScope
	}
	switch effect.kind {
	case EffectOverride, EffectMultiplier, EffectSurcharge:
	default:
		return nil, ErrInvalidEffect
	}

	return &Rule{
		id:         id,
		locationID: locationID,
		scope:      scope,
		effect:     effect,
		createdAt:  createdAt,
	}, nil
}

func (r *Rule) ID() uuid.UUID         { return r.id }
func (r *Rule) LocationID() uuid.UUID { return r.locationID }
func (r *Rule) Scope() Scope          { return r.scope }
func (r *Rule) Effect() Effect        { return r.effect }
func (r *Rule) CreatedAt() time.Time  { return r.createdAt }

func (r *Rule) Matches(day time.Time) bool {
	return r.scope.Matches(day)
}

// SortByPrecedence orders rules so the first match wins during evaluation:
// explicit date ranges beat recurring weekday patterns, ties break by
// earliest creation, then by ID for full determinism.
func SortByPrecedence(rules []*Rule) {
	sort.SliceStable(rules, func(i, j int) bool {
		a, b := rules[i], rules[j]
		if a.scope.kind != b.scope.kind {
			return a.scope.kind == ScopeDateRange
		}
		if !a.createdAt.Equal(b.createdAt) {
			return a.createdAt.Before(b.createdAt)
		}
		return a.id.String() < b.id.String()
	})
}

func roundHalfUp(v float64) int64 {
	return int64(v + 0.5)
}

func dayFloor(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
