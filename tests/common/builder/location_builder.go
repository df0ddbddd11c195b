//go:build unit || e2e

package builder

import (
	"time"

	domlocation "parkspot/internal/domain/location"
	"parkspot/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LocationBuilder struct {
	ID             uuid.UUID
	Name           string
	TotalSpots     int32
	BasePriceCents int64
	Status         string
}

func NewLocationBuilder() *LocationBuilder {
	return &LocationBuilder{
		ID:             uuid.New(),
		Name:           "Downtown Garage",
		TotalSpots:     10,
		BasePriceCents: 2500,
		Status:         string(domlocation.StatusActive),
	}
}

func (b *LocationBuilder) With(mutate func(*LocationBuilder)) *LocationBuilder {
	mutate(b)
	return b
}

func (b *LocationBuilder) BuildDomain() (*domlocation.Location, error) {
	return domlocation.NewLocation(b.ID, b.Name, b.TotalSpots, b.BasePriceCents, domlocation.Status(b.Status))
}

func (b *LocationBuilder) BuildSnapshot() *shared.LocationSnapshot {
	var snap shared.LocationSnapshot
	_ = copier.Copy(&snap, b)
	return &snap
}

func (b *LocationBuilder) WithName(name string) *LocationBuilder {
	b.Name = name
	return b
}

func (b *LocationBuilder) WithTotalSpots(spots int32) *LocationBuilder {
	b.TotalSpots = spots
	return b
}

func (b *LocationBuilder) WithBasePriceCents(cents int64) *LocationBuilder {
	b.BasePriceCents = cents
	return b
}

func (b *LocationBuilder) WithStatus(status string) *LocationBuilder {
	b.Status = status
	return b
}

func (b *LocationBuilder) AsInactive() *LocationBuilder {
	b.Status = string(domlocation.StatusInactive)
	return b
}

type RuleBuilder struct {
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

// NewRuleBuilder defaults to a weekend (Fri/Sat) override rule.
func NewRuleBuilder(locationID uuid.UUID) *RuleBuilder {
	price := int64(4000)
	return &RuleBuilder{
		ID:         uuid.New(),
		LocationID: locationID,
		ScopeKind:  string(domlocation.ScopeWeekdays),
		Weekdays:   []int32{int32(time.Friday), int32(time.Saturday)},
		EffectKind: string(domlocation.EffectOverride),
		PriceCents: &price,
		CreatedAt:  time.Now(),
	}
}

func (b *RuleBuilder) BuildSnapshot() shared.RuleSnapshot {
	var snap shared.RuleSnapshot
	_ = copier.Copy(&snap, b)
	return snap
}

func (b *RuleBuilder) BuildDomain() (*domlocation.Rule, error) {
	snap := b.BuildSnapshot()
	return snap.ToDomain()
}

func (b *RuleBuilder) WithDateRange(from, to time.Time) *RuleBuilder {
	b.ScopeKind = string(domlocation.ScopeDateRange)
	b.StartDate = &from
	b.EndDate = &to
	b.Weekdays = nil
	return b
}

func (b *RuleBuilder) WithWeekdays(days ...time.Weekday) *RuleBuilder {
	b.ScopeKind = string(domlocation.ScopeWeekdays)
	b.Weekdays = make([]int32, len(days))
	for i, d := range days {
		b.Weekdays[i] = int32(d)
	}
	b.StartDate = nil
	b.EndDate = nil
	return b
}

func (b *RuleBuilder) WithOverride(cents int64) *RuleBuilder {
	b.EffectKind = string(domlocation.EffectOverride)
	b.PriceCents = &cents
	b.Multiplier = nil
	return b
}

func (b *RuleBuilder) WithMultiplier(m float64) *RuleBuilder {
	b.EffectKind = string(domlocation.EffectMultiplier)
	b.Multiplier = &m
	b.PriceCents = nil
	return b
}

func (b *RuleBuilder) WithSurcharge(cents int64) *RuleBuilder {
	b.EffectKind = string(domlocation.EffectSurcharge)
	b.PriceCents = &cents
	b.Multiplier = nil
	return b
}

func (b *RuleBuilder) WithCreatedAt(t time.Time) *RuleBuilder {
	b.CreatedAt = t
	return b
}
