//go:build unit || e2e

package builder

import (
	"time"

	dompromotion "parkspot/internal/domain/promotion"
	"parkspot/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PromotionBuilder struct {
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

// NewPromotionBuilder defaults to an active 20% promotion capped at $10.
func NewPromotionBuilder() *PromotionBuilder {
	now := time.Now()
	maxDiscount := int64(1000)
	return &PromotionBuilder{
		ID:               uuid.New(),
		Code:             "SAVE20",
		PromoType:        string(dompromotion.TypePercentage),
		Value:            20,
		MaxDiscountCents: &maxDiscount,
		ValidFrom:        now.Add(-24 * time.Hour),
		ValidUntil:       now.Add(30 * 24 * time.Hour),
		Active:           true,
		CreatedAt:        now,
	}
}

func (b *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(b)
	return b
}

func (b *PromotionBuilder) BuildSnapshot() *shared.PromotionSnapshot {
	var snap shared.PromotionSnapshot
	_ = copier.Copy(&snap, b)
	return &snap
}

func (b *PromotionBuilder) BuildDomain() (*dompromotion.Promotion, error) {
	return b.BuildSnapshot().ToDomain()
}

func (b *PromotionBuilder) WithCode(code string) *PromotionBuilder {
	b.Code = code
	return b
}

func (b *PromotionBuilder) WithType(t dompromotion.Type, value float64) *PromotionBuilder {
	b.PromoType = string(t)
	b.Value = value
	return b
}

func (b *PromotionBuilder) WithMinBookingValueCents(cents int64) *PromotionBuilder {
	b.MinBookingValueCents = &cents
	return b
}

func (b *PromotionBuilder) WithMaxDiscountCents(cents int64) *PromotionBuilder {
	b.MaxDiscountCents = &cents
	return b
}

func (b *PromotionBuilder) WithoutMaxDiscount() *PromotionBuilder {
	b.MaxDiscountCents = nil
	return b
}

func (b *PromotionBuilder) WithValidity(from, until time.Time) *PromotionBuilder {
	b.ValidFrom = from
	b.ValidUntil = until
	return b
}

func (b *PromotionBuilder) WithUsage(limit, used int32) *PromotionBuilder {
	b.UsageLimit = &limit
	b.UsedCount = used
	return b
}

func (b *PromotionBuilder) AsInactive() *PromotionBuilder {
	b.Active = false
	return b
}

func (b *PromotionBuilder) AsExhausted() *PromotionBuilder {
	return b.WithUsage(5, 5)
}
