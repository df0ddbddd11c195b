//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"parkspot/internal/domain/promotion"
	"parkspot/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validateCase struct {
	name   string
	mutate func(*builder.PromotionBuilder)
	errIs  error
}

func TestValidateAt(t *testing.T) {
	now := time.Now()
	subtotal := int64(5000)

	runCases := func(t *testing.T, cases []validateCase) {
		t.Helper()
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				b := builder.NewPromotionBuilder()
				if c.mutate != nil {
					c.mutate(b)
				}
				promo, err := b.BuildDomain()
				require.NoError(t, err)

				verr := promo.ValidateAt(now, subtotal)
				if c.errIs == nil {
					assert.NoError(t, verr)
				} else {
					assert.ErrorIs(t, verr, c.errIs)
				}
			})
		}
	}

	runCases(t, []validateCase{
		{
			name: "active promotion inside its window",
		},
		{
			name:   "inactive",
			mutate: func(b *builder.PromotionBuilder) { b.AsInactive() },
			errIs:  promotion.ErrInactive,
		},
		{
			name: "not yet valid",
			mutate: func(b *builder.PromotionBuilder) {
				b.WithValidity(now.Add(time.Hour), now.Add(48*time.Hour))
			},
			errIs: promotion.ErrNotYetValid,
		},
		{
			name: "expired",
			mutate: func(b *builder.PromotionBuilder) {
				b.WithValidity(now.Add(-48*time.Hour), now.Add(-time.Hour))
			},
			errIs: promotion.ErrExpired,
		},
		{
			name:   "usage exhausted",
			mutate: func(b *builder.PromotionBuilder) { b.AsExhausted() },
			errIs:  promotion.ErrUsageExhausted,
		},
		{
			name:   "subtotal below minimum booking value",
			mutate: func(b *builder.PromotionBuilder) { b.WithMinBookingValueCents(subtotal + 1) },
			errIs:  promotion.ErrBelowMinimum,
		},
		{
			name:   "minimum booking value exactly met",
			mutate: func(b *builder.PromotionBuilder) { b.WithMinBookingValueCents(subtotal) },
		},
		{
			name:   "usage limit with remaining uses",
			mutate: func(b *builder.PromotionBuilder) { b.WithUsage(5, 4) },
		},
	})
}

func TestDiscountCents(t *testing.T) {
	t.Run("percentage discount capped by max discount", func(t *testing.T) {
		// 20% of 5000 is 1000, exactly at the cap
		promo, err := builder.NewPromotionBuilder().
			WithType(promotion.TypePercentage, 20).
			WithMaxDiscountCents(1000).
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, int64(1000), promo.DiscountCents(5000, 2500))

		// 20% of 10000 is 2000, cap keeps it at 1000
		assert.Equal(t, int64(1000), promo.DiscountCents(10000, 2500))
	})

	t.Run("percentage without a cap", func(t *testing.T) {
		promo, err := builder.NewPromotionBuilder().
			WithType(promotion.TypePercentage, 20).
			WithoutMaxDiscount().
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, int64(2000), promo.DiscountCents(10000, 2500))
	})

	t.Run("percentage rounds half up", func(t *testing.T) {
		promo, err := builder.NewPromotionBuilder().
			WithType(promotion.TypePercentage, 15).
			WithoutMaxDiscount().
			BuildDomain()
		require.NoError(t, err)

		// 15% of 2501 = 375.15 -> 375; 15% of 2510 = 376.5 -> 377
		assert.Equal(t, int64(375), promo.DiscountCents(2501, 0))
		assert.Equal(t, int64(377), promo.DiscountCents(2510, 0))
	})

	t.Run("fixed discount never exceeds the subtotal", func(t *testing.T) {
		promo, err := builder.NewPromotionBuilder().
			WithType(promotion.TypeFixed, 2000).
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, int64(2000), promo.DiscountCents(5000, 2500))
		assert.Equal(t, int64(1500), promo.DiscountCents(1500, 2500))
	})

	t.Run("free day uses the evaluated day price", func(t *testing.T) {
		promo, err := builder.NewPromotionBuilder().
			WithType(promotion.TypeFreeDay, 1).
			WithoutMaxDiscount().
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, int64(2500), promo.DiscountCents(5000, 2500))
	})

	t.Run("free day respects the max discount cap", func(t *testing.T) {
		promo, err := builder.NewPromotionBuilder().
			WithType(promotion.TypeFreeDay, 2).
			WithMaxDiscountCents(3000).
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, int64(3000), promo.DiscountCents(10000, 2500))
	})
}

func TestNewPromotion(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*builder.PromotionBuilder)
		errIs  error
	}{
		{
			name: "valid percentage promotion",
		},
		{
			name:   "unknown type",
			mutate: func(b *builder.PromotionBuilder) { b.PromoType = "bogof" },
			errIs:  promotion.ErrInvalidType,
		},
		{
			name:   "zero value",
			mutate: func(b *builder.PromotionBuilder) { b.Value = 0 },
			errIs:  promotion.ErrInvalidValue,
		},
		{
			name:   "negative value",
			mutate: func(b *builder.PromotionBuilder) { b.Value = -5 },
			errIs:  promotion.ErrInvalidValue,
		},
		{
			name:   "percentage above 100",
			mutate: func(b *builder.PromotionBuilder) { b.Value = 101 },
			errIs:  promotion.ErrInvalidValue,
		},
		{
			name: "fixed value above 100 is fine",
			mutate: func(b *builder.PromotionBuilder) {
				b.WithType(promotion.TypeFixed, 2500)
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewPromotionBuilder()
			if c.mutate != nil {
				c.mutate(b)
			}
			promo, err := b.BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, promo)
			} else {
				require.Nil(t, promo)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
