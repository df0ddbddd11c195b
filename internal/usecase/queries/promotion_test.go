//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"parkspot/internal/domain/promotion"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/queries"
	"parkspot/internal/usecase/shared"
	"parkspot/tests/common/builder"
	queriesmock "parkspot/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListApplicable(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	checkIn := now.AddDate(0, 0, 1)
	checkOut := now.AddDate(0, 0, 3)

	newFixture := func(t *testing.T) (*queriesmock.MockStayPricer, *queriesmock.MockPromotionViewRepo, queries.PromotionQueries) {
		t.Helper()
		ctrl := gomock.NewController(t)
		pricer := queriesmock.NewMockStayPricer(ctrl)
		promos := queriesmock.NewMockPromotionViewRepo(ctrl)
		sut := queries.NewPromotionQueries(
			queriesmock.NewMockLocationViewRepo(ctrl),
			promos,
			pricer,
			clock.NewMockClock(now),
		)
		return pricer, promos, sut
	}

	inWindow := func(b *builder.PromotionBuilder) *builder.PromotionBuilder {
		return b.WithValidity(now.Add(-time.Hour), now.AddDate(0, 1, 0))
	}

	t.Run("ranks applicable promotions by potential discount", func(t *testing.T) {
		pricer, promos, sut := newFixture(t)
		locationID := builder.NewLocationBuilder().ID

		pricer.EXPECT().PriceStay(gomock.Any(), locationID, gomock.Any()).Return(int64(5000), int64(2500), nil)
		promos.EXPECT().FindActive(gomock.Any(), now).Return([]shared.PromotionSnapshot{
			*inWindow(builder.NewPromotionBuilder().WithCode("BETA").WithType(promotion.TypeFixed, 500)).BuildSnapshot(),
			*inWindow(builder.NewPromotionBuilder()).BuildSnapshot(),
			*inWindow(builder.NewPromotionBuilder().WithCode("BIGSAVE").WithType(promotion.TypeFixed, 2000)).BuildSnapshot(),
			*inWindow(builder.NewPromotionBuilder().WithCode("ALPHA").WithType(promotion.TypeFixed, 500)).BuildSnapshot(),
		}, nil)

		got, err := sut.ListApplicable(context.Background(), queries.ApplicablePromotionsInput{
			LocationID: locationID,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
		})
		require.NoError(t, err)
		require.Len(t, got, 4)

		codes := make([]string, len(got))
		for i, opt := range got {
			codes[i] = opt.Code
		}
		// discount desc, equal discounts break by code
		assert.Equal(t, []string{"BIGSAVE", "SAVE20", "ALPHA", "BETA"}, codes)

		assert.Equal(t, int64(2000), got[0].PotentialDiscountCents)
		assert.Equal(t, int64(1000), got[1].PotentialDiscountCents)
		for _, opt := range got {
			assert.True(t, opt.IsApplicable)
			assert.Nil(t, opt.Reason)
		}
	})

	t.Run("inapplicable promotions sink to the bottom with a reason", func(t *testing.T) {
		pricer, promos, sut := newFixture(t)
		locationID := builder.NewLocationBuilder().ID

		pricer.EXPECT().PriceStay(gomock.Any(), locationID, gomock.Any()).Return(int64(5000), int64(2500), nil)
		promos.EXPECT().FindActive(gomock.Any(), now).Return([]shared.PromotionSnapshot{
			// would out-discount everything if the stay were big enough
			*inWindow(builder.NewPromotionBuilder().
				WithCode("MINSPEND").
				WithType(promotion.TypeFixed, 3000).
				WithMinBookingValueCents(10000)).BuildSnapshot(),
			*inWindow(builder.NewPromotionBuilder()).BuildSnapshot(),
		}, nil)

		got, err := sut.ListApplicable(context.Background(), queries.ApplicablePromotionsInput{
			LocationID: locationID,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
		})
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, "SAVE20", got[0].Code)
		assert.True(t, got[0].IsApplicable)

		assert.Equal(t, "MINSPEND", got[1].Code)
		assert.False(t, got[1].IsApplicable)
		require.NotNil(t, got[1].Reason)
		assert.Contains(t, *got[1].Reason, "minimum")
	})

	t.Run("free day promotions price off the evaluated day rate", func(t *testing.T) {
		pricer, promos, sut := newFixture(t)
		locationID := builder.NewLocationBuilder().ID

		pricer.EXPECT().PriceStay(gomock.Any(), locationID, gomock.Any()).Return(int64(5000), int64(2500), nil)
		promos.EXPECT().FindActive(gomock.Any(), now).Return([]shared.PromotionSnapshot{
			*inWindow(builder.NewPromotionBuilder().
				WithCode("FREEDAY").
				WithType(promotion.TypeFreeDay, 1).
				WithoutMaxDiscount()).BuildSnapshot(),
		}, nil)

		got, err := sut.ListApplicable(context.Background(), queries.ApplicablePromotionsInput{
			LocationID: locationID,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(2500), got[0].PotentialDiscountCents)
	})

	t.Run("reversed interval is rejected", func(t *testing.T) {
		_, _, sut := newFixture(t)

		_, err := sut.ListApplicable(context.Background(), queries.ApplicablePromotionsInput{
			LocationID: builder.NewLocationBuilder().ID,
			CheckIn:    checkOut,
			CheckOut:   checkIn,
		})
		assert.True(t, errs.Is(err, queries.ErrInvalidStay))
	})
}
