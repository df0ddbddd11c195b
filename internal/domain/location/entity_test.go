//go:build unit

package location_test

import (
	"testing"
	"time"

	"parkspot/internal/domain/location"
	"parkspot/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*builder.LocationBuilder)
		errIs  error
	}{
		{
			name: "valid active location",
		},
		{
			name:   "empty name",
			mutate: func(b *builder.LocationBuilder) { b.WithName("") },
			errIs:  location.ErrEmptyName,
		},
		{
			name:   "zero spots",
			mutate: func(b *builder.LocationBuilder) { b.WithTotalSpots(0) },
			errIs:  location.ErrNonPositiveSpots,
		},
		{
			name:   "negative spots",
			mutate: func(b *builder.LocationBuilder) { b.WithTotalSpots(-1) },
			errIs:  location.ErrNonPositiveSpots,
		},
		{
			name:   "negative base price",
			mutate: func(b *builder.LocationBuilder) { b.WithBasePriceCents(-100) },
			errIs:  location.ErrNegativePrice,
		},
		{
			name:   "free location is allowed",
			mutate: func(b *builder.LocationBuilder) { b.WithBasePriceCents(0) },
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewLocationBuilder()
			if c.mutate != nil {
				c.mutate(b)
			}
			loc, err := b.BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, loc)
			} else {
				require.Nil(t, loc)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestIsBookable(t *testing.T) {
	for _, status := range []string{"inactive", "pending", "maintenance"} {
		loc, err := builder.NewLocationBuilder().WithStatus(status).BuildDomain()
		require.NoError(t, err)
		assert.False(t, loc.IsBookable(), "status %s must not be bookable", status)
	}

	loc, err := builder.NewLocationBuilder().BuildDomain()
	require.NoError(t, err)
	assert.True(t, loc.IsBookable())
}

func TestScope(t *testing.T) {
	// 2026-01-02 is a Friday
	friday := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	t.Run("date range is half-open", func(t *testing.T) {
		scope, err := location.NewDateRangeScope(friday, friday.AddDate(0, 0, 2))
		require.NoError(t, err)

		assert.True(t, scope.Matches(friday))
		assert.True(t, scope.Matches(friday.AddDate(0, 0, 1)))
		assert.False(t, scope.Matches(friday.AddDate(0, 0, 2)))
		assert.False(t, scope.Matches(friday.AddDate(0, 0, -1)))
	})

	t.Run("date range rejects inverted bounds", func(t *testing.T) {
		_, err := location.NewDateRangeScope(friday, friday)
		assert.ErrorIs(t, err, location.ErrInvalidDateRange)
	})

	t.Run("bounds normalize to whole calendar days", func(t *testing.T) {
		// noon to noon covers both touched days
		scope, err := location.NewDateRangeScope(
			friday.Add(12*time.Hour),
			friday.AddDate(0, 0, 1).Add(12*time.Hour),
		)
		require.NoError(t, err)

		assert.True(t, scope.Matches(friday))
		assert.True(t, scope.Matches(friday.AddDate(0, 0, 1)))
		assert.False(t, scope.Matches(friday.AddDate(0, 0, 2)))
	})

	t.Run("mid-day bounds on one day cover that day", func(t *testing.T) {
		scope, err := location.NewDateRangeScope(
			friday.Add(8*time.Hour),
			friday.Add(20*time.Hour),
		)
		require.NoError(t, err)

		assert.True(t, scope.Matches(friday))
		assert.False(t, scope.Matches(friday.AddDate(0, 0, 1)))
	})

	t.Run("weekday scope matches by weekday", func(t *testing.T) {
		scope, err := location.NewWeekdayScope(time.Friday, time.Saturday)
		require.NoError(t, err)

		assert.True(t, scope.Matches(friday))
		assert.True(t, scope.Matches(friday.AddDate(0, 0, 1)))
		assert.False(t, scope.Matches(friday.AddDate(0, 0, 2)))
	})

	t.Run("weekday scope needs at least one day", func(t *testing.T) {
		_, err := location.NewWeekdayScope()
		assert.ErrorIs(t, err, location.ErrNoWeekdays)
	})
}

func TestEffect(t *testing.T) {
	t.Run("override", func(t *testing.T) {
		effect, err := location.NewOverrideEffect(4000)
		require.NoError(t, err)
		assert.Equal(t, int64(4000), effect.Apply(2500))

		_, err = location.NewOverrideEffect(-1)
		assert.ErrorIs(t, err, location.ErrNegativeOverride)
	})

	t.Run("multiplier rounds half up", func(t *testing.T) {
		effect, err := location.NewMultiplierEffect(1.5)
		require.NoError(t, err)
		assert.Equal(t, int64(3750), effect.Apply(2500))

		effect, err = location.NewMultiplierEffect(0.5)
		require.NoError(t, err)
		assert.Equal(t, int64(1251), effect.Apply(2501))

		_, err = location.NewMultiplierEffect(0)
		assert.ErrorIs(t, err, location.ErrInvalidMultiplier)
	})

	t.Run("surcharge clamps at zero", func(t *testing.T) {
		effect := location.NewSurchargeEffect(500)
		assert.Equal(t, int64(3000), effect.Apply(2500))

		effect = location.NewSurchargeEffect(-3000)
		assert.Equal(t, int64(0), effect.Apply(2500))
	})
}

func TestSortByPrecedence(t *testing.T) {
	locationID := builder.NewLocationBuilder().ID
	created := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

	weekday, err := builder.NewRuleBuilder(locationID).
		WithWeekdays(time.Friday).
		WithCreatedAt(created).
		BuildDomain()
	require.NoError(t, err)

	dateRange, err := builder.NewRuleBuilder(locationID).
		WithDateRange(created, created.AddDate(0, 1, 0)).
		WithCreatedAt(created.Add(time.Hour)).
		BuildDomain()
	require.NoError(t, err)

	olderDateRange, err := builder.NewRuleBuilder(locationID).
		WithDateRange(created, created.AddDate(0, 1, 0)).
		WithCreatedAt(created).
		BuildDomain()
	require.NoError(t, err)

	rules := []*location.Rule{weekday, dateRange, olderDateRange}
	location.SortByPrecedence(rules)

	assert.Equal(t, olderDateRange.ID(), rules[0].ID())
	assert.Equal(t, dateRange.ID(), rules[1].ID())
	assert.Equal(t, weekday.ID(), rules[2].ID())
}
