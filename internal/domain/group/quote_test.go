//go:build unit

package group_test

import (
	"testing"
	"time"

	"hotel-booking-core/internal/domain/group"
	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/stay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func nights(t *testing.T, n int) stay.Range {
	t.Helper()
	in, _ := stay.ParseDate("2025-09-10")
	r, err := stay.NewRange(in, in.AddDate(0, 0, n))
	require.NoError(t, err)
	return r
}

func TestDiscountPercent(t *testing.T) {
	cases := []struct {
		size     int
		category group.Category
		want     int64
	}{
		{size: 5, category: group.CategoryTour, want: 0},
		{size: 9, category: group.CategoryCorporate, want: 5},
		{size: 10, category: group.CategoryWedding, want: 10},
		{size: 19, category: group.CategoryOther, want: 10},
		{size: 20, category: group.CategoryTour, want: 15},
		{size: 20, category: group.CategoryConference, want: 20},
		{size: 49, category: group.CategoryWedding, want: 15},
		{size: 50, category: group.CategoryTour, want: 20},
		{size: 50, category: group.CategoryCorporate, want: 25},
		{size: 500, category: group.CategoryConference, want: 25},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, group.DiscountPercent(c.size, c.category), "%d %s", c.size, c.category)
	}
}

func TestNewQuote(t *testing.T) {
	t.Run("corporate group of 25 for 3 nights and 10 rooms", func(t *testing.T) {
		q, err := group.NewQuote(money.FromMajor(100), 25, group.CategoryCorporate, nights(t, 3), 10, now)
		require.NoError(t, err)

		assert.Equal(t, int64(300000), q.BasePrice.Cents())
		assert.Equal(t, int64(20), q.DiscountPercent)
		assert.Equal(t, int64(60000), q.DiscountAmount.Cents())
		assert.Equal(t, int64(240000), q.RoomsTotal.Cents())

		assert.Equal(t, int64(1500000), q.Services.MeetingRoom.Cents())
		assert.Equal(t, int64(100000), q.Services.CateringPerPerson.Cents())
		assert.True(t, q.Services.Decorations.IsZero())
		assert.Equal(t, int64(800000), q.Services.Transportation.Cents())
		assert.Equal(t, int64(2400000), q.ServicesTotal.Cents())

		assert.Equal(t, int64(2640000), q.GrandTotal.Cents())
		assert.Equal(t, now.Add(7*24*time.Hour), q.ValidUntil)
		assert.Equal(t, 3, q.Nights)
	})

	t.Run("wedding gets catering and decorations", func(t *testing.T) {
		q, err := group.NewQuote(money.FromMajor(80), 12, group.CategoryWedding, nights(t, 2), 6, now)
		require.NoError(t, err)

		assert.Equal(t, int64(10), q.DiscountPercent)
		assert.True(t, q.Services.MeetingRoom.IsZero())
		assert.Equal(t, int64(200000), q.Services.CateringPerPerson.Cents())
		assert.Equal(t, int64(1500000), q.Services.Decorations.Cents())
		assert.True(t, q.Services.Transportation.IsZero())
		// 80*2*6 = 960, less 10% = 864
		assert.Equal(t, int64(86400), q.RoomsTotal.Cents())
		assert.Equal(t, int64(86400+1700000), q.GrandTotal.Cents())
	})

	t.Run("transportation only above twenty guests", func(t *testing.T) {
		at, err := group.NewQuote(money.FromMajor(50), 20, group.CategoryTour, nights(t, 1), 5, now)
		require.NoError(t, err)
		assert.True(t, at.Services.Transportation.IsZero())

		above, err := group.NewQuote(money.FromMajor(50), 21, group.CategoryTour, nights(t, 1), 5, now)
		require.NoError(t, err)
		assert.Equal(t, group.GroupTransportation, above.Services.Transportation)
	})

	t.Run("small groups are quoted without a discount", func(t *testing.T) {
		q, err := group.NewQuote(money.FromMajor(50), 1, group.CategoryOther, nights(t, 1), 1, now)
		require.NoError(t, err)
		assert.Equal(t, int64(0), q.DiscountPercent)
		assert.Equal(t, q.BasePrice, q.RoomsTotal)
	})

	t.Run("input validation", func(t *testing.T) {
		_, err := group.NewQuote(money.FromMajor(50), 0, group.CategoryTour, nights(t, 1), 1, now)
		require.ErrorIs(t, err, group.ErrInvalidGroupSize)

		_, err = group.NewQuote(money.FromMajor(50), 10, "retreat", nights(t, 1), 1, now)
		require.ErrorIs(t, err, group.ErrInvalidCategory)

		_, err = group.NewQuote(money.FromMajor(50), 10, group.CategoryTour, stay.Range{}, 1, now)
		require.ErrorIs(t, err, stay.ErrInvalidDateRange)

		_, err = group.NewQuote(money.FromMajor(50), 10, group.CategoryTour, nights(t, 1), 0, now)
		require.ErrorIs(t, err, group.ErrInvalidRooms)
	})
}
