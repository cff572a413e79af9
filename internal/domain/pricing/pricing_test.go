//go:build unit

package pricing_test

import (
	"testing"

	"hotel-booking-core/internal/domain/hotel"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/pricing"
	"hotel-booking-core/internal/domain/stay"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	hotel  *hotel.Hotel
	window *inventory.Window
	span   stay.Range
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	hotelID := uuid.New()
	span, err := stay.ParseRange("2025-07-01", "2025-07-08")
	require.NoError(t, err)

	weekend, err := stay.ParseDate("2025-07-05")
	require.NoError(t, err)
	override := money.FromMajor(200)
	surge, err := inventory.NewSurge(15000)
	require.NoError(t, err)

	stored := []*inventory.Day{
		inventory.ReconstructDay(hotelID, weekend, 100, 100, &override, surge),
	}
	return fixture{
		hotel:  hotel.Reconstruct(hotelID, "Seaside", money.FromMajor(150), true),
		window: inventory.NewWindow(hotelID, span, stored),
		span:   span,
	}
}

func TestNightlyPrice(t *testing.T) {
	f := newFixture(t)

	t.Run("falls back to the hotel price", func(t *testing.T) {
		d, _ := stay.ParseDate("2025-07-01")
		assert.Equal(t, int64(15000), pricing.NightlyPrice(f.hotel, f.window.Day(d)).Cents())
	})

	t.Run("uses the date override and surge", func(t *testing.T) {
		d, _ := stay.ParseDate("2025-07-05")
		assert.Equal(t, int64(30000), pricing.NightlyPrice(f.hotel, f.window.Day(d)).Cents())
	})

	t.Run("rounds half up to a cent", func(t *testing.T) {
		h := hotel.Reconstruct(uuid.New(), "Odd", money.FromCents(9999), true)
		d, _ := stay.ParseDate("2025-07-01")
		day := inventory.DefaultDay(h.ID(), d)
		s, _ := inventory.NewSurge(10050)
		require.NoError(t, day.SetSurge(s))
		// 9999 * 1.005 = 10048.995
		assert.Equal(t, int64(10049), pricing.NightlyPrice(h, day).Cents())
	})
}

func TestTotalPrice(t *testing.T) {
	f := newFixture(t)

	t.Run("sum of nightly prices times rooms", func(t *testing.T) {
		for _, rooms := range []int{1, 2, 7} {
			total, err := pricing.TotalPrice(f.hotel, f.window, f.span, rooms)
			require.NoError(t, err)

			var want int64
			for _, d := range f.span.Dates() {
				want += pricing.NightlyPrice(f.hotel, f.window.Day(d)).Cents() * int64(rooms)
			}
			assert.Equal(t, want, total.Cents())
		}
	})

	t.Run("six plain nights and one surged weekend night", func(t *testing.T) {
		total, err := pricing.TotalPrice(f.hotel, f.window, f.span, 2)
		require.NoError(t, err)
		assert.Equal(t, int64((6*15000+30000)*2), total.Cents())
	})

	t.Run("surge change moves the total by the nightly delta", func(t *testing.T) {
		before, err := pricing.TotalPrice(f.hotel, f.window, f.span, 3)
		require.NoError(t, err)

		d, _ := stay.ParseDate("2025-07-02")
		day := f.window.Day(d)
		oldNightly := pricing.NightlyPrice(f.hotel, day)
		s, _ := inventory.NewSurge(13333)
		require.NoError(t, day.SetSurge(s))
		newNightly := pricing.NightlyPrice(f.hotel, day)

		after, err := pricing.TotalPrice(f.hotel, f.window, f.span, 3)
		require.NoError(t, err)
		assert.Equal(t, newNightly.Sub(oldNightly).Mul(3).Cents(), after.Sub(before).Cents())
	})

	t.Run("invalid room count", func(t *testing.T) {
		_, err := pricing.TotalPrice(f.hotel, f.window, f.span, 0)
		require.ErrorIs(t, err, inventory.ErrInvalidRoomCount)
	})

	t.Run("zero range", func(t *testing.T) {
		_, err := pricing.TotalPrice(f.hotel, f.window, stay.Range{}, 1)
		require.ErrorIs(t, err, stay.ErrInvalidDateRange)
	})
}

func TestCalculator(t *testing.T) {
	f := newFixture(t)

	t.Run("mode selection", func(t *testing.T) {
		c, err := pricing.NewCalculator("")
		require.NoError(t, err)
		assert.Equal(t, pricing.ModeDynamic, c.Mode())

		c, err = pricing.NewCalculator(pricing.ModeStatic)
		require.NoError(t, err)
		assert.Equal(t, pricing.ModeStatic, c.Mode())

		_, err = pricing.NewCalculator("auction")
		require.ErrorIs(t, err, pricing.ErrUnknownMode)
	})

	t.Run("static ignores per-date overrides", func(t *testing.T) {
		b, err := pricing.StaticCalculator{}.Quote(f.hotel, f.window, f.span, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(15000*7*2), b.Total.Cents())
		assert.Len(t, b.Nights, 7)
	})

	t.Run("dynamic breakdown lists every night", func(t *testing.T) {
		b, err := pricing.DynamicCalculator{}.Quote(f.hotel, f.window, f.span, 1)
		require.NoError(t, err)
		require.Len(t, b.Nights, 7)
		assert.Equal(t, "2025-07-05", stay.FormatDate(b.Nights[4].Date))
		assert.Equal(t, int64(30000), b.Nights[4].Amount.Cents())
		assert.Equal(t, 1, b.Rooms)
	})
}
