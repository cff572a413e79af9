//go:build unit

package inventory_test

import (
	"testing"

	"hotel-booking-core/internal/domain/hotel"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/stay"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, in, out string) stay.Range {
	t.Helper()
	r, err := stay.ParseRange(in, out)
	require.NoError(t, err)
	return r
}

func night(t *testing.T, s string) stay.Range {
	t.Helper()
	d, err := stay.ParseDate(s)
	require.NoError(t, err)
	r, err := stay.NewRange(d, d.AddDate(0, 0, 1))
	require.NoError(t, err)
	return r
}

func snapshot(w *inventory.Window) map[string][2]int {
	out := map[string][2]int{}
	for _, d := range w.Days() {
		out[stay.FormatDate(d.Date())] = [2]int{d.MaxRooms(), d.AvailableRooms()}
	}
	return out
}

func assertLedgerInvariant(t *testing.T, w *inventory.Window) {
	t.Helper()
	for _, d := range w.Days() {
		assert.GreaterOrEqual(t, d.AvailableRooms(), 0, stay.FormatDate(d.Date()))
		assert.LessOrEqual(t, d.AvailableRooms(), d.MaxRooms(), stay.FormatDate(d.Date()))
	}
}

func TestDefaultDay(t *testing.T) {
	hotelID := uuid.New()
	d := inventory.DefaultDay(hotelID, night(t, "2025-07-01").CheckIn())

	assert.Equal(t, inventory.DefaultMaxRooms, d.MaxRooms())
	assert.Equal(t, inventory.DefaultMaxRooms, d.AvailableRooms())
	assert.Equal(t, inventory.DefaultSurge, d.Surge())
	assert.Nil(t, d.BasePrice())
	assert.False(t, d.IsStored())
	assert.False(t, d.IsDirty())
}

func TestWindow(t *testing.T) {
	hotelID := uuid.New()
	span := mustRange(t, "2025-07-01", "2025-07-06")

	newWindow := func(t *testing.T) *inventory.Window {
		t.Helper()
		tight := inventory.ReconstructDay(hotelID, night(t, "2025-07-03").CheckIn(), 5, 2, nil, inventory.DefaultSurge)
		return inventory.NewWindow(hotelID, span, []*inventory.Day{tight})
	}

	t.Run("fills missing dates with defaults", func(t *testing.T) {
		w := newWindow(t)
		days := w.Days()
		require.Len(t, days, 5)
		assert.Equal(t, inventory.DefaultMaxRooms, days[0].AvailableRooms())
		assert.Equal(t, 2, days[2].AvailableRooms())
		assert.True(t, days[2].IsStored())
		assert.Empty(t, w.Changed())
	})

	t.Run("reserve decrements every night and marks them changed", func(t *testing.T) {
		w := newWindow(t)
		r := mustRange(t, "2025-07-02", "2025-07-05")
		require.NoError(t, w.Reserve(r, 2))

		assert.Equal(t, 0, w.Day(night(t, "2025-07-03").CheckIn()).AvailableRooms())
		assert.Equal(t, 98, w.Day(night(t, "2025-07-02").CheckIn()).AvailableRooms())
		assert.Len(t, w.Changed(), 3)
		assertLedgerInvariant(t, w)
	})

	t.Run("reserve is all or nothing", func(t *testing.T) {
		w := newWindow(t)
		before := snapshot(w)

		err := w.Reserve(mustRange(t, "2025-07-01", "2025-07-05"), 3)
		require.ErrorIs(t, err, inventory.ErrInsufficientInventory)
		assert.Equal(t, before, snapshot(w))
		assert.Empty(t, w.Changed())
	})

	t.Run("checkout night is not consumed", func(t *testing.T) {
		w := newWindow(t)
		require.NoError(t, w.Reserve(mustRange(t, "2025-07-01", "2025-07-03"), 10))
		assert.Equal(t, 2, w.Day(night(t, "2025-07-03").CheckIn()).AvailableRooms())
	})

	t.Run("release after reserve restores the ledger", func(t *testing.T) {
		w := newWindow(t)
		before := snapshot(w)
		r := mustRange(t, "2025-07-01", "2025-07-04")

		require.NoError(t, w.Reserve(r, 2))
		require.NoError(t, w.Release(r, 2))
		assert.Equal(t, before, snapshot(w))
	})

	t.Run("release is capped at capacity", func(t *testing.T) {
		w := newWindow(t)
		require.NoError(t, w.Release(mustRange(t, "2025-07-03", "2025-07-04"), 10))
		d := w.Day(night(t, "2025-07-03").CheckIn())
		assert.Equal(t, 5, d.AvailableRooms())
		assertLedgerInvariant(t, w)
	})

	t.Run("rejects ranges outside the window", func(t *testing.T) {
		w := newWindow(t)
		outside := mustRange(t, "2025-07-05", "2025-07-08")
		require.ErrorIs(t, w.Available(outside, 1), inventory.ErrOutsideWindow)
		require.ErrorIs(t, w.Reserve(outside, 1), inventory.ErrOutsideWindow)
		require.ErrorIs(t, w.Release(outside, 1), inventory.ErrOutsideWindow)
	})

	t.Run("rejects non positive room counts", func(t *testing.T) {
		w := newWindow(t)
		r := mustRange(t, "2025-07-01", "2025-07-02")
		require.ErrorIs(t, w.Available(r, 0), inventory.ErrInvalidRoomCount)
		require.ErrorIs(t, w.Release(r, -1), inventory.ErrInvalidRoomCount)
	})

	t.Run("move shifts a reservation", func(t *testing.T) {
		w := newWindow(t)
		from := mustRange(t, "2025-07-01", "2025-07-03")
		to := mustRange(t, "2025-07-04", "2025-07-06")
		require.NoError(t, w.Reserve(from, 4))

		require.NoError(t, w.Move(from, 4, to, 4))
		assert.Equal(t, 100, w.Day(from.CheckIn()).AvailableRooms())
		assert.Equal(t, 96, w.Day(to.CheckIn()).AvailableRooms())
		assertLedgerInvariant(t, w)
	})

	t.Run("failed move leaves the window untouched", func(t *testing.T) {
		w := newWindow(t)
		from := mustRange(t, "2025-07-01", "2025-07-02")
		require.NoError(t, w.Reserve(from, 1))
		before := snapshot(w)

		err := w.Move(from, 1, mustRange(t, "2025-07-02", "2025-07-05"), 3)
		require.ErrorIs(t, err, inventory.ErrInsufficientInventory)
		assert.Equal(t, before, snapshot(w))
	})

	t.Run("move over overlapping ranges reuses released rooms", func(t *testing.T) {
		w := newWindow(t)
		from := mustRange(t, "2025-07-03", "2025-07-04")
		require.NoError(t, w.Reserve(from, 2))

		require.NoError(t, w.Move(from, 2, mustRange(t, "2025-07-02", "2025-07-04"), 2))
		assert.Equal(t, 0, w.Day(from.CheckIn()).AvailableRooms())
	})
}

func TestDayMutations(t *testing.T) {
	hotelID := uuid.New()
	date := night(t, "2025-07-01").CheckIn()

	t.Run("capacity keeps committed rooms", func(t *testing.T) {
		d := inventory.ReconstructDay(hotelID, date, 10, 4, nil, inventory.DefaultSurge)
		require.NoError(t, d.SetCapacity(20))
		assert.Equal(t, 20, d.MaxRooms())
		assert.Equal(t, 14, d.AvailableRooms())
		assert.True(t, d.IsDirty())

		require.NoError(t, d.SetCapacity(6))
		assert.Equal(t, 0, d.AvailableRooms())
	})

	t.Run("capacity below committed is rejected", func(t *testing.T) {
		d := inventory.ReconstructDay(hotelID, date, 10, 4, nil, inventory.DefaultSurge)
		require.ErrorIs(t, d.SetCapacity(5), inventory.ErrCapacityBelowCommitted)
		require.ErrorIs(t, d.SetCapacity(-1), inventory.ErrInvalidCapacity)
		assert.Equal(t, 10, d.MaxRooms())
		assert.False(t, d.IsDirty())
	})

	t.Run("surge bounds", func(t *testing.T) {
		d := inventory.DefaultDay(hotelID, date)
		s, err := inventory.SurgeFromFloat(1.25)
		require.NoError(t, err)
		require.NoError(t, d.SetSurge(s))
		assert.Equal(t, int64(12500), d.Surge().BasisPoints())
		assert.InDelta(t, 1.25, d.Surge().Float64(), 1e-9)

		_, err = inventory.SurgeFromFloat(-0.1)
		require.ErrorIs(t, err, inventory.ErrInvalidSurge)
		_, err = inventory.NewSurge(int64(inventory.MaxSurge) + 1)
		require.ErrorIs(t, err, inventory.ErrInvalidSurge)
	})

	t.Run("base price override and clear", func(t *testing.T) {
		d := inventory.DefaultDay(hotelID, date)
		price := money.FromMajor(200)
		require.NoError(t, d.SetBasePrice(&price))
		require.NotNil(t, d.BasePrice())
		assert.Equal(t, int64(20000), d.BasePrice().Cents())

		require.NoError(t, d.SetBasePrice(nil))
		assert.Nil(t, d.BasePrice())

		negative := money.FromCents(-1)
		require.ErrorIs(t, d.SetBasePrice(&negative), money.ErrNegativeAmount)

		ceiling := money.FromCents(inventory.MaxBasePriceCents)
		require.NoError(t, d.SetBasePrice(&ceiling))
		huge := money.FromCents(10_000_000_000_000)
		require.ErrorIs(t, d.SetBasePrice(&huge), inventory.ErrBasePriceTooHigh)
		assert.Equal(t, inventory.MaxBasePriceCents, d.BasePrice().Cents())
	})

	t.Run("zero surge is allowed", func(t *testing.T) {
		d := inventory.DefaultDay(hotelID, date)
		s, err := inventory.SurgeFromFloat(0)
		require.NoError(t, err)
		require.NoError(t, d.SetSurge(s))
		assert.Equal(t, int64(0), d.Surge().BasisPoints())
	})
}

func TestCheckAvailability(t *testing.T) {
	hotelID := uuid.New()
	r := mustRange(t, "2025-07-01", "2025-07-03")
	w := inventory.NewWindow(hotelID, r, nil)

	active := hotel.Reconstruct(hotelID, "Seaside", money.FromMajor(150), true)
	inactive := hotel.Reconstruct(hotelID, "Closed", money.FromMajor(150), false)

	require.NoError(t, inventory.CheckAvailability(active, w, r, 100))
	require.ErrorIs(t, inventory.CheckAvailability(active, w, r, 101), inventory.ErrInsufficientInventory)
	require.ErrorIs(t, inventory.CheckAvailability(inactive, w, r, 1), hotel.ErrHotelInactive)
}
