//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCapacity(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps committed rooms committed", func(t *testing.T) {
		f := newFixture(t, defaultConfig())
		f.mustCreate(t, f.guest, createInput("2025-07-01", "2025-07-02", 3))

		view, err := f.inventory.SetCapacity(ctx, f.staff, hotelID, mustDate(t, "2025-07-01"), 10)
		require.NoError(t, err)
		assert.Equal(t, 10, view.MaxRooms)
		assert.Equal(t, 7, view.AvailableRooms)
		assert.True(t, view.IsAvailable)
	})

	t.Run("rejects a ceiling below committed rooms", func(t *testing.T) {
		f := newFixture(t, defaultConfig())
		f.mustCreate(t, f.guest, createInput("2025-07-01", "2025-07-02", 3))

		_, err := f.inventory.SetCapacity(ctx, f.staff, hotelID, mustDate(t, "2025-07-01"), 2)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Equal(t, []int{97}, f.availability(t, "2025-07-01", "2025-07-02"))
	})

	t.Run("zero capacity closes the date", func(t *testing.T) {
		f := newFixture(t, defaultConfig())

		view, err := f.inventory.SetCapacity(ctx, f.staff, hotelID, mustDate(t, "2025-07-01"), 0)
		require.NoError(t, err)
		assert.False(t, view.IsAvailable)

		_, err = f.bookings.Create(ctx, f.guest, createInput("2025-07-01", "2025-07-02", 1), "k")
		assert.True(t, errs.Is(err, errs.ErrNotAvailable))
	})

	t.Run("guests are forbidden", func(t *testing.T) {
		f := newFixture(t, defaultConfig())
		_, err := f.inventory.SetCapacity(ctx, f.guest, hotelID, mustDate(t, "2025-07-01"), 10)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("unknown hotel", func(t *testing.T) {
		f := newFixture(t, defaultConfig())
		_, err := f.inventory.SetCapacity(ctx, f.staff, uuid.New(), mustDate(t, "2025-07-01"), 10)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestSetSurge(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, defaultConfig())

	view, err := f.inventory.SetSurge(ctx, f.staff, hotelID, mustDate(t, "2025-07-01"), 1.25)
	require.NoError(t, err)
	assert.InDelta(t, 1.25, view.SurgeMultiplier, 1e-9)
	assert.Equal(t, int64(12500), view.NightlyPriceCents)

	_, err = f.inventory.SetSurge(ctx, f.staff, hotelID, mustDate(t, "2025-07-01"), -1)
	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestSetBasePrice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, defaultConfig())
	price := int64(15000)

	view, err := f.inventory.SetBasePrice(ctx, f.staff, hotelID, mustDate(t, "2025-07-01"), &price)
	require.NoError(t, err)
	require.NotNil(t, view.BasePriceCents)
	assert.Equal(t, int64(15000), view.NightlyPriceCents)

	view, err = f.inventory.SetBasePrice(ctx, f.staff, hotelID, mustDate(t, "2025-07-01"), nil)
	require.NoError(t, err)
	assert.Nil(t, view.BasePriceCents)
	assert.Equal(t, int64(10000), view.NightlyPriceCents)

	negative := int64(-1)
	_, err = f.inventory.SetBasePrice(ctx, f.staff, hotelID, mustDate(t, "2025-07-01"), &negative)
	assert.True(t, errs.Is(err, errs.ErrValidation))

	huge := int64(10_000_000_000_000)
	_, err = f.inventory.SetBasePrice(ctx, f.staff, hotelID, mustDate(t, "2025-07-01"), &huge)
	assert.True(t, errs.Is(err, errs.ErrValidation), "got %v", err)

	t.Run("ceiling price at maximum surge stays positive", func(t *testing.T) {
		ceiling := inventory.MaxBasePriceCents
		_, err := f.inventory.SetBasePrice(ctx, f.staff, hotelID, mustDate(t, "2025-07-02"), &ceiling)
		require.NoError(t, err)
		view, err := f.inventory.SetSurge(ctx, f.staff, hotelID, mustDate(t, "2025-07-02"), inventory.MaxSurge.Float64())
		require.NoError(t, err)
		assert.Equal(t, int64(99_999_900_000), view.NightlyPriceCents)
	})
}
