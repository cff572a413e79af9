//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"hotel-booking-core/internal/domain/hotel"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/pricing"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/domain/user"
	"hotel-booking-core/internal/infra/memstore"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/pkg/refcode"
	"hotel-booking-core/internal/usecase/commands"
	"hotel-booking-core/internal/usecase/queries"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	hotelID         = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	inactiveHotelID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	baseTime        = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
)

type fixture struct {
	store     *memstore.Store
	clock     *clock.MockClock
	bookings  commands.BookingCommands
	inventory commands.InventoryCommands
	refunds   commands.RefundCommands
	groups    commands.GroupCommands
	calendar  queries.InventoryQueries
	guest     shared.Actor
	staff     shared.Actor
	admin     shared.Actor
}

func newFixture(t *testing.T, cfg commands.BookingConfig) *fixture {
	t.Helper()

	store := memstore.New()
	store.AddHotel(hotel.Reconstruct(hotelID, "Harbour View", money.FromCents(10000), true))
	store.AddHotel(hotel.Reconstruct(inactiveHotelID, "Closed Inn", money.FromCents(8000), false))

	clk := clock.NewMockClock(baseTime)
	calc, err := pricing.NewCalculator(pricing.ModeDynamic)
	require.NoError(t, err)
	refs := refcode.NewGenerator()

	return &fixture{
		store:     store,
		clock:     clk,
		bookings:  commands.NewBookingCommands(store, memstore.NewBookingReadStore(store), calc, refs, clk, cfg),
		inventory: commands.NewInventoryCommands(store),
		refunds:   commands.NewRefundCommands(store, refs, clk),
		groups:    commands.NewGroupCommands(store, clk),
		calendar:  queries.NewInventoryQueries(memstore.NewHotelReadStore(store), memstore.NewInventoryReadStore(store), calc),
		guest:     shared.Actor{UserID: uuid.New(), Role: user.RoleGuest},
		staff:     shared.Actor{UserID: uuid.New(), Role: user.RoleStaff},
		admin:     shared.Actor{UserID: uuid.New(), Role: user.RoleAdmin},
	}
}

func defaultConfig() commands.BookingConfig {
	return commands.BookingConfig{RepriceOnModify: true, IdempotencyTTL: 24 * time.Hour}
}

func createInput(checkIn, checkOut string, rooms int) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		HotelID:    hotelID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     2,
		Rooms:      rooms,
		GuestName:  "Ada Lovelace",
		GuestEmail: "ada@example.com",
	}
}

func (f *fixture) setCapacity(t *testing.T, from, to string, maxRooms int) {
	t.Helper()
	r, err := stay.ParseRange(from, to)
	require.NoError(t, err)
	for _, d := range r.Dates() {
		f.store.PutDay(inventory.ReconstructDay(hotelID, d, maxRooms, maxRooms, nil, inventory.DefaultSurge))
	}
}

// availability returns available rooms per night of [from, to).
func (f *fixture) availability(t *testing.T, from, to string) []int {
	t.Helper()
	start, err := stay.ParseDate(from)
	require.NoError(t, err)
	end, err := stay.ParseDate(to)
	require.NoError(t, err)

	days, err := f.calendar.Calendar(context.Background(), hotelID, start, end.AddDate(0, 0, -1))
	require.NoError(t, err)
	out := make([]int, 0, len(days))
	for _, d := range days {
		out = append(out, d.AvailableRooms)
	}
	return out
}

func (f *fixture) jobKinds() []string {
	var kinds []string
	for _, j := range f.store.Jobs() {
		kinds = append(kinds, j.Kind)
	}
	return kinds
}

func (f *fixture) lastJobPayload(t *testing.T) map[string]any {
	t.Helper()
	jobs := f.store.Jobs()
	require.NotEmpty(t, jobs)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(jobs[len(jobs)-1].Payload, &payload))
	return payload
}

func (f *fixture) mustCreate(t *testing.T, actor shared.Actor, in commands.CreateBookingInput) *queries.BookingView {
	t.Helper()
	res, err := f.bookings.Create(context.Background(), actor, in, uuid.NewString())
	require.NoError(t, err)
	return res.Booking
}

func (f *fixture) mustPay(t *testing.T, bookingID uuid.UUID) *queries.BookingView {
	t.Helper()
	view, err := f.bookings.ApplyPaymentOutcome(context.Background(), f.staff, bookingID, "paid")
	require.NoError(t, err)
	return view
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := stay.ParseDate(s)
	require.NoError(t, err)
	return d
}
