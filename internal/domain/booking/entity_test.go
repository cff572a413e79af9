//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, change, err := b.BuildDomainWithHistory()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "BK-250601-TESTREF0", actual.Reference())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, booking.PaymentPending, actual.PaymentStatus())
		assert.Equal(t, 3, actual.Stay().Nights())
		assert.Equal(t, int64(45000), actual.Total().Cents())
		assert.True(t, actual.HoldsInventory())
		assert.True(t, actual.IsOwnedBy(b.UserID))
		assert.Equal(t, builder.BaseTime, actual.CreatedAt())

		assert.Equal(t, actual.ID(), change.BookingID)
		assert.Empty(t, change.From)
		assert.Equal(t, booking.StatusPending, change.To)
		assert.Equal(t, b.UserID, change.ActorID)
	})

	t.Run("input validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "zero guests", mutate: func(b *builder.BookingBuilder) { b.WithGuests(0) }, errIs: booking.ErrInvalidGuests},
			{name: "zero rooms", mutate: func(b *builder.BookingBuilder) { b.WithRooms(0) }, errIs: booking.ErrInvalidRooms},
			{name: "negative total", mutate: func(b *builder.BookingBuilder) { b.WithTotalCents(-1) }, errIs: booking.ErrNegativeTotal},
			{name: "zero total is allowed", mutate: func(b *builder.BookingBuilder) { b.WithTotalCents(0) }},
			{name: "same-day stay", mutate: func(b *builder.BookingBuilder) { b.WithStay("2025-07-01", "2025-07-01") }, errIs: stay.ErrInvalidDateRange},
			{name: "blank guest name", mutate: func(b *builder.BookingBuilder) { b.WithGuestName("  ") }, errIs: booking.ErrInvalidGuestName},
			{name: "bad email", mutate: func(b *builder.BookingBuilder) { b.WithGuestEmail("not-an-email") }, errIs: booking.ErrInvalidGuestEmail},
			{
				name: "special requests at limit",
				mutate: func(b *builder.BookingBuilder) {
					b.WithSpecialRequests(strings.Repeat("a", booking.MaxSpecialRequestsLength))
				},
			},
			{
				name: "special requests too long",
				mutate: func(b *builder.BookingBuilder) {
					b.WithSpecialRequests(strings.Repeat("a", booking.MaxSpecialRequestsLength+1))
				},
				errIs: booking.ErrSpecialRequestsTooLong,
			},
		})
	})

	t.Run("guest name is trimmed", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithGuestName("  Grace Hopper ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Grace Hopper", actual.Guest().Name())
	})
}

func TestStateMachine(t *testing.T) {
	clk := clock.NewMockClock(builder.BaseTime)
	services := builder.BookingServices(clk)
	actor := uuid.New()

	t.Run("allowed and forbidden transitions", func(t *testing.T) {
		cases := []struct {
			from booking.Status
			to   booking.Status
			ok   bool
		}{
			{booking.StatusPending, booking.StatusConfirmed, true},
			{booking.StatusPending, booking.StatusCancelled, true},
			{booking.StatusPending, booking.StatusCompleted, false},
			{booking.StatusConfirmed, booking.StatusCompleted, true},
			{booking.StatusConfirmed, booking.StatusCancelled, true},
			{booking.StatusConfirmed, booking.StatusPending, false},
			{booking.StatusCancelled, booking.StatusPending, false},
			{booking.StatusCancelled, booking.StatusConfirmed, false},
			{booking.StatusCompleted, booking.StatusCancelled, false},
		}
		for _, c := range cases {
			t.Run(string(c.from)+"->"+string(c.to), func(t *testing.T) {
				assert.Equal(t, c.ok, c.from.CanTransitionTo(c.to))
			})
		}
	})

	t.Run("cancel from pending records history", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(booking.StatusPending, booking.PaymentPending)
		clk.Add(time.Hour)

		change, err := b.Cancel(services, actor, "change of plans")
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.False(t, b.HoldsInventory())
		assert.Equal(t, booking.StatusPending, change.From)
		assert.Equal(t, booking.StatusCancelled, change.To)
		assert.Equal(t, "change of plans", change.Reason)
		assert.Equal(t, clk.Now(), b.UpdatedAt())
	})

	t.Run("terminal states cannot be cancelled", func(t *testing.T) {
		for _, s := range []booking.Status{booking.StatusCancelled, booking.StatusCompleted} {
			b := builder.NewBookingBuilder().BuildStored(s, booking.PaymentPaid)
			_, err := b.Cancel(services, actor, "")
			require.ErrorIs(t, err, booking.ErrInvalidTransition)
			assert.Equal(t, s, b.Status())
		}
	})

	t.Run("complete requires confirmed", func(t *testing.T) {
		pending := builder.NewBookingBuilder().BuildStored(booking.StatusPending, booking.PaymentPending)
		_, err := pending.Complete(services, actor)
		require.ErrorIs(t, err, booking.ErrInvalidTransition)

		confirmed := builder.NewBookingBuilder().BuildStored(booking.StatusConfirmed, booking.PaymentPaid)
		change, err := confirmed.Complete(services, actor)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCompleted, change.To)
	})
}

func TestApplyPaymentOutcome(t *testing.T) {
	services := builder.BookingServices(clock.NewMockClock(builder.BaseTime))
	actor := uuid.New()

	t.Run("paid confirms a pending booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(booking.StatusPending, booking.PaymentPending)
		res, err := b.ApplyPaymentOutcome(services, booking.OutcomePaid, actor)
		require.NoError(t, err)
		assert.True(t, res.Changed)
		require.NotNil(t, res.StatusChange)
		assert.Equal(t, booking.StatusConfirmed, res.StatusChange.To)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())
	})

	t.Run("failed leaves the status alone", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(booking.StatusPending, booking.PaymentPending)
		res, err := b.ApplyPaymentOutcome(services, booking.OutcomeFailed, actor)
		require.NoError(t, err)
		assert.True(t, res.Changed)
		assert.Nil(t, res.StatusChange)
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, booking.PaymentFailed, b.PaymentStatus())
	})

	t.Run("retry after failure", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(booking.StatusPending, booking.PaymentFailed)
		res, err := b.ApplyPaymentOutcome(services, booking.OutcomePaid, actor)
		require.NoError(t, err)
		assert.True(t, res.Changed)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("redelivery is a no-op", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(booking.StatusConfirmed, booking.PaymentPaid)
		updated := b.UpdatedAt()
		res, err := b.ApplyPaymentOutcome(services, booking.OutcomePaid, actor)
		require.NoError(t, err)
		assert.False(t, res.Changed)
		assert.Equal(t, updated, b.UpdatedAt())
	})

	t.Run("paid booking cannot fail afterwards", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(booking.StatusConfirmed, booking.PaymentPaid)
		_, err := b.ApplyPaymentOutcome(services, booking.OutcomeFailed, actor)
		require.ErrorIs(t, err, booking.ErrInvalidPaymentTransition)
	})

	t.Run("paid on a cancelled booking keeps it cancelled", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(booking.StatusCancelled, booking.PaymentPending)
		res, err := b.ApplyPaymentOutcome(services, booking.OutcomePaid, actor)
		require.NoError(t, err)
		assert.Nil(t, res.StatusChange)
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("unknown outcome", func(t *testing.T) {
		_, err := booking.NewPaymentOutcome("maybe")
		require.ErrorIs(t, err, booking.ErrInvalidPaymentOutcome)
	})

	t.Run("mark refunded requires paid", func(t *testing.T) {
		unpaid := builder.NewBookingBuilder().BuildStored(booking.StatusConfirmed, booking.PaymentPending)
		require.ErrorIs(t, unpaid.MarkRefunded(services), booking.ErrInvalidPaymentTransition)

		paid := builder.NewBookingBuilder().BuildStored(booking.StatusConfirmed, booking.PaymentPaid)
		require.NoError(t, paid.MarkRefunded(services))
		assert.Equal(t, booking.PaymentRefunded, paid.PaymentStatus())
	})
}

func TestModification(t *testing.T) {
	services := builder.BookingServices(clock.NewMockClock(builder.BaseTime))
	actor := uuid.New()
	intPtr := func(v int) *int { return &v }

	t.Run("plan validation", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(booking.StatusConfirmed, booking.PaymentPaid)
		same := b.Stay()
		later, _ := stay.ParseRange("2025-08-01", "2025-08-03")

		cases := []struct {
			name   string
			change booking.Change
			errIs  error
		}{
			{name: "date change", change: booking.Change{Type: booking.ModificationDateChange, Stay: &later}},
			{name: "date change without dates", change: booking.Change{Type: booking.ModificationDateChange}, errIs: booking.ErrInvalidModification},
			{name: "date change to same dates", change: booking.Change{Type: booking.ModificationDateChange, Stay: &same}, errIs: booking.ErrNoChange},
			{name: "guest count", change: booking.Change{Type: booking.ModificationGuestCount, Guests: intPtr(4)}},
			{name: "guest count zero", change: booking.Change{Type: booking.ModificationGuestCount, Guests: intPtr(0)}, errIs: booking.ErrInvalidGuests},
			{name: "guest count unchanged", change: booking.Change{Type: booking.ModificationGuestCount, Guests: intPtr(2)}, errIs: booking.ErrNoChange},
			{name: "room count", change: booking.Change{Type: booking.ModificationRoomCount, Rooms: intPtr(3)}},
			{name: "room count zero", change: booking.Change{Type: booking.ModificationRoomCount, Rooms: intPtr(0)}, errIs: booking.ErrInvalidRooms},
			{name: "room count missing", change: booking.Change{Type: booking.ModificationRoomCount, Guests: intPtr(3)}, errIs: booking.ErrInvalidModification},
			{name: "unknown type", change: booking.Change{Type: "upgrade"}, errIs: booking.ErrInvalidModification},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := b.PlanModification(c.change)
				if c.errIs == nil {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("terminal bookings cannot be modified", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(booking.StatusCancelled, booking.PaymentPending)
		_, err := b.PlanModification(booking.Change{Type: booking.ModificationGuestCount, Guests: intPtr(3)})
		require.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("date change snapshots dates and totals", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(booking.StatusPending, booking.PaymentPending)
		later, _ := stay.ParseRange("2025-08-01", "2025-08-03")
		target, err := b.PlanModification(booking.Change{Type: booking.ModificationDateChange, Stay: &later})
		require.NoError(t, err)

		m, err := b.Modify(services, target, money.FromCents(30000), "flight moved", actor)
		require.NoError(t, err)

		assert.True(t, b.Stay().Equal(later))
		assert.Equal(t, int64(30000), b.Total().Cents())
		assert.Equal(t, booking.ModificationStatusApproved, m.Status)
		assert.Equal(t, booking.Snapshot{CheckIn: "2025-07-01", CheckOut: "2025-07-04", TotalCents: 45000}, m.Old)
		assert.Equal(t, booking.Snapshot{CheckIn: "2025-08-01", CheckOut: "2025-08-03", TotalCents: 30000}, m.New)
		require.NotNil(t, m.Reason)
		assert.Equal(t, "flight moved", *m.Reason)
	})

	t.Run("guest count keeps stay and rooms", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(booking.StatusConfirmed, booking.PaymentPaid)
		target, err := b.PlanModification(booking.Change{Type: booking.ModificationGuestCount, Guests: intPtr(3)})
		require.NoError(t, err)

		m, err := b.Modify(services, target, b.Total(), "", actor)
		require.NoError(t, err)
		assert.Equal(t, 3, b.Guests())
		assert.Equal(t, 1, b.Rooms())
		assert.Nil(t, m.Reason)
		assert.Equal(t, 2, m.Old.Guests)
		assert.Equal(t, 3, m.New.Guests)
		assert.False(t, booking.ModificationGuestCount.MovesInventory())
		assert.True(t, booking.ModificationRoomCount.MovesInventory())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
