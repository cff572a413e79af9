//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/memstore"
	"hotel-booking-core/internal/usecase/shared"
	"hotel-booking-core/internal/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	hotelID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	now     = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
)

const seedJSON = `{
  "hotels": [
    {"id": "11111111-1111-1111-1111-111111111111", "name": "Harbour View", "price_per_night_cents": 10000, "is_active": true}
  ],
  "availability": [
    {"hotel_id": "11111111-1111-1111-1111-111111111111", "date": "2025-07-01", "max_rooms": 5, "available_rooms": 3},
    {"hotel_id": "11111111-1111-1111-1111-111111111111", "date": "2025-07-02", "max_rooms": 4, "surge_multiplier": 1.5, "base_price_cents": 12000}
  ]
}`

func seeded(t *testing.T) *memstore.Store {
	t.Helper()
	s := memstore.New()
	require.NoError(t, memstore.LoadSeed(s, strings.NewReader(seedJSON)))
	return s
}

func TestLoadSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("success: hotels and availability", func(t *testing.T) {
		s := seeded(t)

		h, err := memstore.NewHotelReadStore(s).FindByID(ctx, hotelID)
		require.NoError(t, err)
		assert.Equal(t, "Harbour View", h.Name())
		assert.Equal(t, int64(10000), h.PricePerNight().Cents())

		from, _ := stay.ParseDate("2025-07-01")
		to, _ := stay.ParseDate("2025-07-03")
		days, err := memstore.NewInventoryReadStore(s).FindDays(ctx, hotelID, from, to)
		require.NoError(t, err)
		require.Len(t, days, 2)
		assert.Equal(t, 3, days[0].AvailableRooms())
		assert.Equal(t, 4, days[1].AvailableRooms())
		assert.Equal(t, int64(15000), days[1].Surge().BasisPoints())
		require.NotNil(t, days[1].BasePrice())
		assert.Equal(t, int64(12000), days[1].BasePrice().Cents())
	})

	t.Run("error: available above max", func(t *testing.T) {
		doc := `{"availability":[{"hotel_id":"11111111-1111-1111-1111-111111111111","date":"2025-07-01","max_rooms":2,"available_rooms":3}]}`
		err := memstore.LoadSeed(memstore.New(), strings.NewReader(doc))
		assert.Error(t, err)
	})

	t.Run("error: malformed date", func(t *testing.T) {
		doc := `{"availability":[{"hotel_id":"11111111-1111-1111-1111-111111111111","date":"07/01/2025","max_rooms":2}]}`
		err := memstore.LoadSeed(memstore.New(), strings.NewReader(doc))
		assert.Error(t, err)
	})

	t.Run("error: not json", func(t *testing.T) {
		assert.Error(t, memstore.LoadSeed(memstore.New(), strings.NewReader("hotels:")))
	})
}

func TestWithin(t *testing.T) {
	ctx := context.Background()
	span, err := stay.ParseRange("2025-07-01", "2025-07-03")
	require.NoError(t, err)

	t.Run("commit applies buffered writes", func(t *testing.T) {
		s := seeded(t)

		err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			w, err := tx.Inventory().LockWindow(ctx, hotelID, span)
			if err != nil {
				return err
			}
			if err := w.Reserve(span, 2); err != nil {
				return err
			}
			return tx.Inventory().SaveDays(ctx, w.Changed())
		})
		require.NoError(t, err)

		w, err := s.CommandReads().InventoryWindow(ctx, hotelID, span)
		require.NoError(t, err)
		assert.NoError(t, w.Available(span, 1))
		assert.Error(t, w.Available(span, 2))
	})

	t.Run("error discards buffered writes", func(t *testing.T) {
		s := seeded(t)
		boom := errors.New("boom")

		err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			w, err := tx.Inventory().LockWindow(ctx, hotelID, span)
			if err != nil {
				return err
			}
			if err := w.Reserve(span, 3); err != nil {
				return err
			}
			if err := tx.Inventory().SaveDays(ctx, w.Changed()); err != nil {
				return err
			}
			return tx.Notifications().CreateJob(ctx, "booking.created", "bookings", []byte(`{}`), now)
		})
		require.NoError(t, err)

		err = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			w, _ := tx.Inventory().LockWindow(ctx, hotelID, span)
			if err := w.Release(span, 3); err != nil {
				return err
			}
			_ = tx.Inventory().SaveDays(ctx, w.Changed())
			_ = tx.Notifications().CreateJob(ctx, "booking.cancelled", "bookings", []byte(`{}`), now)
			return boom
		})
		assert.ErrorIs(t, err, boom)

		w, err := s.CommandReads().InventoryWindow(ctx, hotelID, span)
		require.NoError(t, err)
		assert.Error(t, w.Available(span, 1))
		assert.Len(t, s.Jobs(), 1)
	})

	t.Run("cancelled context does not commit", func(t *testing.T) {
		s := seeded(t)
		cctx, cancel := context.WithCancel(ctx)

		err := s.Within(cctx, func(ctx context.Context, tx shared.Tx) error {
			cancel()
			return tx.Notifications().CreateJob(ctx, "booking.created", "bookings", nil, now)
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, s.Jobs())
	})

	t.Run("unknown hotel is a foreign key violation", func(t *testing.T) {
		s := memstore.New()
		err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			w, _ := tx.Inventory().LockWindow(ctx, uuid.New(), span)
			for _, d := range w.Days() {
				if err := d.SetCapacity(3); err != nil {
					return err
				}
			}
			return tx.Inventory().SaveDays(ctx, w.Changed())
		})
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestIdempotencyKeys(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	userID := uuid.New()
	bookingID := uuid.New()

	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Idempotency().TryInsert(ctx, "k1", userID, "POST /bookings", "h1", now.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = tx.Idempotency().TryInsert(ctx, "k1", userID, "POST /bookings", "h1", now.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, ok, "second insert in the same transaction sees the first")

		return tx.Idempotency().MarkCompleted(ctx, "k1", userID, "resp", bookingID)
	}))

	rec, err := s.CommandReads().IdempotencyByKey(ctx, "k1", userID)
	require.NoError(t, err)
	assert.True(t, rec.IsCompleted())
	assert.Equal(t, bookingID, *rec.ResultBookingID)

	_, err = s.CommandReads().IdempotencyByKey(ctx, "k1", uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Idempotency().ClaimExpired(ctx, "k1", userID, "POST /bookings", "h2", now.Add(3*time.Hour), now)
		require.NoError(t, err)
		assert.False(t, ok, "live key is not claimable")

		ok, err = tx.Idempotency().ClaimExpired(ctx, "k1", userID, "POST /bookings", "h2", now.Add(3*time.Hour), now.Add(2*time.Hour))
		require.NoError(t, err)
		assert.True(t, ok)
		return nil
	}))

	n, err := s.DeleteExpired(ctx, now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = s.DeleteExpired(ctx, now.Add(4*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestProcessDue(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()

	require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_ = tx.Notifications().CreateJob(ctx, "booking.created", "bookings", []byte(`{"n":1}`), now.Add(-time.Minute))
		_ = tx.Notifications().CreateJob(ctx, "booking.cancelled", "bookings", []byte(`{"n":2}`), now.Add(-2*time.Minute))
		_ = tx.Notifications().CreateJob(ctx, "refund.requested", "refunds", []byte(`{"n":3}`), now)
		return tx.Notifications().CreateJob(ctx, "group.submitted", "groups", []byte(`{"n":4}`), now.Add(time.Hour))
	}))

	var seen []string
	outcomes := map[string]worker.Result{
		"booking.cancelled": {Outcome: worker.OutcomeDelivered},
		"booking.created":   {Outcome: worker.OutcomeRetry, RetryAt: now.Add(2 * time.Second), Error: "timeout"},
		"refund.requested":  {Outcome: worker.OutcomeDead, Error: "rejected"},
	}
	n, err := s.ProcessDue(ctx, now, 10, func(_ context.Context, job worker.Job) worker.Result {
		seen = append(seen, job.Kind)
		return outcomes[job.Kind]
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"booking.cancelled", "booking.created", "refund.requested"}, seen, "oldest run_at first")

	byKind := map[string]memstore.NotificationJob{}
	for _, j := range s.Jobs() {
		byKind[j.Kind] = j
	}
	assert.Equal(t, memstore.JobStatusSent, byKind["booking.cancelled"].Status)
	assert.Equal(t, memstore.JobStatusQueued, byKind["booking.created"].Status)
	assert.Equal(t, now.Add(2*time.Second), byKind["booking.created"].RunAt)
	assert.Equal(t, "timeout", byKind["booking.created"].LastError)
	assert.Equal(t, 1, byKind["booking.created"].Attempts)
	assert.Equal(t, memstore.JobStatusFailed, byKind["refund.requested"].Status)
	assert.Equal(t, memstore.JobStatusQueued, byKind["group.submitted"].Status)

	n, err = s.ProcessDue(ctx, now.Add(time.Second), 10, func(context.Context, worker.Job) worker.Result {
		t.Fatal("nothing is due yet")
		return worker.Result{}
	})
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = s.ProcessDue(ctx, now.Add(2*time.Hour), 1, func(_ context.Context, job worker.Job) worker.Result {
		assert.Equal(t, "booking.created", job.Kind)
		assert.Equal(t, 1, job.Attempts)
		return worker.Result{Outcome: worker.OutcomeDelivered}
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n, "limit caps the batch")
}
