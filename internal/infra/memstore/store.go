// Package memstore is an in-process implementation of the unit of work, the read stores
// and the outbox. Writers are serialized behind one lock, which stands in for the row locks
// the Postgres store takes; a transaction buffers its writes and applies them on commit.
package memstore

import (
	"bytes"
	"context"
	"sync"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/group"
	"hotel-booking-core/internal/domain/hotel"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/refund"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type dayKey struct {
	hotelID uuid.UUID
	date    string
}

func keyOf(hotelID uuid.UUID, date time.Time) dayKey {
	return dayKey{hotelID: hotelID, date: stay.FormatDate(date)}
}

type idempotencyKey struct {
	key    string
	userID uuid.UUID
}

const (
	JobStatusQueued     = "queued"
	JobStatusProcessing = "processing"
	JobStatusSent       = "sent"
	JobStatusFailed     = "failed"
)

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Attempts  int
	Status    string
	LastError string
	CreatedAt time.Time
}

type state struct {
	hotels        map[uuid.UUID]hotel.Hotel
	days          map[dayKey]inventory.Day
	bookings      map[uuid.UUID]booking.Booking
	references    map[string]uuid.UUID
	history       map[uuid.UUID][]booking.StatusChange
	modifications map[uuid.UUID][]booking.Modification
	refunds       map[uuid.UUID]refund.Request
	refundRefs    map[string]uuid.UUID
	groups        map[uuid.UUID]group.Request
	keys          map[idempotencyKey]shared.IdempotencyRecord
	jobs          map[uuid.UUID]*NotificationJob
	jobOrder      []uuid.UUID
}

type Store struct {
	// writeMu serializes transactions; mu guards the committed state.
	writeMu sync.Mutex
	mu      sync.RWMutex
	st      state
}

func New() *Store {
	return &Store{
		st: state{
			hotels:        make(map[uuid.UUID]hotel.Hotel),
			days:          make(map[dayKey]inventory.Day),
			bookings:      make(map[uuid.UUID]booking.Booking),
			references:    make(map[string]uuid.UUID),
			history:       make(map[uuid.UUID][]booking.StatusChange),
			modifications: make(map[uuid.UUID][]booking.Modification),
			refunds:       make(map[uuid.UUID]refund.Request),
			refundRefs:    make(map[string]uuid.UUID),
			groups:        make(map[uuid.UUID]group.Request),
			keys:          make(map[idempotencyKey]shared.IdempotencyRecord),
			jobs:          make(map[uuid.UUID]*NotificationJob),
		},
	}
}

// Within runs fn with exclusive write access. Buffered writes are applied only when fn
// succeeds and ctx is still live.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	t := newTxn(s)
	if err := fn(ctx, t); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	t.apply(&s.st)
	s.mu.Unlock()
	return nil
}

// WithinReadOnly holds the read lock for the whole of fn, so fn sees one snapshot.
func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(ctx, &committedReads{s: s, locked: true})
}

func (s *Store) CommandReads() shared.CommandReads {
	return &committedReads{s: s}
}

func (s *Store) AddHotel(h *hotel.Hotel) {
	s.mutate(func(st *state) {
		st.hotels[h.ID()] = *h
	})
}

// PutDay stores a ledger row as-is, replacing any existing one.
func (s *Store) PutDay(d *inventory.Day) {
	s.mutate(func(st *state) {
		cp := *d
		cp.MarkStored()
		st.days[keyOf(cp.HotelID(), cp.Date())] = cp
	})
}

// Jobs returns a copy of the outbox in insertion order.
func (s *Store) Jobs() []NotificationJob {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]NotificationJob, 0, len(s.st.jobOrder))
	for _, id := range s.st.jobOrder {
		out = append(out, *s.st.jobs[id])
	}
	return out
}

func (s *Store) mutate(fn func(st *state)) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.st)
}

// before reports whether (t, id) sorts strictly before (afterT, afterID) in
// created_at DESC, id DESC order, at the microsecond precision cursors carry.
func before(t time.Time, id uuid.UUID, afterT time.Time, afterID uuid.UUID) bool {
	t, afterT = t.Truncate(time.Microsecond), afterT.Truncate(time.Microsecond)
	if !t.Equal(afterT) {
		return t.Before(afterT)
	}
	return bytes.Compare(id[:], afterID[:]) < 0
}

func newestFirst(at, bt time.Time, aid, bid uuid.UUID) int {
	if c := bt.Compare(at); c != 0 {
		return c
	}
	return bytes.Compare(bid[:], aid[:])
}
