package memstore

import (
	"context"
	"slices"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/group"
	"hotel-booking-core/internal/domain/hotel"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/refund"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// txn buffers writes over the committed state. Only the goroutine holding
// Store.writeMu touches it, so committed maps are read without mu.
type txn struct {
	base *state

	days          map[dayKey]inventory.Day
	bookings      map[uuid.UUID]booking.Booking
	history       []booking.StatusChange
	modifications []booking.Modification
	refunds       map[uuid.UUID]refund.Request
	groups        map[uuid.UUID]group.Request
	keys          map[idempotencyKey]shared.IdempotencyRecord
	jobs          []NotificationJob
}

func newTxn(s *Store) *txn {
	return &txn{
		base:     &s.st,
		days:     make(map[dayKey]inventory.Day),
		bookings: make(map[uuid.UUID]booking.Booking),
		refunds:  make(map[uuid.UUID]refund.Request),
		groups:   make(map[uuid.UUID]group.Request),
		keys:     make(map[idempotencyKey]shared.IdempotencyRecord),
	}
}

func lookup[K comparable, V any](overlay, base map[K]V, k K) (V, bool) {
	if v, ok := overlay[k]; ok {
		return v, true
	}
	v, ok := base[k]
	return v, ok
}

func (t *txn) apply(st *state) {
	for k, d := range t.days {
		st.days[k] = d
	}
	for id, b := range t.bookings {
		st.bookings[id] = b
		st.references[b.Reference()] = id
	}
	for _, c := range t.history {
		st.history[c.BookingID] = append(slices.Clip(st.history[c.BookingID]), c)
	}
	for _, m := range t.modifications {
		st.modifications[m.BookingID] = append(slices.Clip(st.modifications[m.BookingID]), m)
	}
	for id, r := range t.refunds {
		st.refunds[id] = r
		st.refundRefs[r.RequestReference()] = id
	}
	for id, g := range t.groups {
		st.groups[id] = g
	}
	for k, rec := range t.keys {
		st.keys[k] = rec
	}
	for i := range t.jobs {
		j := t.jobs[i]
		st.jobs[j.ID] = &j
		st.jobOrder = append(st.jobOrder, j.ID)
	}
}

func (t *txn) Inventory() shared.InventoryRepository        { return txInventory{t} }
func (t *txn) Bookings() shared.BookingRepository           { return txBookings{t} }
func (t *txn) Refunds() shared.RefundRepository             { return txRefunds{t} }
func (t *txn) Groups() shared.GroupRepository               { return txGroups{t} }
func (t *txn) Idempotency() shared.IdempotencyRepository    { return txIdempotency{t} }
func (t *txn) Notifications() shared.NotificationRepository { return txNotifications{t} }
func (t *txn) Reads() shared.CommandReads                   { return txReads{t} }

type txInventory struct{ t *txn }

func (r txInventory) LockWindow(_ context.Context, hotelID uuid.UUID, span stay.Range) (*inventory.Window, error) {
	return r.t.window(hotelID, span), nil
}

func (r txInventory) SaveDays(_ context.Context, days []*inventory.Day) error {
	for _, d := range days {
		if _, ok := r.t.base.hotels[d.HotelID()]; !ok {
			return infra.WrapRepoErr("availability references unknown hotel", nil, infra.KindForeignKeyViolated)
		}
		d.MarkStored()
		r.t.days[keyOf(d.HotelID(), d.Date())] = *d
	}
	return nil
}

func (t *txn) window(hotelID uuid.UUID, span stay.Range) *inventory.Window {
	var stored []*inventory.Day
	for _, date := range span.Dates() {
		if d, ok := lookup(t.days, t.base.days, keyOf(hotelID, date)); ok {
			stored = append(stored, &d)
		}
	}
	return inventory.NewWindow(hotelID, span, stored)
}

type txBookings struct{ t *txn }

func (r txBookings) Create(_ context.Context, b *booking.Booking) error {
	if _, ok := r.t.base.hotels[b.HotelID()]; !ok {
		return infra.WrapRepoErr("booking references unknown hotel", nil, infra.KindForeignKeyViolated)
	}
	if _, ok := r.t.base.references[b.Reference()]; ok {
		return infra.WrapRepoErr("booking reference already exists", nil, infra.KindDuplicateKey)
	}
	for _, pending := range r.t.bookings {
		if pending.Reference() == b.Reference() {
			return infra.WrapRepoErr("booking reference already exists", nil, infra.KindDuplicateKey)
		}
	}
	r.t.bookings[b.ID()] = *b
	return nil
}

func (r txBookings) FindForUpdate(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := lookup(r.t.bookings, r.t.base.bookings, id)
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return &b, nil
}

func (r txBookings) Update(_ context.Context, b *booking.Booking) error {
	if _, ok := lookup(r.t.bookings, r.t.base.bookings, b.ID()); !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	r.t.bookings[b.ID()] = *b
	return nil
}

func (r txBookings) AppendStatusChange(_ context.Context, change booking.StatusChange) error {
	r.t.history = append(r.t.history, change)
	return nil
}

func (r txBookings) AppendModification(_ context.Context, m booking.Modification) error {
	r.t.modifications = append(r.t.modifications, m)
	return nil
}

type txRefunds struct{ t *txn }

func (r txRefunds) Create(_ context.Context, req *refund.Request) error {
	if _, ok := r.t.base.refundRefs[req.RequestReference()]; ok {
		return infra.WrapRepoErr("refund reference already exists", nil, infra.KindDuplicateKey)
	}
	r.t.refunds[req.ID()] = *req
	return nil
}

func (r txRefunds) FindForUpdate(_ context.Context, id uuid.UUID) (*refund.Request, error) {
	req, ok := lookup(r.t.refunds, r.t.base.refunds, id)
	if !ok {
		return nil, infra.WrapRepoErr("refund request not found", nil, infra.KindNotFound)
	}
	return &req, nil
}

func (r txRefunds) Update(_ context.Context, req *refund.Request) error {
	if _, ok := lookup(r.t.refunds, r.t.base.refunds, req.ID()); !ok {
		return infra.WrapRepoErr("refund request not found", nil, infra.KindNotFound)
	}
	r.t.refunds[req.ID()] = *req
	return nil
}

func (r txRefunds) SumCommitted(_ context.Context, bookingID uuid.UUID) (money.Money, error) {
	total := money.Zero()
	r.t.eachRefund(bookingID, func(req refund.Request) {
		if req.Status().Committed() {
			total = total.Add(req.Amount())
		}
	})
	return total, nil
}

func (r txRefunds) CountApproved(_ context.Context, bookingID uuid.UUID) (int64, error) {
	var n int64
	r.t.eachRefund(bookingID, func(req refund.Request) {
		if req.Status() == refund.StatusApproved {
			n++
		}
	})
	return n, nil
}

func (t *txn) eachRefund(bookingID uuid.UUID, fn func(refund.Request)) {
	for id, req := range t.base.refunds {
		if _, shadowed := t.refunds[id]; shadowed || req.BookingID() != bookingID {
			continue
		}
		fn(req)
	}
	for _, req := range t.refunds {
		if req.BookingID() == bookingID {
			fn(req)
		}
	}
}

type txGroups struct{ t *txn }

func (r txGroups) Create(_ context.Context, g *group.Request) error {
	if _, ok := r.t.base.hotels[g.HotelID()]; !ok {
		return infra.WrapRepoErr("group request references unknown hotel", nil, infra.KindForeignKeyViolated)
	}
	r.t.groups[g.ID()] = *g
	return nil
}

func (r txGroups) FindForUpdate(_ context.Context, id uuid.UUID) (*group.Request, error) {
	g, ok := lookup(r.t.groups, r.t.base.groups, id)
	if !ok {
		return nil, infra.WrapRepoErr("group booking request not found", nil, infra.KindNotFound)
	}
	return &g, nil
}

func (r txGroups) Update(_ context.Context, g *group.Request) error {
	if _, ok := lookup(r.t.groups, r.t.base.groups, g.ID()); !ok {
		return infra.WrapRepoErr("group booking request not found", nil, infra.KindNotFound)
	}
	r.t.groups[g.ID()] = *g
	return nil
}

type txIdempotency struct{ t *txn }

func (r txIdempotency) TryInsert(_ context.Context, key string, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	k := idempotencyKey{key: key, userID: userID}
	if _, ok := lookup(r.t.keys, r.t.base.keys, k); ok {
		return false, nil
	}
	r.t.keys[k] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r txIdempotency) ClaimExpired(_ context.Context, key string, userID uuid.UUID, endpoint, requestHash string, expiresAt, now time.Time) (bool, error) {
	k := idempotencyKey{key: key, userID: userID}
	rec, ok := lookup(r.t.keys, r.t.base.keys, k)
	if !ok || !rec.IsExpired(now) {
		return false, nil
	}
	r.t.keys[k] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r txIdempotency) MarkCompleted(_ context.Context, key string, userID uuid.UUID, responseHash string, bookingID uuid.UUID) error {
	k := idempotencyKey{key: key, userID: userID}
	rec, ok := lookup(r.t.keys, r.t.base.keys, k)
	if !ok {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	rec.Status = shared.IdempotencyStatusCompleted
	rec.ResponseHash = &responseHash
	rec.ResultBookingID = &bookingID
	r.t.keys[k] = rec
	return nil
}

type txNotifications struct{ t *txn }

func (r txNotifications) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	r.t.jobs = append(r.t.jobs, NotificationJob{
		ID:        uuid.New(),
		Kind:      kind,
		Topic:     topic,
		Payload:   slices.Clone(payload),
		RunAt:     runAt,
		Status:    JobStatusQueued,
		CreatedAt: runAt,
	})
	return nil
}

type txReads struct{ t *txn }

func (r txReads) HotelByID(_ context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	h, ok := r.t.base.hotels[id]
	if !ok {
		return nil, infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return &h, nil
}

func (r txReads) InventoryWindow(_ context.Context, hotelID uuid.UUID, span stay.Range) (*inventory.Window, error) {
	return r.t.window(hotelID, span), nil
}

func (r txReads) IdempotencyByKey(_ context.Context, key string, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := lookup(r.t.keys, r.t.base.keys, idempotencyKey{key: key, userID: userID})
	if !ok {
		return nil, infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return &rec, nil
}

// committedReads serves CommandReads from committed state. With locked set the caller
// already holds the read lock.
type committedReads struct {
	s      *Store
	locked bool
}

func (r *committedReads) rlock() func() {
	if r.locked {
		return func() {}
	}
	r.s.mu.RLock()
	return r.s.mu.RUnlock
}

func (r *committedReads) HotelByID(_ context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	defer r.rlock()()
	h, ok := r.s.st.hotels[id]
	if !ok {
		return nil, infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return &h, nil
}

func (r *committedReads) InventoryWindow(_ context.Context, hotelID uuid.UUID, span stay.Range) (*inventory.Window, error) {
	defer r.rlock()()
	return inventory.NewWindow(hotelID, span, r.s.storedDays(hotelID, span.CheckIn(), span.CheckOut())), nil
}

func (r *committedReads) IdempotencyByKey(_ context.Context, key string, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	defer r.rlock()()
	rec, ok := r.s.st.keys[idempotencyKey{key: key, userID: userID}]
	if !ok {
		return nil, infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return &rec, nil
}

// storedDays copies committed rows in [from, to). Caller holds mu.
func (s *Store) storedDays(hotelID uuid.UUID, from, to time.Time) []*inventory.Day {
	var out []*inventory.Day
	for date := stay.Day(from); date.Before(to); date = date.AddDate(0, 0, 1) {
		if d, ok := s.st.days[keyOf(hotelID, date)]; ok {
			out = append(out, &d)
		}
	}
	return out
}
