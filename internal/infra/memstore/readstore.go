package memstore

import (
	"context"
	"slices"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/group"
	"hotel-booking-core/internal/domain/hotel"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/refund"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelReadStore struct{ s *Store }

func NewHotelReadStore(s *Store) *HotelReadStore { return &HotelReadStore{s: s} }

func (r *HotelReadStore) FindByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	return r.s.CommandReads().HotelByID(ctx, id)
}

type InventoryReadStore struct{ s *Store }

func NewInventoryReadStore(s *Store) *InventoryReadStore { return &InventoryReadStore{s: s} }

func (r *InventoryReadStore) FindDays(_ context.Context, hotelID uuid.UUID, from, to time.Time) ([]*inventory.Day, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.storedDays(hotelID, from, to), nil
}

type BookingReadStore struct{ s *Store }

func NewBookingReadStore(s *Store) *BookingReadStore { return &BookingReadStore{s: s} }

func (r *BookingReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.st.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return queries.NewBookingView(&b), nil
}

func (r *BookingReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	return r.list(userID, nil, uuid.Nil, limit), nil
}

func (r *BookingReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	return r.list(userID, &lastCreatedAt, lastID, limit), nil
}

func (r *BookingReadStore) list(userID uuid.UUID, after *time.Time, afterID uuid.UUID, limit int32) []*queries.BookingView {
	r.s.mu.RLock()
	var matched []booking.Booking
	for _, b := range r.s.st.bookings {
		if b.UserID() != userID {
			continue
		}
		if after != nil && !before(b.CreatedAt(), b.ID(), *after, afterID) {
			continue
		}
		matched = append(matched, b)
	}
	r.s.mu.RUnlock()

	slices.SortFunc(matched, func(a, b booking.Booking) int {
		return newestFirst(a.CreatedAt(), b.CreatedAt(), a.ID(), b.ID())
	})
	if len(matched) > int(limit) {
		matched = matched[:limit]
	}
	out := make([]*queries.BookingView, len(matched))
	for i := range matched {
		out[i] = queries.NewBookingView(&matched[i])
	}
	return out
}

func (r *BookingReadStore) FindStatusHistory(_ context.Context, bookingID uuid.UUID) ([]*queries.StatusChangeView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	history := r.s.st.history[bookingID]
	out := make([]*queries.StatusChangeView, len(history))
	for i, c := range history {
		out[i] = queries.NewStatusChangeView(c)
	}
	return out, nil
}

func (r *BookingReadStore) FindModifications(_ context.Context, bookingID uuid.UUID) ([]*queries.ModificationView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	mods := r.s.st.modifications[bookingID]
	out := make([]*queries.ModificationView, 0, len(mods))
	for i := len(mods) - 1; i >= 0; i-- {
		out = append(out, queries.NewModificationView(mods[i]))
	}
	return out, nil
}

type RefundReadStore struct{ s *Store }

func NewRefundReadStore(s *Store) *RefundReadStore { return &RefundReadStore{s: s} }

func (r *RefundReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.RefundView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	req, ok := r.s.st.refunds[id]
	if !ok {
		return nil, infra.WrapRepoErr("refund request not found", nil, infra.KindNotFound)
	}
	return queries.NewRefundView(&req), nil
}

func (r *RefundReadStore) FindByBooking(_ context.Context, bookingID uuid.UUID) ([]*queries.RefundView, error) {
	r.s.mu.RLock()
	var matched []refund.Request
	for _, req := range r.s.st.refunds {
		if req.BookingID() == bookingID {
			matched = append(matched, req)
		}
	}
	r.s.mu.RUnlock()

	slices.SortFunc(matched, func(a, b refund.Request) int {
		return newestFirst(a.RequestedAt(), b.RequestedAt(), a.ID(), b.ID())
	})
	out := make([]*queries.RefundView, len(matched))
	for i := range matched {
		out[i] = queries.NewRefundView(&matched[i])
	}
	return out, nil
}

type GroupReadStore struct{ s *Store }

func NewGroupReadStore(s *Store) *GroupReadStore { return &GroupReadStore{s: s} }

func (r *GroupReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.GroupRequestView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	g, ok := r.s.st.groups[id]
	if !ok {
		return nil, infra.WrapRepoErr("group booking request not found", nil, infra.KindNotFound)
	}
	return queries.NewGroupRequestView(&g), nil
}

func (r *GroupReadStore) FindFirstPage(_ context.Context, organizerID *uuid.UUID, limit int32) ([]*queries.GroupRequestView, error) {
	return r.list(organizerID, nil, uuid.Nil, limit), nil
}

func (r *GroupReadStore) FindKeyset(_ context.Context, organizerID *uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.GroupRequestView, error) {
	return r.list(organizerID, &lastCreatedAt, lastID, limit), nil
}

func (r *GroupReadStore) list(organizerID *uuid.UUID, after *time.Time, afterID uuid.UUID, limit int32) []*queries.GroupRequestView {
	r.s.mu.RLock()
	var matched []group.Request
	for _, g := range r.s.st.groups {
		if organizerID != nil && g.OrganizerID() != *organizerID {
			continue
		}
		if after != nil && !before(g.CreatedAt(), g.ID(), *after, afterID) {
			continue
		}
		matched = append(matched, g)
	}
	r.s.mu.RUnlock()

	slices.SortFunc(matched, func(a, b group.Request) int {
		return newestFirst(a.CreatedAt(), b.CreatedAt(), a.ID(), b.ID())
	})
	if len(matched) > int(limit) {
		matched = matched[:limit]
	}
	out := make([]*queries.GroupRequestView, len(matched))
	for i := range matched {
		out[i] = queries.NewGroupRequestView(&matched[i])
	}
	return out
}
