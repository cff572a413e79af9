package queries

import (
	"context"
	"time"

	"hotel-booking-core/internal/domain/group"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrGroupRequestNotFound = errs.New("group booking request not found")

type GroupReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GroupRequestView, error)
	// organizerID nil lists every request.
	FindFirstPage(ctx context.Context, organizerID *uuid.UUID, limit int32) ([]*GroupRequestView, error)
	FindKeyset(ctx context.Context, organizerID *uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*GroupRequestView, error)
}

type GroupQuoteInput struct {
	HotelID       uuid.UUID
	GroupSize     int
	Category      string
	CheckIn       time.Time
	CheckOut      time.Time
	RoomsRequired int
}

type GroupQueries interface {
	Quote(ctx context.Context, in GroupQuoteInput) (*GroupQuoteView, error)
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*GroupRequestView, error)
	List(ctx context.Context, actor shared.Actor, cursor *Cursor, limit int) ([]*GroupRequestView, *Cursor, error)
}

type groupQueriesImpl struct {
	store  GroupReadStore
	hotels HotelReadStore
	clock  clock.Clock
}

func NewGroupQueries(store GroupReadStore, hotels HotelReadStore, clk clock.Clock) GroupQueries {
	return &groupQueriesImpl{
		store:  store,
		hotels: hotels,
		clock:  clk,
	}
}

// Quote prices a group stay from the hotel's standard rate. Inventory is not consulted.
func (q *groupQueriesImpl) Quote(ctx context.Context, in GroupQuoteInput) (*GroupQuoteView, error) {
	category, err := group.NewCategory(in.Category)
	if err != nil {
		return nil, shared.Classify(err)
	}
	r, err := stay.NewRange(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, shared.Classify(err)
	}

	h, err := q.hotels.FindByID(ctx, in.HotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.NotFound(ErrHotelNotFound)
		}
		return nil, shared.Classify(err)
	}

	quote, err := group.NewQuote(h.PricePerNight(), in.GroupSize, category, r, in.RoomsRequired, q.clock.Now())
	if err != nil {
		return nil, shared.Classify(err)
	}
	view := NewGroupQuoteView(quote)
	view.HotelID = h.ID()
	return view, nil
}

func (q *groupQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*GroupRequestView, error) {
	r, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.NotFound(ErrGroupRequestNotFound)
		}
		return nil, shared.Classify(err)
	}
	if !actor.IsAdmin() && r.OrganizerID != actor.UserID {
		return nil, shared.NotFound(ErrGroupRequestNotFound)
	}
	return r, nil
}

// List shows admins every request and everyone else their own.
func (q *groupQueriesImpl) List(ctx context.Context, actor shared.Actor, cursor *Cursor, limit int) ([]*GroupRequestView, *Cursor, error) {
	var organizerID *uuid.UUID
	if !actor.IsAdmin() {
		organizerID = &actor.UserID
	}

	limit = ValidateLimit(limit)
	lastCreatedAt, lastID, ok, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}

	var rows []*GroupRequestView
	if ok {
		rows, err = q.store.FindKeyset(ctx, organizerID, lastCreatedAt, lastID, int32(limit+1))
	} else {
		rows, err = q.store.FindFirstPage(ctx, organizerID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, shared.Classify(err)
	}

	rows, next := trimPage(rows, limit, func(r *GroupRequestView) (time.Time, uuid.UUID) { return r.CreatedAt, r.ID })
	return rows, next, nil
}
