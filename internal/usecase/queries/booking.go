package queries

import (
	"context"
	"time"

	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingView, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
	// FindStatusHistory is oldest first.
	FindStatusHistory(ctx context.Context, bookingID uuid.UUID) ([]*StatusChangeView, error)
	// FindModifications is newest first.
	FindModifications(ctx context.Context, bookingID uuid.UUID) ([]*ModificationView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, actor shared.Actor, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	ListModifications(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) ([]*ModificationView, error)
	ListStatusHistory(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) ([]*StatusChangeView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

// GetByID hides other guests' bookings behind not found.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.NotFound(ErrBookingNotFound)
		}
		return nil, shared.Classify(err)
	}
	if !actor.CanAccess(b.UserID) {
		return nil, shared.NotFound(ErrBookingNotFound)
	}
	return b, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, actor shared.Actor, userID uuid.UUID, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	if !actor.CanAccess(userID) {
		return nil, nil, errs.Mark(ErrBookingAccess, errs.ErrForbidden)
	}

	limit = ValidateLimit(limit)
	lastCreatedAt, lastID, ok, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}

	var rows []*BookingView
	if ok {
		rows, err = q.store.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1))
	} else {
		rows, err = q.store.FindByUserFirstPage(ctx, userID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, shared.Classify(err)
	}

	rows, next := trimPage(rows, limit, func(b *BookingView) (time.Time, uuid.UUID) { return b.CreatedAt, b.ID })
	return rows, next, nil
}

func (q *bookingQueriesImpl) ListModifications(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) ([]*ModificationView, error) {
	if _, err := q.GetByID(ctx, actor, bookingID); err != nil {
		return nil, err
	}
	mods, err := q.store.FindModifications(ctx, bookingID)
	if err != nil {
		return nil, shared.Classify(err)
	}
	return mods, nil
}

func (q *bookingQueriesImpl) ListStatusHistory(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) ([]*StatusChangeView, error) {
	if _, err := q.GetByID(ctx, actor, bookingID); err != nil {
		return nil, err
	}
	history, err := q.store.FindStatusHistory(ctx, bookingID)
	if err != nil {
		return nil, shared.Classify(err)
	}
	return history, nil
}
