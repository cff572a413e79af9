package queries

import (
	"context"

	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRefundNotFound = errs.New("refund request not found")

type RefundReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RefundView, error)
	// FindByBooking is newest first.
	FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]*RefundView, error)
}

type RefundQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*RefundView, error)
	ListByBooking(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) ([]*RefundView, error)
}

type refundQueriesImpl struct {
	store    RefundReadStore
	bookings BookingQueries
}

func NewRefundQueries(store RefundReadStore, bookings BookingQueries) RefundQueries {
	return &refundQueriesImpl{
		store:    store,
		bookings: bookings,
	}
}

func (q *refundQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*RefundView, error) {
	r, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.NotFound(ErrRefundNotFound)
		}
		return nil, shared.Classify(err)
	}
	if !actor.CanAccess(r.UserID) {
		return nil, shared.NotFound(ErrRefundNotFound)
	}
	return r, nil
}

// ListByBooking is visible to whoever may see the booking.
func (q *refundQueriesImpl) ListByBooking(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) ([]*RefundView, error) {
	if _, err := q.bookings.GetByID(ctx, actor, bookingID); err != nil {
		return nil, err
	}
	refunds, err := q.store.FindByBooking(ctx, bookingID)
	if err != nil {
		return nil, shared.Classify(err)
	}
	return refunds, nil
}
