package commands

import (
	"context"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/refund"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/queries"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

var ErrRefundNotFound = errs.New("refund request not found")

type RequestRefundInput struct {
	AmountCents int64
	Reason      string
}

// RefundCommands records refund claims. Neither operation changes the booking's payment status.
type RefundCommands interface {
	Request(ctx context.Context, actor shared.Actor, bookingID uuid.UUID, in RequestRefundInput) (*queries.RefundView, error)
	Decide(ctx context.Context, actor shared.Actor, refundID uuid.UUID, approve bool) (*queries.RefundView, error)
}

type refundCommandsImpl struct {
	uow      shared.UnitOfWork
	services *refund.Services
}

func NewRefundCommands(uow shared.UnitOfWork, refs refund.ReferenceGenerator, clk clock.Clock) RefundCommands {
	return &refundCommandsImpl{
		uow:      uow,
		services: &refund.Services{Clock: clk, References: refs},
	}
}

// Request locks the booking so concurrent requests against it see each other's committed amounts.
func (c *refundCommandsImpl) Request(ctx context.Context, actor shared.Actor, bookingID uuid.UUID, in RequestRefundInput) (_ *queries.RefundView, err error) {
	ctx, span := startSpan(ctx, "RefundCommands.Request",
		attribute.String("booking.id", bookingID.String()),
		attribute.Int64("refund.amount_cents", in.AmountCents))
	defer endSpan(span, &err)

	amount, err := money.New(in.AmountCents)
	if err != nil {
		return nil, shared.Classify(errs.Mark(err, refund.ErrInvalidAmount))
	}

	var view *queries.RefundView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return shared.NotFound(ErrBookingNotFound)
			}
			return err
		}
		if !actor.CanAccess(b.UserID()) {
			return shared.NotFound(ErrBookingNotFound)
		}
		if b.PaymentStatus() != booking.PaymentPaid {
			return refund.ErrBookingNotPaid
		}

		committed, err := tx.Refunds().SumCommitted(ctx, bookingID)
		if err != nil {
			return err
		}
		if err := refund.CheckBound(b.Total(), committed, amount); err != nil {
			return err
		}

		r, err := refund.NewRequest(c.services, bookingID, actor.UserID, amount, in.Reason)
		if err != nil {
			return err
		}
		if err := tx.Refunds().Create(ctx, r); err != nil {
			return err
		}
		if err := emit(ctx, tx, EventRefundRequested, TopicRefund, newRefundEvent(r, r.RequestedAt()), r.RequestedAt()); err != nil {
			return err
		}
		view = queries.NewRefundView(r)
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return view, nil
}

func (c *refundCommandsImpl) Decide(ctx context.Context, actor shared.Actor, refundID uuid.UUID, approve bool) (_ *queries.RefundView, err error) {
	ctx, span := startSpan(ctx, "RefundCommands.Decide",
		attribute.String("refund.id", refundID.String()),
		attribute.Bool("refund.approve", approve))
	defer endSpan(span, &err)

	if !actor.IsStaff() {
		return nil, errs.Mark(ErrStaffOnly, errs.ErrForbidden)
	}

	var view *queries.RefundView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Refunds().FindForUpdate(ctx, refundID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return shared.NotFound(ErrRefundNotFound)
			}
			return err
		}
		if err := r.Decide(c.services, approve); err != nil {
			return err
		}
		if err := tx.Refunds().Update(ctx, r); err != nil {
			return err
		}
		at := *r.ProcessedAt()
		if err := emit(ctx, tx, EventRefundDecided, TopicRefund, newRefundEvent(r, at), at); err != nil {
			return err
		}
		view = queries.NewRefundView(r)
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return view, nil
}
