package commands

import (
	"context"
	"time"

	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/queries"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// InventoryCommands adjusts one ledger day at a time. Every setter keeps 0 <= available <= max.
type InventoryCommands interface {
	SetSurge(ctx context.Context, actor shared.Actor, hotelID uuid.UUID, date time.Time, multiplier float64) (*queries.CalendarDayView, error)
	SetCapacity(ctx context.Context, actor shared.Actor, hotelID uuid.UUID, date time.Time, maxRooms int) (*queries.CalendarDayView, error)
	// SetBasePrice overrides the hotel rate for one date; nil clears the override.
	SetBasePrice(ctx context.Context, actor shared.Actor, hotelID uuid.UUID, date time.Time, priceCents *int64) (*queries.CalendarDayView, error)
}

type inventoryCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewInventoryCommands(uow shared.UnitOfWork) InventoryCommands {
	return &inventoryCommandsImpl{uow: uow}
}

func (c *inventoryCommandsImpl) SetSurge(ctx context.Context, actor shared.Actor, hotelID uuid.UUID, date time.Time, multiplier float64) (*queries.CalendarDayView, error) {
	surge, err := inventory.SurgeFromFloat(multiplier)
	if err != nil {
		return nil, shared.Classify(err)
	}
	return c.updateDay(ctx, "InventoryCommands.SetSurge", actor, hotelID, date, func(d *inventory.Day) error {
		return d.SetSurge(surge)
	})
}

func (c *inventoryCommandsImpl) SetCapacity(ctx context.Context, actor shared.Actor, hotelID uuid.UUID, date time.Time, maxRooms int) (*queries.CalendarDayView, error) {
	return c.updateDay(ctx, "InventoryCommands.SetCapacity", actor, hotelID, date, func(d *inventory.Day) error {
		return d.SetCapacity(maxRooms)
	})
}

func (c *inventoryCommandsImpl) SetBasePrice(ctx context.Context, actor shared.Actor, hotelID uuid.UUID, date time.Time, priceCents *int64) (*queries.CalendarDayView, error) {
	var price *money.Money
	if priceCents != nil {
		m, err := money.New(*priceCents)
		if err != nil {
			return nil, shared.Classify(err)
		}
		price = &m
	}
	return c.updateDay(ctx, "InventoryCommands.SetBasePrice", actor, hotelID, date, func(d *inventory.Day) error {
		return d.SetBasePrice(price)
	})
}

// updateDay locks the single ledger row for date, applies fn and persists the result.
func (c *inventoryCommandsImpl) updateDay(
	ctx context.Context,
	op string,
	actor shared.Actor,
	hotelID uuid.UUID,
	date time.Time,
	fn func(d *inventory.Day) error,
) (_ *queries.CalendarDayView, err error) {
	ctx, span := startSpan(ctx, op,
		attribute.String("hotel.id", hotelID.String()),
		attribute.String("inventory.date", stay.FormatDate(date)))
	defer endSpan(span, &err)

	if !actor.IsStaff() {
		return nil, errs.Mark(ErrStaffOnly, errs.ErrForbidden)
	}

	day := stay.Day(date)
	night, err := stay.NewRange(day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, shared.Classify(err)
	}

	var view *queries.CalendarDayView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, err := tx.Reads().HotelByID(ctx, hotelID)
		if err != nil {
			return hotelLookupErr(err)
		}
		w, err := tx.Inventory().LockWindow(ctx, hotelID, night)
		if err != nil {
			return err
		}
		d := w.Day(day)
		if err := fn(d); err != nil {
			return err
		}
		if err := tx.Inventory().SaveDays(ctx, w.Changed()); err != nil {
			return err
		}
		view = queries.NewCalendarDayView(h, d)
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return view, nil
}
