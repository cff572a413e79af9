package queries

import (
	"context"
	"time"

	"hotel-booking-core/internal/domain/hotel"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/pricing"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// MaxCalendarDays bounds an inclusive calendar window.
const MaxCalendarDays = 366

var (
	ErrHotelNotFound      = errs.New("hotel not found")
	ErrCalendarTooLong    = errs.New("calendar window exceeds 366 days")
	ErrInvalidRoomRequest = errs.New("rooms must be at least 1")
)

type HotelReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
}

// InventoryReadStore returns stored ledger days in [from, to), ordered by date.
// Missing dates are not materialized.
type InventoryReadStore interface {
	FindDays(ctx context.Context, hotelID uuid.UUID, from, to time.Time) ([]*inventory.Day, error)
}

type InventoryQueries interface {
	IsAvailable(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time, rooms int) (*AvailabilityView, error)
	Calendar(ctx context.Context, hotelID uuid.UUID, from, to time.Time) ([]*CalendarDayView, error)
	NightlyPrice(ctx context.Context, hotelID uuid.UUID, date time.Time) (*NightlyPriceView, error)
	TotalPrice(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time, rooms int) (*TotalPriceView, error)
}

type inventoryQueriesImpl struct {
	hotels     HotelReadStore
	days       InventoryReadStore
	calculator pricing.Calculator
}

func NewInventoryQueries(hotels HotelReadStore, days InventoryReadStore, calculator pricing.Calculator) InventoryQueries {
	return &inventoryQueriesImpl{
		hotels:     hotels,
		days:       days,
		calculator: calculator,
	}
}

// IsAvailable is a dry run: nothing is locked or written.
func (q *inventoryQueriesImpl) IsAvailable(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time, rooms int) (*AvailabilityView, error) {
	r, err := stay.NewRange(checkIn, checkOut)
	if err != nil {
		return nil, shared.Classify(err)
	}
	if rooms < 1 {
		return nil, errs.Mark(ErrInvalidRoomRequest, errs.ErrValidation)
	}

	h, w, err := q.window(ctx, hotelID, r)
	if err != nil {
		return nil, err
	}

	view := &AvailabilityView{
		HotelID:  hotelID,
		CheckIn:  stay.FormatDate(r.CheckIn()),
		CheckOut: stay.FormatDate(r.CheckOut()),
		Rooms:    rooms,
		Nights:   r.Nights(),
	}
	switch err := inventory.CheckAvailability(h, w, r, rooms); {
	case err == nil:
		view.Available = true
	case errs.IsAny(err, inventory.ErrInsufficientInventory, hotel.ErrHotelInactive):
	default:
		return nil, shared.Classify(err)
	}

	b, err := q.calculator.Quote(h, w, r, rooms)
	if err != nil {
		return nil, shared.Classify(err)
	}
	view.TotalCents = b.Total.Cents()
	return view, nil
}

// Calendar covers the inclusive window [from, to]; dates without a stored row show defaults.
func (q *inventoryQueriesImpl) Calendar(ctx context.Context, hotelID uuid.UUID, from, to time.Time) ([]*CalendarDayView, error) {
	from, to = stay.Day(from), stay.Day(to)
	if to.Before(from) {
		return nil, errs.Mark(stay.ErrInvalidDateRange, errs.ErrInvalidDateRange)
	}
	end := to.AddDate(0, 0, 1)
	if int(end.Sub(from).Hours()/24) > MaxCalendarDays {
		return nil, errs.Mark(ErrCalendarTooLong, errs.ErrValidation)
	}

	h, err := q.hotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	stored, err := q.days.FindDays(ctx, hotelID, from, end)
	if err != nil {
		return nil, shared.Classify(err)
	}
	byDate := make(map[string]*inventory.Day, len(stored))
	for _, d := range stored {
		byDate[stay.FormatDate(d.Date())] = d
	}

	out := make([]*CalendarDayView, 0, MaxCalendarDays)
	for date := from; date.Before(end); date = date.AddDate(0, 0, 1) {
		d, ok := byDate[stay.FormatDate(date)]
		if !ok {
			d = inventory.DefaultDay(hotelID, date)
		}
		out = append(out, NewCalendarDayView(h, d))
	}
	return out, nil
}

func (q *inventoryQueriesImpl) NightlyPrice(ctx context.Context, hotelID uuid.UUID, date time.Time) (*NightlyPriceView, error) {
	date = stay.Day(date)
	h, err := q.hotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	stored, err := q.days.FindDays(ctx, hotelID, date, date.AddDate(0, 0, 1))
	if err != nil {
		return nil, shared.Classify(err)
	}
	d := inventory.DefaultDay(hotelID, date)
	if len(stored) > 0 {
		d = stored[0]
	}

	base := h.PricePerNight()
	if bp := d.BasePrice(); bp != nil {
		base = *bp
	}
	return &NightlyPriceView{
		HotelID:         hotelID,
		Date:            stay.FormatDate(date),
		BasePriceCents:  base.Cents(),
		SurgeMultiplier: d.Surge().Float64(),
		PriceCents:      pricing.NightlyPrice(h, d).Cents(),
	}, nil
}

func (q *inventoryQueriesImpl) TotalPrice(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time, rooms int) (*TotalPriceView, error) {
	r, err := stay.NewRange(checkIn, checkOut)
	if err != nil {
		return nil, shared.Classify(err)
	}
	if rooms < 1 {
		return nil, errs.Mark(ErrInvalidRoomRequest, errs.ErrValidation)
	}

	h, w, err := q.window(ctx, hotelID, r)
	if err != nil {
		return nil, err
	}
	b, err := q.calculator.Quote(h, w, r, rooms)
	if err != nil {
		return nil, shared.Classify(err)
	}

	nights := make([]NightPriceView, len(b.Nights))
	for i, n := range b.Nights {
		nights[i] = NightPriceView{Date: stay.FormatDate(n.Date), PriceCents: n.Amount.Cents()}
	}
	return &TotalPriceView{
		HotelID:    hotelID,
		CheckIn:    stay.FormatDate(r.CheckIn()),
		CheckOut:   stay.FormatDate(r.CheckOut()),
		Rooms:      rooms,
		Mode:       string(q.calculator.Mode()),
		Nights:     nights,
		TotalCents: b.Total.Cents(),
	}, nil
}

func (q *inventoryQueriesImpl) hotel(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	h, err := q.hotels.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.NotFound(ErrHotelNotFound)
		}
		return nil, shared.Classify(err)
	}
	return h, nil
}

func (q *inventoryQueriesImpl) window(ctx context.Context, hotelID uuid.UUID, r stay.Range) (*hotel.Hotel, *inventory.Window, error) {
	h, err := q.hotel(ctx, hotelID)
	if err != nil {
		return nil, nil, err
	}
	stored, err := q.days.FindDays(ctx, hotelID, r.CheckIn(), r.CheckOut())
	if err != nil {
		return nil, nil, shared.Classify(err)
	}
	return h, inventory.NewWindow(hotelID, r, stored), nil
}

func NewCalendarDayView(h *hotel.Hotel, d *inventory.Day) *CalendarDayView {
	v := &CalendarDayView{
		Date:              stay.FormatDate(d.Date()),
		MaxRooms:          d.MaxRooms(),
		AvailableRooms:    d.AvailableRooms(),
		SurgeMultiplier:   d.Surge().Float64(),
		NightlyPriceCents: pricing.NightlyPrice(h, d).Cents(),
		IsAvailable:       d.AvailableRooms() > 0,
	}
	if bp := d.BasePrice(); bp != nil {
		cents := bp.Cents()
		v.BasePriceCents = &cents
	}
	return v
}
