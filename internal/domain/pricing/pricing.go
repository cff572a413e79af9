package pricing

import (
	"errors"
	"time"

	"hotel-booking-core/internal/domain/hotel"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/stay"
)

var ErrUnknownMode = errors.New("unknown pricing mode")

type Mode string

const (
	ModeDynamic Mode = "dynamic"
	ModeStatic  Mode = "static"
)

func (m Mode) IsValid() bool {
	return m == ModeDynamic || m == ModeStatic
}

// DaySource resolves the ledger entry for a date, falling back to defaults.
type DaySource interface {
	Day(date time.Time) *inventory.Day
}

type NightPrice struct {
	Date   time.Time
	Amount money.Money
}

type Breakdown struct {
	Nights []NightPrice
	Rooms  int
	Total  money.Money
}

type Calculator interface {
	Mode() Mode
	Quote(h *hotel.Hotel, days DaySource, r stay.Range, rooms int) (Breakdown, error)
}

func NewCalculator(mode Mode) (Calculator, error) {
	switch mode {
	case ModeDynamic, "":
		return DynamicCalculator{}, nil
	case ModeStatic:
		return StaticCalculator{}, nil
	default:
		return nil, ErrUnknownMode
	}
}

// NightlyPrice is (date base price, else hotel price) x surge, rounded half up to a cent.
func NightlyPrice(h *hotel.Hotel, d *inventory.Day) money.Money {
	base := h.PricePerNight()
	if bp := d.BasePrice(); bp != nil {
		base = *bp
	}
	return base.ApplyBasisPoints(d.Surge().BasisPoints())
}

// TotalPrice sums NightlyPrice x rooms over every night of r.
func TotalPrice(h *hotel.Hotel, days DaySource, r stay.Range, rooms int) (money.Money, error) {
	b, err := DynamicCalculator{}.Quote(h, days, r, rooms)
	if err != nil {
		return money.Zero(), err
	}
	return b.Total, nil
}

type DynamicCalculator struct{}

func (DynamicCalculator) Mode() Mode { return ModeDynamic }

func (DynamicCalculator) Quote(h *hotel.Hotel, days DaySource, r stay.Range, rooms int) (Breakdown, error) {
	if rooms < 1 {
		return Breakdown{}, inventory.ErrInvalidRoomCount
	}
	if r.IsZero() {
		return Breakdown{}, stay.ErrInvalidDateRange
	}
	b := Breakdown{Rooms: rooms, Nights: make([]NightPrice, 0, r.Nights())}
	for _, date := range r.Dates() {
		nightly := NightlyPrice(h, days.Day(date))
		b.Nights = append(b.Nights, NightPrice{Date: date, Amount: nightly})
		b.Total = b.Total.Add(nightly.Mul(int64(rooms)))
	}
	return b, nil
}

// StaticCalculator charges the hotel's flat nightly price and ignores per-date overrides.
type StaticCalculator struct{}

func (StaticCalculator) Mode() Mode { return ModeStatic }

func (StaticCalculator) Quote(h *hotel.Hotel, _ DaySource, r stay.Range, rooms int) (Breakdown, error) {
	if rooms < 1 {
		return Breakdown{}, inventory.ErrInvalidRoomCount
	}
	if r.IsZero() {
		return Breakdown{}, stay.ErrInvalidDateRange
	}
	price := h.PricePerNight()
	b := Breakdown{Rooms: rooms, Nights: make([]NightPrice, 0, r.Nights())}
	for _, date := range r.Dates() {
		b.Nights = append(b.Nights, NightPrice{Date: date, Amount: price})
	}
	b.Total = price.Mul(int64(r.Nights()) * int64(rooms))
	return b, nil
}
