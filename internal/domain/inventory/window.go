package inventory

import (
	"sort"
	"time"

	"hotel-booking-core/internal/domain/hotel"
	"hotel-booking-core/internal/domain/stay"

	"github.com/google/uuid"
)

// Window is the set of ledger days for one hotel over a contiguous span.
// Every date in the span has an entry: stored rows where they exist, defaults elsewhere.
type Window struct {
	hotelID uuid.UUID
	span    stay.Range
	days    map[string]*Day
}

func NewWindow(hotelID uuid.UUID, span stay.Range, stored []*Day) *Window {
	w := &Window{
		hotelID: hotelID,
		span:    span,
		days:    make(map[string]*Day, span.Nights()),
	}
	for _, d := range stored {
		if d.hotelID == hotelID && span.Contains(d.date) {
			w.days[stay.FormatDate(d.date)] = d
		}
	}
	for _, date := range span.Dates() {
		key := stay.FormatDate(date)
		if _, ok := w.days[key]; !ok {
			w.days[key] = DefaultDay(hotelID, date)
		}
	}
	return w
}

func (w *Window) HotelID() uuid.UUID { return w.hotelID }
func (w *Window) Span() stay.Range   { return w.span }

// Day returns the ledger entry for date. Dates outside the span get a fresh default.
func (w *Window) Day(date time.Time) *Day {
	if d, ok := w.days[stay.FormatDate(date)]; ok {
		return d
	}
	return DefaultDay(w.hotelID, date)
}

// Days returns all entries in date order.
func (w *Window) Days() []*Day {
	out := make([]*Day, 0, len(w.days))
	for _, d := range w.days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].date.Before(out[j].date) })
	return out
}

// Changed returns entries modified since load, in date order.
func (w *Window) Changed() []*Day {
	var out []*Day
	for _, d := range w.Days() {
		if d.dirty {
			out = append(out, d)
		}
	}
	return out
}

// Available reports ErrInsufficientInventory when any night of r has fewer than rooms free.
func (w *Window) Available(r stay.Range, rooms int) error {
	if rooms < 1 {
		return ErrInvalidRoomCount
	}
	if !w.covers(r) {
		return ErrOutsideWindow
	}
	for _, date := range r.Dates() {
		if !w.Day(date).CanReserve(rooms) {
			return ErrInsufficientInventory
		}
	}
	return nil
}

// Reserve decrements every night of r, or none of them.
func (w *Window) Reserve(r stay.Range, rooms int) error {
	if err := w.Available(r, rooms); err != nil {
		return err
	}
	for _, date := range r.Dates() {
		w.Day(date).reserve(rooms)
	}
	return nil
}

// Release returns rooms to every night of r, capped at each day's capacity.
func (w *Window) Release(r stay.Range, rooms int) error {
	if rooms < 1 {
		return ErrInvalidRoomCount
	}
	if !w.covers(r) {
		return ErrOutsideWindow
	}
	for _, date := range r.Dates() {
		w.Day(date).release(rooms)
	}
	return nil
}

// Move releases (from, fromRooms) and reserves (to, toRooms) as one step.
// On failure the window is left exactly as it was.
func (w *Window) Move(from stay.Range, fromRooms int, to stay.Range, toRooms int) error {
	if !w.covers(from) || !w.covers(to) {
		return ErrOutsideWindow
	}
	saved := make(map[string]Day, len(w.days))
	for k, d := range w.days {
		saved[k] = *d
	}
	restore := func() {
		for k, d := range saved {
			*w.days[k] = d
		}
	}

	if err := w.Release(from, fromRooms); err != nil {
		restore()
		return err
	}
	if err := w.Reserve(to, toRooms); err != nil {
		restore()
		return err
	}
	return nil
}

func (w *Window) covers(r stay.Range) bool {
	return !r.CheckIn().Before(w.span.CheckIn()) && !r.CheckOut().After(w.span.CheckOut())
}

// CheckAvailability is the dry-run gate used before reserving: the hotel must be
// bookable and every night must have rooms free.
func CheckAvailability(h *hotel.Hotel, w *Window, r stay.Range, rooms int) error {
	if err := h.EnsureBookable(); err != nil {
		return err
	}
	return w.Available(r, rooms)
}
