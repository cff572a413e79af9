package stay

import (
	"errors"
	"time"
)

const (
	DateLayout = "2006-01-02"
	// MaxNights bounds a single stay so per-night loops stay small.
	MaxNights = 365
)

var (
	ErrInvalidDateRange = errors.New("check-in date must be before check-out date")
	ErrStayTooLong      = errors.New("stay exceeds maximum number of nights")
	ErrInvalidDate      = errors.New("invalid date")
)

// Range is a half-open stay interval [checkIn, checkOut). The checkout day is not a night.
type Range struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewRange(checkIn, checkOut time.Time) (Range, error) {
	in := Day(checkIn)
	out := Day(checkOut)
	if !in.Before(out) {
		return Range{}, ErrInvalidDateRange
	}
	r := Range{checkIn: in, checkOut: out}
	if r.Nights() > MaxNights {
		return Range{}, ErrStayTooLong
	}
	return r, nil
}

func ParseRange(checkIn, checkOut string) (Range, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return Range{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return Range{}, err
	}
	return NewRange(in, out)
}

func (r Range) CheckIn() time.Time  { return r.checkIn }
func (r Range) CheckOut() time.Time { return r.checkOut }

func (r Range) Nights() int {
	return int(r.checkOut.Sub(r.checkIn).Hours() / 24)
}

// Dates lists every night of the stay in ascending order.
func (r Range) Dates() []time.Time {
	n := r.Nights()
	dates := make([]time.Time, 0, n)
	for d := r.checkIn; d.Before(r.checkOut); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func (r Range) Contains(date time.Time) bool {
	d := Day(date)
	return !d.Before(r.checkIn) && d.Before(r.checkOut)
}

func (r Range) Equal(o Range) bool {
	return r.checkIn.Equal(o.checkIn) && r.checkOut.Equal(o.checkOut)
}

// Union spans both ranges, including any gap between them.
func (r Range) Union(o Range) Range {
	u := r
	if o.checkIn.Before(u.checkIn) {
		u.checkIn = o.checkIn
	}
	if o.checkOut.After(u.checkOut) {
		u.checkOut = o.checkOut
	}
	return u
}

func (r Range) IsZero() bool {
	return r.checkIn.IsZero() && r.checkOut.IsZero()
}

func (r Range) String() string {
	return FormatDate(r.checkIn) + "/" + FormatDate(r.checkOut)
}

// Day truncates t to a UTC calendar date, keeping the wall-clock date of t.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
