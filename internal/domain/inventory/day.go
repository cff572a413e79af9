package inventory

import (
	"errors"
	"math"
	"time"

	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/stay"

	"github.com/google/uuid"
)

const DefaultMaxRooms = 100

var (
	ErrInsufficientInventory  = errors.New("insufficient rooms available for the requested dates")
	ErrInvalidRoomCount       = errors.New("room count must be at least 1")
	ErrInvalidCapacity        = errors.New("capacity cannot be negative")
	ErrCapacityBelowCommitted = errors.New("capacity is below rooms already committed")
	ErrInvalidSurge           = errors.New("surge multiplier out of range")
	ErrBasePriceTooHigh       = errors.New("base price exceeds the allowed maximum")
	ErrOutsideWindow          = errors.New("date range outside locked inventory window")
)

// Surge is a price multiplier in basis points; 10000 means 1.0.
type Surge int64

const (
	DefaultSurge Surge = Surge(money.BasisPointsOne)
	// MaxSurge matches the numeric(6,4) storage column.
	MaxSurge Surge = 999999
)

// MaxBasePriceCents caps a per-date price override so that surge and stay
// totals stay within int64 minor units.
const MaxBasePriceCents int64 = 1_000_000_000

func NewSurge(bp int64) (Surge, error) {
	s := Surge(bp)
	if s < 0 || s > MaxSurge {
		return 0, ErrInvalidSurge
	}
	return s, nil
}

func SurgeFromFloat(f float64) (Surge, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidSurge
	}
	return NewSurge(int64(math.Round(f * float64(money.BasisPointsOne))))
}

func (s Surge) BasisPoints() int64 { return int64(s) }

func (s Surge) Float64() float64 {
	return float64(s) / float64(money.BasisPointsOne)
}

// Day is the ledger entry for one hotel on one calendar date.
type Day struct {
	hotelID        uuid.UUID
	date           time.Time
	maxRooms       int
	availableRooms int
	basePrice      *money.Money
	surge          Surge
	stored         bool
	dirty          bool
}

// DefaultDay is the implicit entry for a date with no stored row.
func DefaultDay(hotelID uuid.UUID, date time.Time) *Day {
	return &Day{
		hotelID:        hotelID,
		date:           stay.Day(date),
		maxRooms:       DefaultMaxRooms,
		availableRooms: DefaultMaxRooms,
		surge:          DefaultSurge,
	}
}

func ReconstructDay(hotelID uuid.UUID, date time.Time, maxRooms, availableRooms int, basePrice *money.Money, surge Surge) *Day {
	return &Day{
		hotelID:        hotelID,
		date:           stay.Day(date),
		maxRooms:       maxRooms,
		availableRooms: availableRooms,
		basePrice:      basePrice,
		surge:          surge,
		stored:         true,
	}
}

func (d *Day) HotelID() uuid.UUID        { return d.hotelID }
func (d *Day) Date() time.Time           { return d.date }
func (d *Day) MaxRooms() int             { return d.maxRooms }
func (d *Day) AvailableRooms() int       { return d.availableRooms }
func (d *Day) BasePrice() *money.Money   { return d.basePrice }
func (d *Day) Surge() Surge              { return d.surge }
func (d *Day) IsStored() bool            { return d.stored }
func (d *Day) IsDirty() bool             { return d.dirty }
func (d *Day) CommittedRooms() int       { return d.maxRooms - d.availableRooms }
func (d *Day) CanReserve(rooms int) bool { return d.availableRooms >= rooms }

// SetCapacity changes the ceiling while keeping committed rooms committed.
func (d *Day) SetCapacity(maxRooms int) error {
	if maxRooms < 0 {
		return ErrInvalidCapacity
	}
	committed := d.CommittedRooms()
	if maxRooms < committed {
		return ErrCapacityBelowCommitted
	}
	d.maxRooms = maxRooms
	d.availableRooms = maxRooms - committed
	d.dirty = true
	return nil
}

func (d *Day) SetSurge(s Surge) error {
	if s < 0 || s > MaxSurge {
		return ErrInvalidSurge
	}
	d.surge = s
	d.dirty = true
	return nil
}

// SetBasePrice overrides the hotel's nightly price for this date; nil clears the override.
func (d *Day) SetBasePrice(price *money.Money) error {
	if price != nil {
		if price.Cents() < 0 {
			return money.ErrNegativeAmount
		}
		if price.Cents() > MaxBasePriceCents {
			return ErrBasePriceTooHigh
		}
	}
	d.basePrice = price
	d.dirty = true
	return nil
}

// MarkStored is called by stores after the row has been written.
func (d *Day) MarkStored() {
	d.stored = true
	d.dirty = false
}

func (d *Day) reserve(rooms int) {
	d.availableRooms -= rooms
	d.dirty = true
}

func (d *Day) release(rooms int) {
	d.availableRooms = min(d.availableRooms+rooms, d.maxRooms)
	d.dirty = true
}
