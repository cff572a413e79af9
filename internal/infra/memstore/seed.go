package memstore

import (
	"encoding/json"
	"io"
	"os"

	"hotel-booking-core/internal/domain/hotel"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/pkg/errs"

	"github.com/google/uuid"
)

// Seed is the JSON document accepted by LoadSeed.
type Seed struct {
	Hotels       []SeedHotel `json:"hotels"`
	Availability []SeedDay   `json:"availability"`
}

type SeedHotel struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	IsActive           bool      `json:"is_active"`
}

type SeedDay struct {
	HotelID         uuid.UUID `json:"hotel_id"`
	Date            string    `json:"date"`
	MaxRooms        int       `json:"max_rooms"`
	AvailableRooms  *int      `json:"available_rooms,omitempty"`
	BasePriceCents  *int64    `json:"base_price_cents,omitempty"`
	SurgeMultiplier *float64  `json:"surge_multiplier,omitempty"`
}

func LoadSeedFile(s *Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errs.Wrapf(err, "open seed file %s", path)
	}
	defer f.Close()
	return LoadSeed(s, f)
}

func LoadSeed(s *Store, r io.Reader) error {
	var seed Seed
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return errs.Wrap(err, "decode seed")
	}
	return s.Apply(seed)
}

// Apply loads hotels first so availability rows can reference them.
func (s *Store) Apply(seed Seed) error {
	for _, h := range seed.Hotels {
		price, err := money.New(h.PricePerNightCents)
		if err != nil {
			return errs.Wrapf(err, "hotel %s", h.ID)
		}
		s.AddHotel(hotel.Reconstruct(h.ID, h.Name, price, h.IsActive))
	}

	for _, d := range seed.Availability {
		day, err := seedDay(d)
		if err != nil {
			return errs.Wrapf(err, "availability %s/%s", d.HotelID, d.Date)
		}
		s.PutDay(day)
	}
	return nil
}

func seedDay(d SeedDay) (*inventory.Day, error) {
	date, err := stay.ParseDate(d.Date)
	if err != nil {
		return nil, err
	}
	if d.MaxRooms < 0 {
		return nil, inventory.ErrInvalidCapacity
	}
	available := d.MaxRooms
	if d.AvailableRooms != nil {
		available = *d.AvailableRooms
	}
	if available < 0 || available > d.MaxRooms {
		return nil, inventory.ErrInvalidCapacity
	}

	surge := inventory.DefaultSurge
	if d.SurgeMultiplier != nil {
		if surge, err = inventory.SurgeFromFloat(*d.SurgeMultiplier); err != nil {
			return nil, err
		}
	}

	var basePrice *money.Money
	if d.BasePriceCents != nil {
		m, err := money.New(*d.BasePriceCents)
		if err != nil {
			return nil, err
		}
		basePrice = &m
	}
	return inventory.ReconstructDay(d.HotelID, date, d.MaxRooms, available, basePrice, surge), nil
}
