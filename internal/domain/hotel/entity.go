package hotel

import (
	"errors"

	"hotel-booking-core/internal/domain/money"

	"github.com/google/uuid"
)

var ErrHotelInactive = errors.New("hotel is not accepting bookings")

// Hotel is the read-only view of a property that inventory and pricing need.
type Hotel struct {
	id            uuid.UUID
	name          string
	pricePerNight money.Money
	active        bool
}

func Reconstruct(id uuid.UUID, name string, pricePerNight money.Money, active bool) *Hotel {
	return &Hotel{
		id:            id,
		name:          name,
		pricePerNight: pricePerNight,
		active:        active,
	}
}

func (h *Hotel) EnsureBookable() error {
	if !h.active {
		return ErrHotelInactive
	}
	return nil
}

func (h *Hotel) ID() uuid.UUID              { return h.id }
func (h *Hotel) Name() string               { return h.name }
func (h *Hotel) PricePerNight() money.Money { return h.pricePerNight }
func (h *Hotel) IsActive() bool             { return h.active }
