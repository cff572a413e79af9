package group

import (
	"time"

	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/stay"
)

// Quotes stay valid for a week.
const QuoteValidity = 7 * 24 * time.Hour

// Service schedule, in whole currency units of the hotel's price.
var (
	MeetingRoomPerNight  = money.FromMajor(5000)
	CateringWedding      = money.FromMajor(2000)
	CateringStandard     = money.FromMajor(1000)
	WeddingDecorations   = money.FromMajor(15000)
	GroupTransportation  = money.FromMajor(8000)
	transportationMinPax = 20
)

type discountTier struct {
	minSize int
	percent int64
}

// Checked top down; first match wins.
var discountTiers = []discountTier{
	{minSize: 50, percent: 20},
	{minSize: 20, percent: 15},
	{minSize: 10, percent: 10},
}

const businessBonusPercent = 5

type AdditionalServices struct {
	MeetingRoom       money.Money
	CateringPerPerson money.Money
	Decorations       money.Money
	Transportation    money.Money
}

func (s AdditionalServices) Total() money.Money {
	return s.MeetingRoom.Add(s.CateringPerPerson).Add(s.Decorations).Add(s.Transportation)
}

type Quote struct {
	GroupSize       int
	Category        Category
	Nights          int
	RoomsRequired   int
	PricePerNight   money.Money
	BasePrice       money.Money
	DiscountPercent int64
	DiscountAmount  money.Money
	RoomsTotal      money.Money
	Services        AdditionalServices
	ServicesTotal   money.Money
	GrandTotal      money.Money
	ValidUntil      time.Time
}

func DiscountPercent(size int, category Category) int64 {
	var pct int64
	for _, tier := range discountTiers {
		if size >= tier.minSize {
			pct = tier.percent
			break
		}
	}
	if category.IsBusiness() {
		pct += businessBonusPercent
	}
	return pct
}

// NewQuote prices a group stay. It is pure: no inventory is read or held.
// Catering is a flat line item, not multiplied by head count.
func NewQuote(pricePerNight money.Money, size int, category Category, r stay.Range, roomsRequired int, now time.Time) (Quote, error) {
	if size < 1 {
		return Quote{}, ErrInvalidGroupSize
	}
	if !category.IsValid() {
		return Quote{}, ErrInvalidCategory
	}
	if r.IsZero() {
		return Quote{}, stay.ErrInvalidDateRange
	}
	if roomsRequired < 1 {
		return Quote{}, ErrInvalidRooms
	}

	nights := int64(r.Nights())
	base := pricePerNight.Mul(nights * int64(roomsRequired))
	pct := DiscountPercent(size, category)
	discount := base.Percent(pct)
	roomsTotal := base.Sub(discount)

	var services AdditionalServices
	if category.IsBusiness() {
		services.MeetingRoom = MeetingRoomPerNight.Mul(nights)
	}
	if category == CategoryWedding {
		services.CateringPerPerson = CateringWedding
		services.Decorations = WeddingDecorations
	} else {
		services.CateringPerPerson = CateringStandard
	}
	if size > transportationMinPax {
		services.Transportation = GroupTransportation
	}
	servicesTotal := services.Total()

	return Quote{
		GroupSize:       size,
		Category:        category,
		Nights:          int(nights),
		RoomsRequired:   roomsRequired,
		PricePerNight:   pricePerNight,
		BasePrice:       base,
		DiscountPercent: pct,
		DiscountAmount:  discount,
		RoomsTotal:      roomsTotal,
		Services:        services,
		ServicesTotal:   servicesTotal,
		GrandTotal:      roomsTotal.Add(servicesTotal),
		ValidUntil:      now.Add(QuoteValidity),
	}, nil
}
