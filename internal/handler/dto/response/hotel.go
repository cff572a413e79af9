package response

import (
	"hotel-booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	HotelID    uuid.UUID `json:"hotel_id"`
	CheckIn    string    `json:"check_in_date"`
	CheckOut   string    `json:"check_out_date"`
	Rooms      int       `json:"rooms"`
	Nights     int       `json:"nights"`
	Available  bool      `json:"available"`
	TotalCents int64     `json:"total_price_cents"`
}

type CalendarDayResponse struct {
	Date              string  `json:"date"`
	MaxRooms          int     `json:"max_rooms"`
	AvailableRooms    int     `json:"available_rooms"`
	BasePriceCents    *int64  `json:"base_price_cents,omitempty"`
	SurgeMultiplier   float64 `json:"surge_multiplier"`
	NightlyPriceCents int64   `json:"nightly_price_cents"`
	IsAvailable       bool    `json:"is_available"`
}

type NightlyPriceResponse struct {
	HotelID         uuid.UUID `json:"hotel_id"`
	Date            string    `json:"date"`
	BasePriceCents  int64     `json:"base_price_cents"`
	SurgeMultiplier float64   `json:"surge_multiplier"`
	PriceCents      int64     `json:"price_cents"`
}

type NightPriceResponse struct {
	Date       string `json:"date"`
	PriceCents int64  `json:"price_cents"`
}

type TotalPriceResponse struct {
	HotelID    uuid.UUID            `json:"hotel_id"`
	CheckIn    string               `json:"check_in_date"`
	CheckOut   string               `json:"check_out_date"`
	Rooms      int                  `json:"rooms"`
	Mode       string               `json:"pricing_mode"`
	Nights     []NightPriceResponse `json:"nights"`
	TotalCents int64                `json:"total_price_cents"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	var res AvailabilityResponse
	copyView(&res, v)
	return &res
}

func FromCalendarDayView(v *queries.CalendarDayView) *CalendarDayResponse {
	var res CalendarDayResponse
	copyView(&res, v)
	return &res
}

func FromCalendarDayViews(views []*queries.CalendarDayView) []*CalendarDayResponse {
	res := make([]*CalendarDayResponse, len(views))
	for i, v := range views {
		res[i] = FromCalendarDayView(v)
	}
	return res
}

func FromNightlyPriceView(v *queries.NightlyPriceView) *NightlyPriceResponse {
	var res NightlyPriceResponse
	copyView(&res, v)
	return &res
}

func FromTotalPriceView(v *queries.TotalPriceView) *TotalPriceResponse {
	var res TotalPriceResponse
	copyView(&res, v)
	return &res
}
