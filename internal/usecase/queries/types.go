package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookingView represents read-optimized booking data
type BookingView struct {
	ID               uuid.UUID `json:"id"`
	Reference        string    `json:"booking_reference"`
	HotelID          uuid.UUID `json:"hotel_id"`
	UserID           uuid.UUID `json:"user_id"`
	CheckIn          string    `json:"check_in_date"`
	CheckOut         string    `json:"check_out_date"`
	Nights           int       `json:"nights"`
	Guests           int       `json:"guests"`
	Rooms            int       `json:"rooms"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	Status           string    `json:"booking_status"`
	PaymentStatus    string    `json:"payment_status"`
	GuestName        string    `json:"guest_name"`
	GuestEmail       string    `json:"guest_email"`
	GuestPhone       *string   `json:"guest_phone,omitempty"`
	SpecialRequests  *string   `json:"special_requests,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type StatusChangeView struct {
	From    *string   `json:"previous_status,omitempty"`
	To      string    `json:"new_status"`
	Reason  *string   `json:"reason,omitempty"`
	ActorID uuid.UUID `json:"actor_id"`
	At      time.Time `json:"created_at"`
}

type SnapshotView struct {
	CheckIn    string `json:"check_in_date,omitempty"`
	CheckOut   string `json:"check_out_date,omitempty"`
	Guests     int    `json:"guests,omitempty"`
	Rooms      int    `json:"rooms,omitempty"`
	TotalCents int64  `json:"total_amount_cents"`
}

type ModificationView struct {
	ID        uuid.UUID    `json:"id"`
	BookingID uuid.UUID    `json:"booking_id"`
	Type      string       `json:"modification_type"`
	Old       SnapshotView `json:"old_data"`
	New       SnapshotView `json:"new_data"`
	Reason    *string      `json:"reason,omitempty"`
	Status    string       `json:"status"`
	ActorID   uuid.UUID    `json:"actor_id"`
	CreatedAt time.Time    `json:"created_at"`
}

type RefundView struct {
	ID                  uuid.UUID  `json:"id"`
	BookingID           uuid.UUID  `json:"booking_id"`
	UserID              uuid.UUID  `json:"user_id"`
	AmountCents         int64      `json:"amount_cents"`
	Reason              string     `json:"reason"`
	Status              string     `json:"status"`
	RequestReference    string     `json:"request_reference"`
	SettlementReference *string    `json:"settlement_reference,omitempty"`
	RequestedAt         time.Time  `json:"requested_at"`
	ProcessedAt         *time.Time `json:"processed_at,omitempty"`
}

type GroupRequestView struct {
	ID                   uuid.UUID `json:"id"`
	HotelID              uuid.UUID `json:"hotel_id"`
	OrganizerID          uuid.UUID `json:"organizer_id"`
	Name                 string    `json:"group_name"`
	Size                 int       `json:"group_size"`
	Category             string    `json:"category"`
	CheckIn              string    `json:"check_in_date"`
	CheckOut             string    `json:"check_out_date"`
	RoomsRequired        int       `json:"rooms_required"`
	SpecialRequirements  *string   `json:"special_requirements,omitempty"`
	EstimatedBudgetCents *int64    `json:"estimated_budget_cents,omitempty"`
	Status               string    `json:"status"`
	AdminNotes           *string   `json:"admin_notes,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type AvailabilityView struct {
	HotelID    uuid.UUID `json:"hotel_id"`
	CheckIn    string    `json:"check_in_date"`
	CheckOut   string    `json:"check_out_date"`
	Rooms      int       `json:"rooms"`
	Nights     int       `json:"nights"`
	Available  bool      `json:"available"`
	TotalCents int64     `json:"total_price_cents"`
}

type CalendarDayView struct {
	Date              string  `json:"date"`
	MaxRooms          int     `json:"max_rooms"`
	AvailableRooms    int     `json:"available_rooms"`
	BasePriceCents    *int64  `json:"base_price_cents,omitempty"`
	SurgeMultiplier   float64 `json:"surge_multiplier"`
	NightlyPriceCents int64   `json:"nightly_price_cents"`
	IsAvailable       bool    `json:"is_available"`
}

type NightlyPriceView struct {
	HotelID         uuid.UUID `json:"hotel_id"`
	Date            string    `json:"date"`
	BasePriceCents  int64     `json:"base_price_cents"`
	SurgeMultiplier float64   `json:"surge_multiplier"`
	PriceCents      int64     `json:"price_cents"`
}

type NightPriceView struct {
	Date       string `json:"date"`
	PriceCents int64  `json:"price_cents"`
}

type TotalPriceView struct {
	HotelID    uuid.UUID        `json:"hotel_id"`
	CheckIn    string           `json:"check_in_date"`
	CheckOut   string           `json:"check_out_date"`
	Rooms      int              `json:"rooms"`
	Mode       string           `json:"pricing_mode"`
	Nights     []NightPriceView `json:"nights"`
	TotalCents int64            `json:"total_price_cents"`
}

type AdditionalServicesView struct {
	MeetingRoomCents       int64 `json:"meeting_room_cents"`
	CateringPerPersonCents int64 `json:"catering_per_person_cents"`
	DecorationsCents       int64 `json:"decorations_cents"`
	TransportationCents    int64 `json:"transportation_cents"`
	TotalCents             int64 `json:"total_cents"`
}

type GroupQuoteView struct {
	HotelID             uuid.UUID              `json:"hotel_id"`
	GroupSize           int                    `json:"group_size"`
	Category            string                 `json:"category"`
	Nights              int                    `json:"nights"`
	RoomsRequired       int                    `json:"rooms_required"`
	PricePerNightCents  int64                  `json:"price_per_night_cents"`
	BasePriceCents      int64                  `json:"base_price_cents"`
	DiscountPercent     int64                  `json:"discount_percent"`
	DiscountAmountCents int64                  `json:"discount_amount_cents"`
	RoomsTotalCents     int64                  `json:"rooms_total_cents"`
	Services            AdditionalServicesView `json:"additional_services"`
	GrandTotalCents     int64                  `json:"grand_total_cents"`
	ValidUntil          time.Time              `json:"valid_until"`
}
