package response

import (
	"time"

	"hotel-booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type GroupRequestResponse struct {
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

type GroupRequestListResponse struct {
	Items      []*GroupRequestResponse `json:"items"`
	NextCursor string                  `json:"next_cursor,omitempty"`
}

type AdditionalServicesResponse struct {
	MeetingRoomCents       int64 `json:"meeting_room_cents"`
	CateringPerPersonCents int64 `json:"catering_per_person_cents"`
	DecorationsCents       int64 `json:"decorations_cents"`
	TransportationCents    int64 `json:"transportation_cents"`
	TotalCents             int64 `json:"total_cents"`
}

type GroupQuoteResponse struct {
	HotelID             uuid.UUID                  `json:"hotel_id"`
	GroupSize           int                        `json:"group_size"`
	Category            string                     `json:"category"`
	Nights              int                        `json:"nights"`
	RoomsRequired       int                        `json:"rooms_required"`
	PricePerNightCents  int64                      `json:"price_per_night_cents"`
	BasePriceCents      int64                      `json:"base_price_cents"`
	DiscountPercent     int64                      `json:"discount_percent"`
	DiscountAmountCents int64                      `json:"discount_amount_cents"`
	RoomsTotalCents     int64                      `json:"rooms_total_cents"`
	Services            AdditionalServicesResponse `json:"additional_services"`
	GrandTotalCents     int64                      `json:"grand_total_cents"`
	ValidUntil          time.Time                  `json:"valid_until"`
}

func FromGroupRequestView(v *queries.GroupRequestView) *GroupRequestResponse {
	var res GroupRequestResponse
	copyView(&res, v)
	return &res
}

func FromGroupRequestViews(views []*queries.GroupRequestView, next *queries.Cursor) *GroupRequestListResponse {
	res := &GroupRequestListResponse{Items: make([]*GroupRequestResponse, len(views))}
	for i, v := range views {
		res.Items[i] = FromGroupRequestView(v)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

func FromGroupQuoteView(v *queries.GroupQuoteView) *GroupQuoteResponse {
	var res GroupQuoteResponse
	copyView(&res, v)
	return &res
}
