package response

import (
	"time"

	"hotel-booking-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
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

type BookingListResponse struct {
	Items      []*BookingResponse `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

type SnapshotResponse struct {
	CheckIn    string `json:"check_in_date,omitempty"`
	CheckOut   string `json:"check_out_date,omitempty"`
	Guests     int    `json:"guests,omitempty"`
	Rooms      int    `json:"rooms,omitempty"`
	TotalCents int64  `json:"total_amount_cents"`
}

type ModificationResponse struct {
	ID        uuid.UUID        `json:"id"`
	BookingID uuid.UUID        `json:"booking_id"`
	Type      string           `json:"modification_type"`
	Old       SnapshotResponse `json:"old_data"`
	New       SnapshotResponse `json:"new_data"`
	Reason    *string          `json:"reason,omitempty"`
	Status    string           `json:"status"`
	ActorID   uuid.UUID        `json:"actor_id"`
	CreatedAt time.Time        `json:"created_at"`
}

type ModifyBookingResponse struct {
	Booking      *BookingResponse      `json:"booking"`
	Modification *ModificationResponse `json:"modification"`
}

type StatusChangeResponse struct {
	From    *string   `json:"previous_status,omitempty"`
	To      string    `json:"new_status"`
	Reason  *string   `json:"reason,omitempty"`
	ActorID uuid.UUID `json:"actor_id"`
	At      time.Time `json:"created_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var res BookingResponse
	copyView(&res, v)
	return &res
}

func FromBookingViews(views []*queries.BookingView, next *queries.Cursor) *BookingListResponse {
	res := &BookingListResponse{Items: make([]*BookingResponse, len(views))}
	for i, v := range views {
		res.Items[i] = FromBookingView(v)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

func FromModificationViews(views []*queries.ModificationView) []*ModificationResponse {
	res := make([]*ModificationResponse, 0, len(views))
	copyView(&res, views)
	return res
}

func FromModifyResult(b *queries.BookingView, m *queries.ModificationView) *ModifyBookingResponse {
	var mod ModificationResponse
	copyView(&mod, m)
	return &ModifyBookingResponse{
		Booking:      FromBookingView(b),
		Modification: &mod,
	}
}

func FromStatusChangeViews(views []*queries.StatusChangeView) []*StatusChangeResponse {
	res := make([]*StatusChangeResponse, 0, len(views))
	copyView(&res, views)
	return res
}

// copyView maps a view onto its response twin. Both sides share field names,
// so a copy error means the two structs drifted apart.
func copyView(to, from any) {
	if err := copier.CopyWithOption(to, from, copier.Option{DeepCopy: true}); err != nil {
		panic(err)
	}
}
