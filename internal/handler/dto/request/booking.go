package request

import (
	"strings"

	"hotel-booking-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	HotelID         uuid.UUID `json:"hotel_id" binding:"required"`
	CheckIn         string    `json:"check_in_date" binding:"required,date"`
	CheckOut        string    `json:"check_out_date" binding:"required,date"`
	Guests          int       `json:"guests" binding:"required,min=1"`
	Rooms           int       `json:"rooms" binding:"required,min=1"`
	GuestName       string    `json:"guest_name" binding:"required,max=200"`
	GuestEmail      string    `json:"guest_email" binding:"required,email"`
	GuestPhone      *string   `json:"guest_phone,omitempty" binding:"omitempty,max=32"`
	SpecialRequests *string   `json:"special_requests,omitempty" binding:"omitempty,max=2000"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		HotelID:         r.HotelID,
		CheckIn:         r.CheckIn,
		CheckOut:        r.CheckOut,
		Guests:          r.Guests,
		Rooms:           r.Rooms,
		GuestName:       strings.TrimSpace(r.GuestName),
		GuestEmail:      strings.TrimSpace(r.GuestEmail),
		GuestPhone:      trimmed(r.GuestPhone),
		SpecialRequests: trimmed(r.SpecialRequests),
	}
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// ModifyBookingRequest carries only the fields its type needs: dates for
// date_change, guests for guest_count, rooms for room_count.
type ModifyBookingRequest struct {
	Type     string  `json:"modification_type" binding:"required,modification_type"`
	CheckIn  *string `json:"check_in_date,omitempty" binding:"omitempty,date"`
	CheckOut *string `json:"check_out_date,omitempty" binding:"omitempty,date"`
	Guests   *int    `json:"guests,omitempty" binding:"omitempty,min=1"`
	Rooms    *int    `json:"rooms,omitempty" binding:"omitempty,min=1"`
	Reason   string  `json:"reason" binding:"max=500"`
}

func (r ModifyBookingRequest) ToInput() commands.ModifyBookingInput {
	return commands.ModifyBookingInput{
		Type:     r.Type,
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
		Guests:   r.Guests,
		Rooms:    r.Rooms,
		Reason:   strings.TrimSpace(r.Reason),
	}
}

type PaymentOutcomeRequest struct {
	Outcome string `json:"outcome" binding:"required,payment_outcome"`
}

type ListBookingsQuery struct {
	After  string     `form:"after"`
	Limit  int        `form:"limit" binding:"omitempty,min=1,max=200"`
	UserID *uuid.UUID `form:"user_id"`
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
