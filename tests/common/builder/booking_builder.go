//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/stay"
	reqdto "hotel-booking-core/internal/handler/dto/request"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

var BaseTime = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// StubReferences returns fixed references so assertions stay stable.
type StubReferences struct{}

func (StubReferences) BookingReference(time.Time) string    { return "BK-250601-TESTREF0" }
func (StubReferences) RequestReference(time.Time) string    { return "REF-250601-TESTREF0" }
func (StubReferences) SettlementReference(time.Time) string { return "RFD-250601-TESTREF0" }

func BookingServices(clk clock.Clock) *booking.Services {
	return &booking.Services{Clock: clk, References: StubReferences{}}
}

type BookingBuilder struct {
	HotelID         uuid.UUID
	UserID          uuid.UUID
	CheckIn         string
	CheckOut        string
	Guests          int
	Rooms           int
	TotalCents      int64
	GuestName       string
	GuestEmail      string
	GuestPhone      *string
	SpecialRequests *string
	Clock           clock.Clock
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		HotelID:    uuid.New(),
		UserID:     uuid.New(),
		CheckIn:    "2025-07-01",
		CheckOut:   "2025-07-04",
		Guests:     2,
		Rooms:      1,
		TotalCents: 45000,
		GuestName:  "Ada Lovelace",
		GuestEmail: "ada@example.com",
		Clock:      clock.NewMockClock(BaseTime),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) Stay() stay.Range {
	r, err := stay.ParseRange(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	return r
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	bk, _, err := b.BuildDomainWithHistory()
	return bk, err
}

func (b *BookingBuilder) BuildDomainWithHistory() (*booking.Booking, booking.StatusChange, error) {
	r, err := stay.ParseRange(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, booking.StatusChange{}, err
	}
	guest, err := booking.NewGuestInfo(b.GuestName, b.GuestEmail, b.GuestPhone, b.SpecialRequests)
	if err != nil {
		return nil, booking.StatusChange{}, err
	}
	return booking.NewBooking(BookingServices(b.Clock), booking.Draft{
		HotelID: b.HotelID,
		UserID:  b.UserID,
		Stay:    r,
		Guests:  b.Guests,
		Rooms:   b.Rooms,
		Total:   money.FromCents(b.TotalCents),
		Guest:   guest,
	})
}

// BuildStored returns a booking as if loaded from storage in the given state.
func (b *BookingBuilder) BuildStored(status booking.Status, payment booking.PaymentStatus) *booking.Booking {
	now := b.Clock.Now()
	return booking.Reconstruct(
		uuid.New(),
		StubReferences{}.BookingReference(now),
		b.HotelID,
		b.UserID,
		b.Stay(),
		b.Guests,
		b.Rooms,
		money.FromCents(b.TotalCents),
		status,
		payment,
		booking.ReconstructGuestInfo(b.GuestName, b.GuestEmail, b.GuestPhone, b.SpecialRequests),
		now,
		now,
	)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		HotelID:         b.HotelID,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Guests:          b.Guests,
		Rooms:           b.Rooms,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildView(status booking.Status, payment booking.PaymentStatus) *queries.BookingView {
	now := b.Clock.Now()
	return &queries.BookingView{
		ID:               uuid.New(),
		Reference:        StubReferences{}.BookingReference(now),
		HotelID:          b.HotelID,
		UserID:           b.UserID,
		CheckIn:          b.CheckIn,
		CheckOut:         b.CheckOut,
		Nights:           b.Stay().Nights(),
		Guests:           b.Guests,
		Rooms:            b.Rooms,
		TotalAmountCents: b.TotalCents,
		Status:           string(status),
		PaymentStatus:    string(payment),
		GuestName:        b.GuestName,
		GuestEmail:       b.GuestEmail,
		GuestPhone:       b.GuestPhone,
		SpecialRequests:  b.SpecialRequests,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithHotelID(id uuid.UUID) *BookingBuilder {
	b.HotelID = id
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut string) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithGuests(n int) *BookingBuilder {
	b.Guests = n
	return b
}

func (b *BookingBuilder) WithRooms(n int) *BookingBuilder {
	b.Rooms = n
	return b
}

func (b *BookingBuilder) WithTotalCents(c int64) *BookingBuilder {
	b.TotalCents = c
	return b
}

func (b *BookingBuilder) WithGuestName(name string) *BookingBuilder {
	b.GuestName = name
	return b
}

func (b *BookingBuilder) WithGuestEmail(email string) *BookingBuilder {
	b.GuestEmail = email
	return b
}

func (b *BookingBuilder) WithSpecialRequests(s string) *BookingBuilder {
	b.SpecialRequests = &s
	return b
}
