package booking

import (
	"errors"
	"time"

	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition        = errors.New("booking status transition not allowed")
	ErrInvalidPaymentTransition = errors.New("payment status transition not allowed")
	ErrInvalidPaymentOutcome    = errors.New("payment outcome must be paid or failed")
	ErrInvalidGuests            = errors.New("guest count must be at least 1")
	ErrInvalidRooms             = errors.New("room count must be at least 1")
	ErrInvalidGuestName         = errors.New("guest name is required")
	ErrInvalidGuestEmail        = errors.New("guest email is invalid")
	ErrSpecialRequestsTooLong   = errors.New("special requests too long")
	ErrInvalidModification      = errors.New("modification does not match its type")
	ErrNoChange                 = errors.New("modification does not change the booking")
	ErrNegativeTotal            = errors.New("booking total cannot be negative")
)

type ReferenceGenerator interface {
	BookingReference(now time.Time) string
}

type Services struct {
	Clock      clock.Clock
	References ReferenceGenerator
}

type Draft struct {
	HotelID uuid.UUID
	UserID  uuid.UUID
	Stay    stay.Range
	Guests  int
	Rooms   int
	Total   money.Money
	Guest   GuestInfo
}

type Booking struct {
	id            uuid.UUID
	reference     string
	hotelID       uuid.UUID
	userID        uuid.UUID
	stay          stay.Range
	guests        int
	rooms         int
	total         money.Money
	status        Status
	paymentStatus PaymentStatus
	guest         GuestInfo
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBooking creates a pending booking and the first history entry for it.
// Availability and pricing are the caller's job; the total is taken as given.
func NewBooking(services *Services, d Draft) (*Booking, StatusChange, error) {
	if d.Guests < 1 {
		return nil, StatusChange{}, ErrInvalidGuests
	}
	if d.Rooms < 1 {
		return nil, StatusChange{}, ErrInvalidRooms
	}
	if d.Stay.IsZero() {
		return nil, StatusChange{}, stay.ErrInvalidDateRange
	}
	if d.Total.Cents() < 0 {
		return nil, StatusChange{}, ErrNegativeTotal
	}

	now := services.Clock.Now()
	b := &Booking{
		id:            uuid.New(),
		reference:     services.References.BookingReference(now),
		hotelID:       d.HotelID,
		userID:        d.UserID,
		stay:          d.Stay,
		guests:        d.Guests,
		rooms:         d.Rooms,
		total:         d.Total,
		status:        StatusPending,
		paymentStatus: PaymentPending,
		guest:         d.Guest,
		createdAt:     now,
		updatedAt:     now,
	}
	change := StatusChange{
		BookingID: b.id,
		To:        StatusPending,
		ActorID:   d.UserID,
		At:        now,
	}
	return b, change, nil
}

func Reconstruct(
	id uuid.UUID,
	reference string,
	hotelID, userID uuid.UUID,
	stayRange stay.Range,
	guests, rooms int,
	total money.Money,
	status Status,
	paymentStatus PaymentStatus,
	guest GuestInfo,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		reference:     reference,
		hotelID:       hotelID,
		userID:        userID,
		stay:          stayRange,
		guests:        guests,
		rooms:         rooms,
		total:         total,
		status:        status,
		paymentStatus: paymentStatus,
		guest:         guest,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) Reference() string            { return b.reference }
func (b *Booking) HotelID() uuid.UUID           { return b.hotelID }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) Stay() stay.Range             { return b.stay }
func (b *Booking) Guests() int                  { return b.guests }
func (b *Booking) Rooms() int                   { return b.rooms }
func (b *Booking) Total() money.Money           { return b.total }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Guest() GuestInfo             { return b.guest }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

// HoldsInventory reports whether the booking's rooms are counted against the ledger.
func (b *Booking) HoldsInventory() bool {
	return b.status == StatusPending || b.status == StatusConfirmed
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

// Cancel moves the booking to cancelled. The caller releases inventory in the same unit of work.
func (b *Booking) Cancel(services *Services, actorID uuid.UUID, reason string) (StatusChange, error) {
	return b.transition(services.Clock.Now(), StatusCancelled, actorID, reason)
}

func (b *Booking) Complete(services *Services, actorID uuid.UUID) (StatusChange, error) {
	return b.transition(services.Clock.Now(), StatusCompleted, actorID, "stay completed")
}

func (b *Booking) transition(now time.Time, next Status, actorID uuid.UUID, reason string) (StatusChange, error) {
	if !b.status.CanTransitionTo(next) {
		return StatusChange{}, ErrInvalidTransition
	}
	change := StatusChange{
		BookingID: b.id,
		From:      b.status,
		To:        next,
		Reason:    reason,
		ActorID:   actorID,
		At:        now,
	}
	b.status = next
	b.updatedAt = now
	return change, nil
}

type PaymentResult struct {
	// Changed is false when the outcome was already applied.
	Changed      bool
	StatusChange *StatusChange
}

// ApplyPaymentOutcome records the collaborator's verdict. A paid outcome confirms a pending booking;
// a failed one leaves the booking status alone so the guest can retry.
func (b *Booking) ApplyPaymentOutcome(services *Services, outcome PaymentOutcome, actorID uuid.UUID) (PaymentResult, error) {
	next := outcome.paymentStatus()
	if b.paymentStatus == next {
		return PaymentResult{}, nil
	}
	if !b.paymentStatus.CanTransitionTo(next) {
		return PaymentResult{}, ErrInvalidPaymentTransition
	}

	now := services.Clock.Now()
	b.paymentStatus = next
	b.updatedAt = now

	result := PaymentResult{Changed: true}
	if outcome == OutcomePaid && b.status == StatusPending {
		change, err := b.transition(now, StatusConfirmed, actorID, "payment received")
		if err != nil {
			return PaymentResult{}, err
		}
		result.StatusChange = &change
	}
	return result, nil
}

// MarkRefunded is the explicit follow-up after a refund has been approved and settled.
func (b *Booking) MarkRefunded(services *Services) error {
	if !b.paymentStatus.CanTransitionTo(PaymentRefunded) {
		return ErrInvalidPaymentTransition
	}
	b.paymentStatus = PaymentRefunded
	b.updatedAt = services.Clock.Now()
	return nil
}

type Change struct {
	Type   ModificationType
	Stay   *stay.Range
	Guests *int
	Rooms  *int
}

// Target is the validated end state of a modification.
type Target struct {
	Type   ModificationType
	Stay   stay.Range
	Guests int
	Rooms  int
}

// PlanModification validates c against the current booking and returns the end state.
func (b *Booking) PlanModification(c Change) (Target, error) {
	if !b.HoldsInventory() {
		return Target{}, ErrInvalidTransition
	}
	t := Target{Type: c.Type, Stay: b.stay, Guests: b.guests, Rooms: b.rooms}
	switch c.Type {
	case ModificationDateChange:
		if c.Stay == nil {
			return Target{}, ErrInvalidModification
		}
		if c.Stay.Equal(b.stay) {
			return Target{}, ErrNoChange
		}
		t.Stay = *c.Stay
	case ModificationGuestCount:
		if c.Guests == nil {
			return Target{}, ErrInvalidModification
		}
		if *c.Guests < 1 {
			return Target{}, ErrInvalidGuests
		}
		if *c.Guests == b.guests {
			return Target{}, ErrNoChange
		}
		t.Guests = *c.Guests
	case ModificationRoomCount:
		if c.Rooms == nil {
			return Target{}, ErrInvalidModification
		}
		if *c.Rooms < 1 {
			return Target{}, ErrInvalidRooms
		}
		if *c.Rooms == b.rooms {
			return Target{}, ErrNoChange
		}
		t.Rooms = *c.Rooms
	default:
		return Target{}, ErrInvalidModification
	}
	return t, nil
}

// Modify applies a planned target. Inventory must already have been moved by the caller.
func (b *Booking) Modify(services *Services, t Target, newTotal money.Money, reason string, actorID uuid.UUID) (Modification, error) {
	if !b.HoldsInventory() {
		return Modification{}, ErrInvalidTransition
	}
	if newTotal.Cents() < 0 {
		return Modification{}, ErrNegativeTotal
	}

	now := services.Clock.Now()
	oldSnap := b.snapshot(t.Type)

	b.stay = t.Stay
	b.guests = t.Guests
	b.rooms = t.Rooms
	b.total = newTotal
	b.updatedAt = now

	m := Modification{
		ID:        uuid.New(),
		BookingID: b.id,
		Type:      t.Type,
		Old:       oldSnap,
		New:       b.snapshot(t.Type),
		Status:    ModificationStatusApproved,
		ActorID:   actorID,
		CreatedAt: now,
	}
	if reason != "" {
		m.Reason = &reason
	}
	return m, nil
}

func (b *Booking) snapshot(t ModificationType) Snapshot {
	s := Snapshot{TotalCents: b.total.Cents()}
	switch t {
	case ModificationDateChange:
		s.CheckIn = stay.FormatDate(b.stay.CheckIn())
		s.CheckOut = stay.FormatDate(b.stay.CheckOut())
	case ModificationGuestCount:
		s.Guests = b.guests
	case ModificationRoomCount:
		s.Rooms = b.rooms
	}
	return s
}
