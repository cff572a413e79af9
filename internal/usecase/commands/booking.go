package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/pricing"
	"hotel-booking-core/internal/domain/refund"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/queries"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

const createBookingEndpoint = "POST /api/bookings"

var (
	ErrIdempotencyKeyMissing   = errs.New("Idempotency-Key header is required")
	ErrIdempotencyKeyMismatch  = errs.New("idempotency key was used with a different request")
	ErrIdempotencyKeyPending   = errs.New("a request with this idempotency key is still being processed")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrHotelNotFound           = errs.New("hotel not found")
	ErrStaffOnly               = errs.New("operation requires staff role")
	ErrReplayedBookingNotFound = errs.New("completed idempotency key has no booking")
)

type CreateBookingInput struct {
	HotelID         uuid.UUID `json:"hotel_id"`
	CheckIn         string    `json:"check_in_date"`
	CheckOut        string    `json:"check_out_date"`
	Guests          int       `json:"guests"`
	Rooms           int       `json:"rooms"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	GuestPhone      *string   `json:"guest_phone,omitempty"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
}

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type ModifyBookingInput struct {
	Type     string
	CheckIn  *string
	CheckOut *string
	Guests   *int
	Rooms    *int
	Reason   string
}

type ModifyBookingResult struct {
	Booking      *queries.BookingView
	Modification *queries.ModificationView
}

type BookingConfig struct {
	RepriceOnModify bool
	IdempotencyTTL  time.Duration
}

type BookingCommands interface {
	Create(ctx context.Context, actor shared.Actor, in CreateBookingInput, idempotencyKey string) (*CreateBookingResult, error)
	Cancel(ctx context.Context, actor shared.Actor, bookingID uuid.UUID, reason string) (*queries.BookingView, error)
	Modify(ctx context.Context, actor shared.Actor, bookingID uuid.UUID, in ModifyBookingInput) (*ModifyBookingResult, error)
	ApplyPaymentOutcome(ctx context.Context, actor shared.Actor, bookingID uuid.UUID, outcome string) (*queries.BookingView, error)
	Complete(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) (*queries.BookingView, error)
	MarkRefunded(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow        shared.UnitOfWork
	bookings   queries.BookingReadStore
	calculator pricing.Calculator
	services   *booking.Services
	clock      clock.Clock
	cfg        BookingConfig
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	bookings queries.BookingReadStore,
	calculator pricing.Calculator,
	refs booking.ReferenceGenerator,
	clk clock.Clock,
	cfg BookingConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:        uow,
		bookings:   bookings,
		calculator: calculator,
		services:   &booking.Services{Clock: clk, References: refs},
		clock:      clk,
		cfg:        cfg,
	}
}

// Create reserves inventory and persists a pending booking in one transaction.
// The idempotency key row is written in the same transaction, so a concurrent duplicate
// waits for the first attempt and then replays its result.
func (c *bookingCommandsImpl) Create(ctx context.Context, actor shared.Actor, in CreateBookingInput, idempotencyKey string) (_ *CreateBookingResult, err error) {
	ctx, span := startSpan(ctx, "BookingCommands.Create",
		attribute.String("hotel.id", in.HotelID.String()),
		attribute.Int("booking.rooms", in.Rooms))
	defer endSpan(span, &err)

	if idempotencyKey == "" {
		return nil, errs.Mark(ErrIdempotencyKeyMissing, errs.ErrIdempotencyKeyRequired)
	}

	r, err := stay.ParseRange(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, shared.Classify(err)
	}
	guest, err := booking.NewGuestInfo(in.GuestName, in.GuestEmail, in.GuestPhone, in.SpecialRequests)
	if err != nil {
		return nil, shared.Classify(err)
	}
	if in.Rooms < 1 {
		return nil, shared.Classify(booking.ErrInvalidRooms)
	}

	requestHash := calculateRequestHash(in)

	var (
		created  *booking.Booking
		replayID *uuid.UUID
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, replayID = nil, nil

		replay, err := c.claimKey(ctx, tx, idempotencyKey, actor.UserID, requestHash)
		if err != nil {
			return err
		}
		if replay != nil {
			replayID = replay
			return nil
		}

		h, err := tx.Reads().HotelByID(ctx, in.HotelID)
		if err != nil {
			return hotelLookupErr(err)
		}
		w, err := tx.Inventory().LockWindow(ctx, in.HotelID, r)
		if err != nil {
			return err
		}
		if err := inventory.CheckAvailability(h, w, r, in.Rooms); err != nil {
			return err
		}
		quote, err := c.calculator.Quote(h, w, r, in.Rooms)
		if err != nil {
			return err
		}
		if err := w.Reserve(r, in.Rooms); err != nil {
			return err
		}

		b, change, err := booking.NewBooking(c.services, booking.Draft{
			HotelID: in.HotelID,
			UserID:  actor.UserID,
			Stay:    r,
			Guests:  in.Guests,
			Rooms:   in.Rooms,
			Total:   quote.Total,
			Guest:   guest,
		})
		if err != nil {
			return err
		}

		if err := tx.Inventory().SaveDays(ctx, w.Changed()); err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		if err := tx.Bookings().AppendStatusChange(ctx, change); err != nil {
			return err
		}
		if err := emit(ctx, tx, EventBookingCreated, TopicBooking, newBookingEvent(b, actor.UserID, "", change.At), change.At); err != nil {
			return err
		}
		if err := tx.Idempotency().MarkCompleted(ctx, idempotencyKey, actor.UserID, calculateIDHash(b.ID()), b.ID()); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}

	if replayID != nil {
		span.SetAttributes(attribute.Bool("idempotency.replayed", true))
		view, err := c.bookings.FindByID(ctx, *replayID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(ErrReplayedBookingNotFound, errs.ErrPersistenceFailure)
			}
			return nil, shared.Classify(err)
		}
		return &CreateBookingResult{Booking: view, IsReplayed: true}, nil
	}

	span.SetAttributes(attribute.String("booking.id", created.ID().String()))
	return &CreateBookingResult{Booking: queries.NewBookingView(created), IsReplayed: false}, nil
}

// claimKey returns the booking to replay, or nil when this request now owns the key.
func (c *bookingCommandsImpl) claimKey(ctx context.Context, tx shared.Tx, key string, userID uuid.UUID, requestHash string) (*uuid.UUID, error) {
	now := c.clock.Now()
	expiresAt := now.Add(c.cfg.IdempotencyTTL)

	inserted, err := tx.Idempotency().TryInsert(ctx, key, userID, createBookingEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, err
	}

	if existing.IsExpired(now) {
		claimed, err := tx.Idempotency().ClaimExpired(ctx, key, userID, createBookingEndpoint, requestHash, expiresAt, now)
		if err != nil {
			return nil, err
		}
		if !claimed {
			return nil, errs.Mark(ErrIdempotencyKeyPending, errs.ErrIdempotencyInProgress)
		}
		return nil, nil
	}

	if existing.RequestHash != requestHash || existing.Endpoint != createBookingEndpoint {
		return nil, errs.Mark(ErrIdempotencyKeyMismatch, errs.ErrIdempotencyKeyReused)
	}
	if existing.IsCompleted() {
		return existing.ResultBookingID, nil
	}
	return nil, errs.Mark(ErrIdempotencyKeyPending, errs.ErrIdempotencyInProgress)
}

// Cancel releases the booking's rooms back to the ledger.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, actor shared.Actor, bookingID uuid.UUID, reason string) (_ *queries.BookingView, err error) {
	ctx, span := startSpan(ctx, "BookingCommands.Cancel", attribute.String("booking.id", bookingID.String()))
	defer endSpan(span, &err)

	var view *queries.BookingView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.lockBooking(ctx, tx, actor, bookingID)
		if err != nil {
			return err
		}
		change, err := b.Cancel(c.services, actor.UserID, reason)
		if err != nil {
			return err
		}

		w, err := tx.Inventory().LockWindow(ctx, b.HotelID(), b.Stay())
		if err != nil {
			return err
		}
		if err := w.Release(b.Stay(), b.Rooms()); err != nil {
			return err
		}
		if err := tx.Inventory().SaveDays(ctx, w.Changed()); err != nil {
			return err
		}

		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		if err := tx.Bookings().AppendStatusChange(ctx, change); err != nil {
			return err
		}
		if err := emit(ctx, tx, EventBookingCancelled, TopicBooking, newBookingEvent(b, actor.UserID, reason, change.At), change.At); err != nil {
			return err
		}
		view = queries.NewBookingView(b)
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return view, nil
}

// Modify moves the reservation to the new stay or room count in one step.
// On any failure the transaction rolls back and the original reservation stays intact.
func (c *bookingCommandsImpl) Modify(ctx context.Context, actor shared.Actor, bookingID uuid.UUID, in ModifyBookingInput) (_ *ModifyBookingResult, err error) {
	ctx, span := startSpan(ctx, "BookingCommands.Modify",
		attribute.String("booking.id", bookingID.String()),
		attribute.String("modification.type", in.Type))
	defer endSpan(span, &err)

	change, err := parseChange(in)
	if err != nil {
		return nil, shared.Classify(err)
	}

	var result *ModifyBookingResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.lockBooking(ctx, tx, actor, bookingID)
		if err != nil {
			return err
		}
		target, err := b.PlanModification(change)
		if err != nil {
			return err
		}

		newTotal := b.Total()
		if target.Type.MovesInventory() {
			newTotal, err = c.moveInventory(ctx, tx, b, target)
			if err != nil {
				return err
			}
		}

		m, err := b.Modify(c.services, target, newTotal, in.Reason, actor.UserID)
		if err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		if err := tx.Bookings().AppendModification(ctx, m); err != nil {
			return err
		}
		event := modificationEvent{
			bookingEvent:     newBookingEvent(b, actor.UserID, in.Reason, m.CreatedAt),
			ModificationID:   m.ID,
			ModificationType: string(m.Type),
			Old:              m.Old,
			New:              m.New,
		}
		if err := emit(ctx, tx, EventBookingModified, TopicBooking, event, m.CreatedAt); err != nil {
			return err
		}
		result = &ModifyBookingResult{
			Booking:      queries.NewBookingView(b),
			Modification: queries.NewModificationView(m),
		}
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return result, nil
}

// moveInventory locks the union of the old and new stays, moves the rooms and
// returns the total the booking should carry afterwards.
func (c *bookingCommandsImpl) moveInventory(ctx context.Context, tx shared.Tx, b *booking.Booking, target booking.Target) (money.Money, error) {
	h, err := tx.Reads().HotelByID(ctx, b.HotelID())
	if err != nil {
		return money.Money{}, hotelLookupErr(err)
	}
	if err := h.EnsureBookable(); err != nil {
		return money.Money{}, err
	}
	w, err := tx.Inventory().LockWindow(ctx, b.HotelID(), b.Stay().Union(target.Stay))
	if err != nil {
		return money.Money{}, err
	}
	if err := w.Move(b.Stay(), b.Rooms(), target.Stay, target.Rooms); err != nil {
		return money.Money{}, err
	}

	newTotal := b.Total()
	if c.cfg.RepriceOnModify {
		quote, err := c.calculator.Quote(h, w, target.Stay, target.Rooms)
		if err != nil {
			return money.Money{}, err
		}
		newTotal = quote.Total
	}

	if err := tx.Inventory().SaveDays(ctx, w.Changed()); err != nil {
		return money.Money{}, err
	}
	return newTotal, nil
}

// ApplyPaymentOutcome is idempotent: re-delivering an applied outcome changes nothing and emits nothing.
func (c *bookingCommandsImpl) ApplyPaymentOutcome(ctx context.Context, actor shared.Actor, bookingID uuid.UUID, outcome string) (_ *queries.BookingView, err error) {
	ctx, span := startSpan(ctx, "BookingCommands.ApplyPaymentOutcome",
		attribute.String("booking.id", bookingID.String()),
		attribute.String("payment.outcome", outcome))
	defer endSpan(span, &err)

	if !actor.IsStaff() {
		return nil, errs.Mark(ErrStaffOnly, errs.ErrForbidden)
	}
	o, err := booking.NewPaymentOutcome(outcome)
	if err != nil {
		return nil, shared.Classify(err)
	}

	var view *queries.BookingView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.lockBooking(ctx, tx, actor, bookingID)
		if err != nil {
			return err
		}
		res, err := b.ApplyPaymentOutcome(c.services, o, actor.UserID)
		if err != nil {
			return err
		}
		view = queries.NewBookingView(b)
		if !res.Changed {
			return nil
		}

		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		if res.StatusChange != nil {
			if err := tx.Bookings().AppendStatusChange(ctx, *res.StatusChange); err != nil {
				return err
			}
		}
		now := b.UpdatedAt()
		return emit(ctx, tx, EventPaymentApplied, TopicBooking, newBookingEvent(b, actor.UserID, string(o), now), now)
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return view, nil
}

func (c *bookingCommandsImpl) Complete(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) (_ *queries.BookingView, err error) {
	ctx, span := startSpan(ctx, "BookingCommands.Complete", attribute.String("booking.id", bookingID.String()))
	defer endSpan(span, &err)

	if !actor.IsStaff() {
		return nil, errs.Mark(ErrStaffOnly, errs.ErrForbidden)
	}

	var view *queries.BookingView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.lockBooking(ctx, tx, actor, bookingID)
		if err != nil {
			return err
		}
		change, err := b.Complete(c.services, actor.UserID)
		if err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		if err := tx.Bookings().AppendStatusChange(ctx, change); err != nil {
			return err
		}
		if err := emit(ctx, tx, EventBookingCompleted, TopicBooking, newBookingEvent(b, actor.UserID, "", change.At), change.At); err != nil {
			return err
		}
		view = queries.NewBookingView(b)
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return view, nil
}

// MarkRefunded flips a paid booking to refunded once at least one refund has been approved.
func (c *bookingCommandsImpl) MarkRefunded(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) (_ *queries.BookingView, err error) {
	ctx, span := startSpan(ctx, "BookingCommands.MarkRefunded", attribute.String("booking.id", bookingID.String()))
	defer endSpan(span, &err)

	if !actor.IsStaff() {
		return nil, errs.Mark(ErrStaffOnly, errs.ErrForbidden)
	}

	var view *queries.BookingView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := c.lockBooking(ctx, tx, actor, bookingID)
		if err != nil {
			return err
		}
		approved, err := tx.Refunds().CountApproved(ctx, bookingID)
		if err != nil {
			return err
		}
		if approved == 0 {
			return refund.ErrNoApprovedRefund
		}
		if err := b.MarkRefunded(c.services); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		now := b.UpdatedAt()
		if err := emit(ctx, tx, EventBookingRefunded, TopicBooking, newBookingEvent(b, actor.UserID, "", now), now); err != nil {
			return err
		}
		view = queries.NewBookingView(b)
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return view, nil
}

// lockBooking loads the booking FOR UPDATE. Bookings the actor may not see are reported as not found.
func (c *bookingCommandsImpl) lockBooking(ctx context.Context, tx shared.Tx, actor shared.Actor, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.NotFound(ErrBookingNotFound)
		}
		return nil, err
	}
	if !actor.CanAccess(b.UserID()) {
		return nil, shared.NotFound(ErrBookingNotFound)
	}
	return b, nil
}

func parseChange(in ModifyBookingInput) (booking.Change, error) {
	t := booking.ModificationType(in.Type)
	if !t.IsValid() {
		return booking.Change{}, booking.ErrInvalidModification
	}
	change := booking.Change{Type: t, Guests: in.Guests, Rooms: in.Rooms}
	if t == booking.ModificationDateChange {
		if in.CheckIn == nil || in.CheckOut == nil {
			return booking.Change{}, booking.ErrInvalidModification
		}
		r, err := stay.ParseRange(*in.CheckIn, *in.CheckOut)
		if err != nil {
			return booking.Change{}, err
		}
		change.Stay = &r
	}
	return change, nil
}

func hotelLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return shared.NotFound(ErrHotelNotFound)
	}
	return err
}

func calculateRequestHash(in CreateBookingInput) string {
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
