package refund

import (
	"errors"
	"strings"
	"time"

	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/pkg/clock"

	"github.com/google/uuid"
)

const MaxReasonLength = 2000

var (
	ErrInvalidAmount       = errors.New("refund amount must be greater than zero")
	ErrReasonRequired      = errors.New("refund reason is required")
	ErrReasonTooLong       = errors.New("refund reason too long")
	ErrAlreadyDecided      = errors.New("refund request has already been processed")
	ErrExceedsBookingTotal = errors.New("refund amount exceeds the refundable booking total")
	ErrBookingNotPaid      = errors.New("refunds can only be requested for paid bookings")
	ErrInvalidStatus       = errors.New("invalid refund status")
	ErrNoApprovedRefund    = errors.New("booking has no approved refund")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// Committed reports whether the amount counts against the booking total.
func (s Status) Committed() bool {
	return s == StatusPending || s == StatusApproved
}

type ReferenceGenerator interface {
	RequestReference(now time.Time) string
	SettlementReference(now time.Time) string
}

type Services struct {
	Clock      clock.Clock
	References ReferenceGenerator
}

// Request is a refund claim against a booking. It never mutates the booking itself.
type Request struct {
	id                  uuid.UUID
	bookingID           uuid.UUID
	userID              uuid.UUID
	amount              money.Money
	reason              string
	status              Status
	requestReference    string
	settlementReference *string
	requestedAt         time.Time
	processedAt         *time.Time
}

// CheckBound rejects amounts that would push committed refunds past the booking total.
func CheckBound(total, committed, amount money.Money) error {
	if amount.Cents() <= 0 {
		return ErrInvalidAmount
	}
	if committed.Add(amount).GreaterThan(total) {
		return ErrExceedsBookingTotal
	}
	return nil
}

func NewRequest(services *Services, bookingID, userID uuid.UUID, amount money.Money, reason string) (*Request, error) {
	if amount.Cents() <= 0 {
		return nil, ErrInvalidAmount
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}
	if len(reason) > MaxReasonLength {
		return nil, ErrReasonTooLong
	}
	now := services.Clock.Now()
	return &Request{
		id:               uuid.New(),
		bookingID:        bookingID,
		userID:           userID,
		amount:           amount,
		reason:           reason,
		status:           StatusPending,
		requestReference: services.References.RequestReference(now),
		requestedAt:      now,
	}, nil
}

func Reconstruct(
	id, bookingID, userID uuid.UUID,
	amount money.Money,
	reason string,
	status Status,
	requestReference string,
	settlementReference *string,
	requestedAt time.Time,
	processedAt *time.Time,
) *Request {
	return &Request{
		id:                  id,
		bookingID:           bookingID,
		userID:              userID,
		amount:              amount,
		reason:              reason,
		status:              status,
		requestReference:    requestReference,
		settlementReference: settlementReference,
		requestedAt:         requestedAt,
		processedAt:         processedAt,
	}
}

// Decide approves or rejects a pending request. Approval issues a settlement reference.
func (r *Request) Decide(services *Services, approve bool) error {
	if r.status != StatusPending {
		return ErrAlreadyDecided
	}
	now := services.Clock.Now()
	if approve {
		ref := services.References.SettlementReference(now)
		r.status = StatusApproved
		r.settlementReference = &ref
	} else {
		r.status = StatusRejected
	}
	r.processedAt = &now
	return nil
}

func (r *Request) ID() uuid.UUID                { return r.id }
func (r *Request) BookingID() uuid.UUID         { return r.bookingID }
func (r *Request) UserID() uuid.UUID            { return r.userID }
func (r *Request) Amount() money.Money          { return r.amount }
func (r *Request) Reason() string               { return r.reason }
func (r *Request) Status() Status               { return r.status }
func (r *Request) RequestReference() string     { return r.requestReference }
func (r *Request) SettlementReference() *string { return r.settlementReference }
func (r *Request) RequestedAt() time.Time       { return r.requestedAt }
func (r *Request) ProcessedAt() *time.Time      { return r.processedAt }
