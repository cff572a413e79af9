package commands

import (
	"context"
	"encoding/json"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/group"
	"hotel-booking-core/internal/domain/refund"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// Outbox event kinds.
const (
	EventBookingCreated        = "booking_created"
	EventBookingCancelled      = "booking_cancelled"
	EventBookingModified       = "booking_modified"
	EventPaymentApplied        = "payment_applied"
	EventBookingCompleted      = "booking_completed"
	EventBookingRefunded       = "booking_refunded"
	EventRefundRequested       = "refund_requested"
	EventRefundDecided         = "refund_decided"
	EventGroupRequestSubmitted = "group_request_submitted"
	EventGroupRequestUpdated   = "group_request_updated"
)

// Outbox topics, one per aggregate.
const (
	TopicBooking      = "booking"
	TopicRefund       = "refund"
	TopicGroupRequest = "group_request"
)

type bookingEvent struct {
	BookingID        uuid.UUID `json:"booking_id"`
	BookingReference string    `json:"booking_reference"`
	HotelID          uuid.UUID `json:"hotel_id"`
	UserID           uuid.UUID `json:"user_id"`
	CheckIn          string    `json:"check_in_date"`
	CheckOut         string    `json:"check_out_date"`
	Rooms            int       `json:"rooms"`
	Guests           int       `json:"guests"`
	TotalCents       int64     `json:"total_amount_cents"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"payment_status"`
	Reason           string    `json:"reason,omitempty"`
	ActorID          uuid.UUID `json:"actor_id"`
	OccurredAt       time.Time `json:"occurred_at"`
}

func newBookingEvent(b *booking.Booking, actorID uuid.UUID, reason string, at time.Time) bookingEvent {
	return bookingEvent{
		BookingID:        b.ID(),
		BookingReference: b.Reference(),
		HotelID:          b.HotelID(),
		UserID:           b.UserID(),
		CheckIn:          stay.FormatDate(b.Stay().CheckIn()),
		CheckOut:         stay.FormatDate(b.Stay().CheckOut()),
		Rooms:            b.Rooms(),
		Guests:           b.Guests(),
		TotalCents:       b.Total().Cents(),
		Status:           b.Status().String(),
		PaymentStatus:    b.PaymentStatus().String(),
		Reason:           reason,
		ActorID:          actorID,
		OccurredAt:       at,
	}
}

type modificationEvent struct {
	bookingEvent
	ModificationID   uuid.UUID        `json:"modification_id"`
	ModificationType string           `json:"modification_type"`
	Old              booking.Snapshot `json:"old_values"`
	New              booking.Snapshot `json:"new_values"`
}

type refundEvent struct {
	RefundID            uuid.UUID  `json:"refund_id"`
	BookingID           uuid.UUID  `json:"booking_id"`
	UserID              uuid.UUID  `json:"user_id"`
	AmountCents         int64      `json:"amount_cents"`
	Status              string     `json:"status"`
	RequestReference    string     `json:"request_reference"`
	SettlementReference *string    `json:"settlement_reference,omitempty"`
	ProcessedAt         *time.Time `json:"processed_at,omitempty"`
	OccurredAt          time.Time  `json:"occurred_at"`
}

func newRefundEvent(r *refund.Request, at time.Time) refundEvent {
	return refundEvent{
		RefundID:            r.ID(),
		BookingID:           r.BookingID(),
		UserID:              r.UserID(),
		AmountCents:         r.Amount().Cents(),
		Status:              string(r.Status()),
		RequestReference:    r.RequestReference(),
		SettlementReference: r.SettlementReference(),
		ProcessedAt:         r.ProcessedAt(),
		OccurredAt:          at,
	}
}

type groupRequestEvent struct {
	RequestID   uuid.UUID `json:"request_id"`
	HotelID     uuid.UUID `json:"hotel_id"`
	OrganizerID uuid.UUID `json:"organizer_id"`
	GroupName   string    `json:"group_name"`
	GroupSize   int       `json:"group_size"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	AdminNotes  *string   `json:"admin_notes,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func newGroupRequestEvent(r *group.Request, at time.Time) groupRequestEvent {
	return groupRequestEvent{
		RequestID:   r.ID(),
		HotelID:     r.HotelID(),
		OrganizerID: r.OrganizerID(),
		GroupName:   r.Name(),
		GroupSize:   r.Size(),
		Category:    string(r.Category()),
		Status:      string(r.Status()),
		AdminNotes:  r.AdminNotes(),
		OccurredAt:  at,
	}
}

// emit queues an outbox job in the caller's transaction.
func emit(ctx context.Context, tx shared.Tx, kind, topic string, payload any, runAt time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "marshal "+kind+" payload")
	}
	return tx.Notifications().CreateJob(ctx, kind, topic, body, runAt)
}
