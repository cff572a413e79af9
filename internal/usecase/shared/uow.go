package shared

import (
	"context"
	"time"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/group"
	"hotel-booking-core/internal/domain/hotel"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/refund"
	"hotel-booking-core/internal/domain/stay"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads CommandReads) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx hands out repositories bound to one transaction. Everything written through
// them commits or rolls back together.
type Tx interface {
	Inventory() InventoryRepository
	Bookings() BookingRepository
	Refunds() RefundRepository
	Groups() GroupRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

type CommandReads interface {
	HotelByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
	InventoryWindow(ctx context.Context, hotelID uuid.UUID, span stay.Range) (*inventory.Window, error)
	IdempotencyByKey(ctx context.Context, key string, userID uuid.UUID) (*IdempotencyRecord, error)
}

type InventoryRepository interface {
	// LockWindow loads every day of span and holds it until the transaction ends.
	// Days are locked in date order.
	LockWindow(ctx context.Context, hotelID uuid.UUID, span stay.Range) (*inventory.Window, error)
	SaveDays(ctx context.Context, days []*inventory.Day) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
	AppendStatusChange(ctx context.Context, change booking.StatusChange) error
	AppendModification(ctx context.Context, m booking.Modification) error
}

type RefundRepository interface {
	Create(ctx context.Context, r *refund.Request) error
	FindForUpdate(ctx context.Context, id uuid.UUID) (*refund.Request, error)
	Update(ctx context.Context, r *refund.Request) error
	// SumCommitted totals pending and approved refunds for a booking.
	SumCommitted(ctx context.Context, bookingID uuid.UUID) (money.Money, error)
	CountApproved(ctx context.Context, bookingID uuid.UUID) (int64, error)
}

type GroupRepository interface {
	Create(ctx context.Context, r *group.Request) error
	FindForUpdate(ctx context.Context, id uuid.UUID) (*group.Request, error)
	Update(ctx context.Context, r *group.Request) error
}

type IdempotencyRepository interface {
	// TryInsert reports false when the key already exists for the user.
	TryInsert(ctx context.Context, key string, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	// ClaimExpired takes over a key whose previous claim has expired.
	ClaimExpired(ctx context.Context, key string, userID uuid.UUID, endpoint, requestHash string, expiresAt, now time.Time) (bool, error)
	MarkCompleted(ctx context.Context, key string, userID uuid.UUID, responseHash string, bookingID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
