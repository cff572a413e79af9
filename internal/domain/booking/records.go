package booking

import (
	"time"

	"github.com/google/uuid"
)

// StatusChange is one append-only row of the booking status history.
// From is empty for the creation entry.
type StatusChange struct {
	BookingID uuid.UUID
	From      Status
	To        Status
	Reason    string
	ActorID   uuid.UUID
	At        time.Time
}

type Snapshot struct {
	CheckIn    string `json:"check_in_date,omitempty"`
	CheckOut   string `json:"check_out_date,omitempty"`
	Guests     int    `json:"guests,omitempty"`
	Rooms      int    `json:"rooms,omitempty"`
	TotalCents int64  `json:"total_amount_cents"`
}

// Modification is one append-only audit row; changes are auto-approved.
type Modification struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Type      ModificationType
	Old       Snapshot
	New       Snapshot
	Reason    *string
	Status    string
	ActorID   uuid.UUID
	CreatedAt time.Time
}
