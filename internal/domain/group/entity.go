package group

import (
	"errors"
	"strings"
	"time"

	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/pkg/clock"

	"github.com/google/uuid"
)

const (
	MinGroupSize        = 5
	MaxGroupNameLength  = 255
	MaxRequirementsSize = 4000
)

var (
	ErrGroupTooSmall      = errors.New("group size must be at least 5")
	ErrInvalidGroupSize   = errors.New("group size must be at least 1")
	ErrInvalidGroupName   = errors.New("group name is required")
	ErrInvalidCategory    = errors.New("invalid group category")
	ErrInvalidStatus      = errors.New("invalid group request status")
	ErrInvalidRooms       = errors.New("rooms required must be at least 1")
	ErrInvalidTransition  = errors.New("group request status transition not allowed")
	ErrRequirementsTooBig = errors.New("special requirements too long")
)

type Draft struct {
	HotelID             uuid.UUID
	OrganizerID         uuid.UUID
	Name                string
	Size                int
	Category            Category
	Stay                stay.Range
	RoomsRequired       int
	SpecialRequirements *string
	EstimatedBudget     *money.Money
}

// Request is an organizer's inquiry for a group stay. It never holds inventory.
type Request struct {
	id                  uuid.UUID
	hotelID             uuid.UUID
	organizerID         uuid.UUID
	name                string
	size                int
	category            Category
	stay                stay.Range
	roomsRequired       int
	specialRequirements *string
	estimatedBudget     *money.Money
	status              Status
	adminNotes          *string
	createdAt           time.Time
	updatedAt           time.Time
}

func NewRequest(clk clock.Clock, d Draft) (*Request, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" || len(name) > MaxGroupNameLength {
		return nil, ErrInvalidGroupName
	}
	if d.Size < MinGroupSize {
		return nil, ErrGroupTooSmall
	}
	if !d.Category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if d.Stay.IsZero() {
		return nil, stay.ErrInvalidDateRange
	}
	if d.RoomsRequired < 1 {
		return nil, ErrInvalidRooms
	}
	if d.SpecialRequirements != nil && len(*d.SpecialRequirements) > MaxRequirementsSize {
		return nil, ErrRequirementsTooBig
	}
	if d.EstimatedBudget != nil && d.EstimatedBudget.Cents() < 0 {
		return nil, money.ErrNegativeAmount
	}

	now := clk.Now()
	return &Request{
		id:                  uuid.New(),
		hotelID:             d.HotelID,
		organizerID:         d.OrganizerID,
		name:                name,
		size:                d.Size,
		category:            d.Category,
		stay:                d.Stay,
		roomsRequired:       d.RoomsRequired,
		specialRequirements: d.SpecialRequirements,
		estimatedBudget:     d.EstimatedBudget,
		status:              StatusPending,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

func Reconstruct(
	id, hotelID, organizerID uuid.UUID,
	name string,
	size int,
	category Category,
	stayRange stay.Range,
	roomsRequired int,
	specialRequirements *string,
	estimatedBudget *money.Money,
	status Status,
	adminNotes *string,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:                  id,
		hotelID:             hotelID,
		organizerID:         organizerID,
		name:                name,
		size:                size,
		category:            category,
		stay:                stayRange,
		roomsRequired:       roomsRequired,
		specialRequirements: specialRequirements,
		estimatedBudget:     estimatedBudget,
		status:              status,
		adminNotes:          adminNotes,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

// UpdateStatus moves the request along its workflow. Notes, when given, replace the previous ones.
func (r *Request) UpdateStatus(clk clock.Clock, next Status, notes *string) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	if notes != nil {
		r.adminNotes = notes
	}
	r.updatedAt = clk.Now()
	return nil
}

func (r *Request) ID() uuid.UUID                 { return r.id }
func (r *Request) HotelID() uuid.UUID            { return r.hotelID }
func (r *Request) OrganizerID() uuid.UUID        { return r.organizerID }
func (r *Request) Name() string                  { return r.name }
func (r *Request) Size() int                     { return r.size }
func (r *Request) Category() Category            { return r.category }
func (r *Request) Stay() stay.Range              { return r.stay }
func (r *Request) RoomsRequired() int            { return r.roomsRequired }
func (r *Request) SpecialRequirements() *string  { return r.specialRequirements }
func (r *Request) EstimatedBudget() *money.Money { return r.estimatedBudget }
func (r *Request) Status() Status                { return r.status }
func (r *Request) AdminNotes() *string           { return r.adminNotes }
func (r *Request) CreatedAt() time.Time          { return r.createdAt }
func (r *Request) UpdatedAt() time.Time          { return r.updatedAt }
