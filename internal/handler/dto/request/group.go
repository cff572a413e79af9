package request

import (
	"strings"

	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/usecase/commands"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type GroupQuoteRequest struct {
	HotelID       uuid.UUID `json:"hotel_id" binding:"required"`
	GroupSize     int       `json:"group_size" binding:"required,min=1"`
	Category      string    `json:"category" binding:"required,booking_category"`
	CheckIn       string    `json:"check_in_date" binding:"required,date"`
	CheckOut      string    `json:"check_out_date" binding:"required,date"`
	RoomsRequired int       `json:"rooms_required" binding:"required,min=1"`
}

// ToInput relies on the date binding tag having accepted both dates.
func (r GroupQuoteRequest) ToInput() (queries.GroupQuoteInput, error) {
	checkIn, err := stay.ParseDate(r.CheckIn)
	if err != nil {
		return queries.GroupQuoteInput{}, err
	}
	checkOut, err := stay.ParseDate(r.CheckOut)
	if err != nil {
		return queries.GroupQuoteInput{}, err
	}
	return queries.GroupQuoteInput{
		HotelID:       r.HotelID,
		GroupSize:     r.GroupSize,
		Category:      r.Category,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		RoomsRequired: r.RoomsRequired,
	}, nil
}

type SubmitGroupRequest struct {
	HotelID              uuid.UUID `json:"hotel_id" binding:"required"`
	GroupName            string    `json:"group_name" binding:"required,max=200"`
	GroupSize            int       `json:"group_size" binding:"required,min=1"`
	Category             string    `json:"category" binding:"required,booking_category"`
	CheckIn              string    `json:"check_in_date" binding:"required,date"`
	CheckOut             string    `json:"check_out_date" binding:"required,date"`
	RoomsRequired        int       `json:"rooms_required" binding:"required,min=1"`
	SpecialRequirements  *string   `json:"special_requirements,omitempty" binding:"omitempty,max=2000"`
	EstimatedBudgetCents *int64    `json:"estimated_budget_cents,omitempty" binding:"omitempty,gte=0"`
}

func (r SubmitGroupRequest) ToInput() commands.SubmitGroupRequestInput {
	return commands.SubmitGroupRequestInput{
		HotelID:              r.HotelID,
		GroupName:            strings.TrimSpace(r.GroupName),
		GroupSize:            r.GroupSize,
		Category:             r.Category,
		CheckIn:              r.CheckIn,
		CheckOut:             r.CheckOut,
		RoomsRequired:        r.RoomsRequired,
		SpecialRequirements:  trimmed(r.SpecialRequirements),
		EstimatedBudgetCents: r.EstimatedBudgetCents,
	}
}

type UpdateGroupStatusRequest struct {
	Status     string  `json:"status" binding:"required,group_status"`
	AdminNotes *string `json:"admin_notes,omitempty" binding:"omitempty,max=2000"`
}

type ListGroupRequestsQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
}
