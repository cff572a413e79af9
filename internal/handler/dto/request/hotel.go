package request

type StayQuery struct {
	CheckIn  string `form:"check_in_date" binding:"required,date"`
	CheckOut string `form:"check_out_date" binding:"required,date"`
	Rooms    int    `form:"rooms" binding:"omitempty,min=1"`
}

// RoomsOrDefault treats an omitted room count as a single room.
func (q StayQuery) RoomsOrDefault() int {
	if q.Rooms == 0 {
		return 1
	}
	return q.Rooms
}

type CalendarQuery struct {
	From string `form:"from" binding:"required,date"`
	To   string `form:"to" binding:"required,date"`
}

type NightlyPriceQuery struct {
	Date string `form:"date" binding:"required,date"`
}

// SetSurgeRequest accepts an explicit 0; a missing multiplier is rejected.
type SetSurgeRequest struct {
	Multiplier *float64 `json:"surge_multiplier" binding:"required,gte=0,lte=99.9999"`
}

type SetCapacityRequest struct {
	MaxRooms *int `json:"max_rooms" binding:"required,min=0"`
}

// SetBasePriceRequest clears the override when base_price_cents is null.
type SetBasePriceRequest struct {
	BasePriceCents *int64 `json:"base_price_cents" binding:"omitempty,gte=0,lte=1000000000"`
}
