package api

import (
	"net/http"

	reqdto "hotel-booking-core/internal/handler/dto/request"
	resdto "hotel-booking-core/internal/handler/dto/response"
	"hotel-booking-core/internal/handler/httperr"
	"hotel-booking-core/internal/usecase/commands"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	q    queries.InventoryQueries
	cmds commands.InventoryCommands
}

func NewHotelHandler(q queries.InventoryQueries, cmds commands.InventoryCommands) *HotelHandler {
	return &HotelHandler{q: q, cmds: cmds}
}

// @Summary Check availability
// @Description Dry-run availability check for a stay, with the total price
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Param check_in_date query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out_date query string true "Check-out date (YYYY-MM-DD)"
// @Param rooms query int false "Rooms (default 1)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id}/availability [get]
func (h *HotelHandler) Availability(c *gin.Context) {
	hotelID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var query reqdto.StayQuery
	if !bindQuery(c, &query) {
		return
	}
	checkIn, checkOut, ok := parseDates(c, query.CheckIn, query.CheckOut)
	if !ok {
		return
	}

	view, err := h.q.IsAvailable(c.Request.Context(), hotelID, checkIn, checkOut, query.RoomsOrDefault())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Inventory calendar
// @Description Per-day capacity and price for [from, to)
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "End date, exclusive (YYYY-MM-DD)"
// @Success 200 {array} resdto.CalendarDayResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id}/calendar [get]
func (h *HotelHandler) Calendar(c *gin.Context) {
	hotelID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var query reqdto.CalendarQuery
	if !bindQuery(c, &query) {
		return
	}
	from, to, ok := parseDates(c, query.From, query.To)
	if !ok {
		return
	}

	days, err := h.q.Calendar(c.Request.Context(), hotelID, from, to)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarDayViews(days))
}

// @Summary Total price
// @Description Price breakdown per night for a stay
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Param check_in_date query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out_date query string true "Check-out date (YYYY-MM-DD)"
// @Param rooms query int false "Rooms (default 1)"
// @Success 200 {object} resdto.TotalPriceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id}/price [get]
func (h *HotelHandler) Price(c *gin.Context) {
	hotelID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var query reqdto.StayQuery
	if !bindQuery(c, &query) {
		return
	}
	checkIn, checkOut, ok := parseDates(c, query.CheckIn, query.CheckOut)
	if !ok {
		return
	}

	view, err := h.q.TotalPrice(c.Request.Context(), hotelID, checkIn, checkOut, query.RoomsOrDefault())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTotalPriceView(view))
}

// @Summary Nightly price
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Param date query string true "Night (YYYY-MM-DD)"
// @Success 200 {object} resdto.NightlyPriceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id}/nightly-price [get]
func (h *HotelHandler) NightlyPrice(c *gin.Context) {
	hotelID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var query reqdto.NightlyPriceQuery
	if !bindQuery(c, &query) {
		return
	}
	date, ok := parseDate(c, query.Date)
	if !ok {
		return
	}

	view, err := h.q.NightlyPrice(c.Request.Context(), hotelID, date)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNightlyPriceView(view))
}

// @Summary Set surge multiplier
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param date path string true "Night (YYYY-MM-DD)"
// @Param request body reqdto.SetSurgeRequest true "Surge multiplier"
// @Success 200 {object} resdto.CalendarDayResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id}/inventory/{date}/surge [put]
func (h *HotelHandler) SetSurge(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	hotelID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	date, ok := pathDate(c, "date")
	if !ok {
		return
	}
	var req reqdto.SetSurgeRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.cmds.SetSurge(c.Request.Context(), actor, hotelID, date, *req.Multiplier)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarDayView(view))
}

// @Summary Set nightly capacity
// @Description Capacity may not drop below the rooms already booked
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param date path string true "Night (YYYY-MM-DD)"
// @Param request body reqdto.SetCapacityRequest true "Capacity"
// @Success 200 {object} resdto.CalendarDayResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /hotels/{id}/inventory/{date}/capacity [put]
func (h *HotelHandler) SetCapacity(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	hotelID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	date, ok := pathDate(c, "date")
	if !ok {
		return
	}
	var req reqdto.SetCapacityRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.cmds.SetCapacity(c.Request.Context(), actor, hotelID, date, *req.MaxRooms)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarDayView(view))
}

// @Summary Set nightly base price
// @Description A null base_price_cents falls back to the hotel's standard rate
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param date path string true "Night (YYYY-MM-DD)"
// @Param request body reqdto.SetBasePriceRequest true "Base price override"
// @Success 200 {object} resdto.CalendarDayResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /hotels/{id}/inventory/{date}/base-price [put]
func (h *HotelHandler) SetBasePrice(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	hotelID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	date, ok := pathDate(c, "date")
	if !ok {
		return
	}
	var req reqdto.SetBasePriceRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.cmds.SetBasePrice(c.Request.Context(), actor, hotelID, date, req.BasePriceCents)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarDayView(view))
}
