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

type GroupHandler struct {
	cmds commands.GroupCommands
	q    queries.GroupQueries
}

func NewGroupHandler(cmds commands.GroupCommands, q queries.GroupQueries) *GroupHandler {
	return &GroupHandler{cmds: cmds, q: q}
}

// @Summary Group quote
// @Description Tiered discount plus category services. Inventory is not reserved.
// @Tags group-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GroupQuoteRequest true "Quote request"
// @Success 200 {object} resdto.GroupQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /group-bookings/quote [post]
func (h *GroupHandler) Quote(c *gin.Context) {
	var req reqdto.GroupQuoteRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.BadRequest(c, err, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	view, err := h.q.Quote(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGroupQuoteView(view))
}

// @Summary Submit group request
// @Tags group-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitGroupRequest true "Group request"
// @Success 201 {object} resdto.GroupRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /group-bookings [post]
func (h *GroupHandler) Submit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.SubmitGroupRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.cmds.Submit(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromGroupRequestView(view))
}

// @Summary List group requests
// @Description Guests see their own requests, staff see all
// @Tags group-bookings
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} resdto.GroupRequestListResponse
// @Failure 400 {object} httperr.Response
// @Router /group-bookings [get]
func (h *GroupHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var query reqdto.ListGroupRequestsQuery
	if !bindQuery(c, &query) {
		return
	}
	var cursor *queries.Cursor
	if query.After != "" {
		cursor = &queries.Cursor{After: query.After}
	}

	views, next, err := h.q.List(c.Request.Context(), actor, cursor, query.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGroupRequestViews(views, next))
}

// @Summary Get group request
// @Tags group-bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group request ID"
// @Success 200 {object} resdto.GroupRequestResponse
// @Failure 404 {object} httperr.Response
// @Router /group-bookings/{id} [get]
func (h *GroupHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGroupRequestView(view))
}

// @Summary Update group request status
// @Tags group-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group request ID"
// @Param request body reqdto.UpdateGroupStatusRequest true "New status"
// @Success 200 {object} resdto.GroupRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /group-bookings/{id}/status [patch]
func (h *GroupHandler) UpdateStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateGroupStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.cmds.UpdateStatus(c.Request.Context(), actor, id, req.Status, req.AdminNotes)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGroupRequestView(view))
}
