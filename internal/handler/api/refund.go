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

type RefundHandler struct {
	cmds commands.RefundCommands
	q    queries.RefundQueries
}

func NewRefundHandler(cmds commands.RefundCommands, q queries.RefundQueries) *RefundHandler {
	return &RefundHandler{cmds: cmds, q: q}
}

// @Summary Request refund
// @Description The amount plus all pending and approved refunds may not exceed the booking total
// @Tags refunds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RequestRefundRequest true "Refund request"
// @Success 201 {object} resdto.RefundResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/refunds [post]
func (h *RefundHandler) Request(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	bookingID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RequestRefundRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.cmds.Request(c.Request.Context(), actor, bookingID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRefundView(view))
}

// @Summary List refunds of a booking
// @Tags refunds
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.RefundResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/refunds [get]
func (h *RefundHandler) ListByBooking(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	bookingID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	views, err := h.q.ListByBooking(c.Request.Context(), actor, bookingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRefundViews(views))
}

// @Summary Get refund
// @Tags refunds
// @Produce json
// @Security BearerAuth
// @Param id path string true "Refund ID"
// @Success 200 {object} resdto.RefundResponse
// @Failure 404 {object} httperr.Response
// @Router /refunds/{id} [get]
func (h *RefundHandler) Get(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromRefundView(view))
}

// @Summary Decide refund
// @Description Approve or reject a pending refund. Approval assigns the settlement reference.
// @Tags refunds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Refund ID"
// @Param request body reqdto.RefundDecisionRequest true "Decision"
// @Success 200 {object} resdto.RefundResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /refunds/{id}/decision [post]
func (h *RefundHandler) Decide(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RefundDecisionRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.cmds.Decide(c.Request.Context(), actor, id, *req.Approve)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRefundView(view))
}
