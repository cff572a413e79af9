package api

import (
	"net/http"
	"time"

	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/handler/httperr"
	"hotel-booking-core/internal/handler/middleware"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

func pathDate(c *gin.Context, name string) (time.Time, bool) {
	d, err := stay.ParseDate(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid "+name+" format, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return d, true
}

func parseDate(c *gin.Context, s string) (time.Time, bool) {
	d, err := stay.ParseDate(s)
	if err != nil {
		httperr.BadRequest(c, err, "Invalid date format, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return d, true
}

func parseDates(c *gin.Context, from, to string) (time.Time, time.Time, bool) {
	f, ok := parseDate(c, from)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	t, ok := parseDate(c, to)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return f, t, true
}

func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.CodeUnauthorized, "Unauthorized", nil)
		return shared.Actor{}, false
	}
	return actor, true
}

func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		httperr.BadRequest(c, err, "Invalid request: "+err.Error())
		return false
	}
	return true
}

func bindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		httperr.BadRequest(c, err, "Invalid query: "+err.Error())
		return false
	}
	return true
}
