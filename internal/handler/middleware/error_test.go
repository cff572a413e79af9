//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"hotel-booking-core/internal/handler/httperr"
	"hotel-booking-core/internal/handler/middleware"
	"hotel-booking-core/internal/pkg/config"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	return r
}

func TestErrorHandler(t *testing.T) {
	r := newErrorRouter()
	r.GET("/recorded", func(c *gin.Context) {
		_ = c.Error(errs.Mark(errors.New("no rooms left"), errs.ErrNotAvailable))
	})
	r.GET("/unknown", func(c *gin.Context) {
		_ = c.Error(errors.New("connection reset by peer"))
	})
	r.GET("/written", func(c *gin.Context) {
		httperr.Abort(c, errs.Mark(errors.New("booking not found"), errs.ErrNotFound))
	})
	r.GET("/status-only", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("nil map write")
	})

	t.Run("recorded error is classified", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/recorded", nil, "")
		httptest.AssertErrorCode(t, rec, http.StatusConflict, httperr.CodeNotAvailable)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "no rooms left")
	})

	t.Run("unknown error hides its message", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/unknown", nil, "")
		httptest.AssertErrorCode(t, rec, http.StatusInternalServerError, httperr.CodeInternal)
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})

	t.Run("written response is left alone", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/written", nil, "")
		httptest.AssertErrorCode(t, rec, http.StatusNotFound, httperr.CodeNotFound)
	})

	t.Run("status without errors passes through", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/status-only", nil, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("panic becomes a 500 envelope", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorCode(t, rec, http.StatusInternalServerError, httperr.CodeInternal)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}

func TestCORSMiddleware(t *testing.T) {
	cfg := config.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Idempotency-Key"},
		ExposeHeaders:    []string{"Idempotent-Replayed"},
		AllowCredentials: true,
	}

	newRouter := func(cfg config.CORSConfig) *gin.Engine {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.Use(middleware.NewCORSMiddleware(cfg))
		r.GET("/hotels", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("allowed origin gets exposed headers", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, newRouter(cfg), http.MethodGet, "/hotels", nil, "",
			map[string]string{"Origin": "http://localhost:3000"})

		assert.Equal(t, http.StatusOK, rec.Code)
		httptest.AssertHeaders(t, rec, map[string]string{
			"Access-Control-Allow-Origin":      "http://localhost:3000",
			"Access-Control-Allow-Credentials": "true",
		})
		assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "Idempotent-Replayed")
	})

	t.Run("unknown origin is refused", func(t *testing.T) {
		rec := httptest.PerformRequestWithHeaders(t, newRouter(cfg), http.MethodGet, "/hotels", nil, "",
			map[string]string{"Origin": "https://evil.example"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("wildcard drops credentials", func(t *testing.T) {
		wild := cfg
		wild.AllowOrigins = []string{"*"}
		rec := httptest.PerformRequestWithHeaders(t, newRouter(wild), http.MethodGet, "/hotels", nil, "",
			map[string]string{"Origin": "https://anywhere.example"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})
}
