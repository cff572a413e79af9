package httperr

import (
	"errors"
	"net/http"

	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Stable error codes returned in the response body.
const (
	CodeInvalidDateRange       = "INVALID_DATE_RANGE"
	CodeValidationFailed       = "VALIDATION_FAILED"
	CodeNotAvailable           = "NOT_AVAILABLE"
	CodeInvalidTransition      = "INVALID_TRANSITION"
	CodeNotFound               = "NOT_FOUND"
	CodeIdempotencyKeyRequired = "IDEMPOTENCY_KEY_REQUIRED"
	CodeIdempotencyKeyReused   = "IDEMPOTENCY_KEY_REUSED"
	CodeIdempotencyInProgress  = "IDEMPOTENCY_IN_PROGRESS"
	CodeRefundExceedsTotal     = "REFUND_EXCEEDS_TOTAL"
	CodeForbidden              = "FORBIDDEN"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodePersistenceFailure     = "PERSISTENCE_FAILURE"
	CodeInternal               = "INTERNAL"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type mapping struct {
	target error
	status int
	code   string
}

// Checked in order. Only the taxonomy reaches this table; use cases classify everything else.
var mappings = []mapping{
	{errs.ErrInvalidDateRange, http.StatusBadRequest, CodeInvalidDateRange},
	{errs.ErrValidation, http.StatusBadRequest, CodeValidationFailed},
	{errs.ErrIdempotencyKeyRequired, http.StatusBadRequest, CodeIdempotencyKeyRequired},
	{errs.ErrNotAvailable, http.StatusConflict, CodeNotAvailable},
	{errs.ErrInvalidTransition, http.StatusConflict, CodeInvalidTransition},
	{errs.ErrIdempotencyInProgress, http.StatusConflict, CodeIdempotencyInProgress},
	{errs.ErrNotFound, http.StatusNotFound, CodeNotFound},
	{errs.ErrIdempotencyKeyReused, http.StatusUnprocessableEntity, CodeIdempotencyKeyReused},
	{errs.ErrRefundExceedsTotal, http.StatusUnprocessableEntity, CodeRefundExceedsTotal},
	{errs.ErrForbidden, http.StatusForbidden, CodeForbidden},
	{errs.ErrPersistenceFailure, http.StatusServiceUnavailable, CodePersistenceFailure},
}

// Classify returns the status and code for err. Unknown errors are internal.
func Classify(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, CodeInternal
}

// Abort answers with the status mapped from err. Client errors carry the domain
// message; store errors and server failures get a fixed one.
func Abort(c *gin.Context, err error) {
	status, code := Classify(err)
	msg := publicMessage(err, status)
	AbortWithError(c, status, err, code, msg, nil)
}

// AbortWithError preserves the original error on c.Errors for logging.
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// BadRequest is used for malformed input rejected before reaching a use case.
func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, err, CodeValidationFailed, msg, nil)
}

func publicMessage(err error, status int) string {
	switch {
	case status == http.StatusServiceUnavailable:
		return "Storage temporarily unavailable"
	case status >= http.StatusInternalServerError:
		return "Internal server error"
	}
	var repoErr infra.RepositoryError
	if errors.As(err, &repoErr) {
		return http.StatusText(status)
	}
	return err.Error()
}
