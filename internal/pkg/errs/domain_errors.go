package errs

import "errors"

// Error taxonomy shared by the usecase layer. Domain packages keep their own
// sentinels; usecases Mark them with one of these so handlers only need to
// know this list.
var (
	ErrInvalidDateRange   = errors.New("invalid date range")
	ErrValidation         = errors.New("validation failed")
	ErrNotAvailable       = errors.New("not available")
	ErrInvalidTransition  = errors.New("invalid state transition")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrPersistenceFailure = errors.New("persistence failure")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyKeyReused   = errors.New("idempotency key reused with a different request")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")

	// Refund errors
	ErrRefundExceedsTotal = errors.New("refund exceeds booking total")
)
