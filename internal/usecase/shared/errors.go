package shared

import (
	"context"
	"errors"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/group"
	"hotel-booking-core/internal/domain/hotel"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/pricing"
	"hotel-booking-core/internal/domain/refund"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/pkg/errs"
)

var taxonomy = []error{
	errs.ErrInvalidDateRange,
	errs.ErrValidation,
	errs.ErrNotAvailable,
	errs.ErrInvalidTransition,
	errs.ErrNotFound,
	errs.ErrForbidden,
	errs.ErrPersistenceFailure,
	errs.ErrIdempotencyKeyRequired,
	errs.ErrIdempotencyKeyReused,
	errs.ErrIdempotencyInProgress,
	errs.ErrRefundExceedsTotal,
}

// Checked in order; the first matching row decides the category.
var classification = []struct {
	category error
	causes   []error
}{
	{errs.ErrInvalidDateRange, []error{stay.ErrInvalidDateRange, stay.ErrStayTooLong, stay.ErrInvalidDate}},
	{errs.ErrNotAvailable, []error{inventory.ErrInsufficientInventory, hotel.ErrHotelInactive}},
	{errs.ErrRefundExceedsTotal, []error{refund.ErrExceedsBookingTotal}},
	{errs.ErrInvalidTransition, []error{
		booking.ErrInvalidTransition,
		booking.ErrInvalidPaymentTransition,
		group.ErrInvalidTransition,
		refund.ErrAlreadyDecided,
		refund.ErrBookingNotPaid,
		refund.ErrNoApprovedRefund,
	}},
	{errs.ErrValidation, []error{
		money.ErrNegativeAmount,
		pricing.ErrUnknownMode,
		inventory.ErrInvalidRoomCount,
		inventory.ErrInvalidCapacity,
		inventory.ErrCapacityBelowCommitted,
		inventory.ErrInvalidSurge,
		inventory.ErrBasePriceTooHigh,
		booking.ErrInvalidPaymentOutcome,
		booking.ErrInvalidGuests,
		booking.ErrInvalidRooms,
		booking.ErrInvalidGuestName,
		booking.ErrInvalidGuestEmail,
		booking.ErrSpecialRequestsTooLong,
		booking.ErrInvalidModification,
		booking.ErrNoChange,
		booking.ErrNegativeTotal,
		group.ErrGroupTooSmall,
		group.ErrInvalidGroupSize,
		group.ErrInvalidGroupName,
		group.ErrInvalidCategory,
		group.ErrInvalidStatus,
		group.ErrInvalidRooms,
		group.ErrRequirementsTooBig,
		refund.ErrInvalidAmount,
		refund.ErrReasonRequired,
		refund.ErrReasonTooLong,
		refund.ErrInvalidStatus,
	}},
}

// Classify marks err with the taxonomy error handlers map to a response.
// Errors that already carry a category are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errs.IsAny(err, taxonomy...) {
		return err
	}
	for _, c := range classification {
		if errs.IsAny(err, c.causes...) {
			return errs.Mark(err, c.category)
		}
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrNotFound)
	}
	var repoErr infra.RepositoryError
	if errors.As(err, &repoErr) || errors.Is(err, context.DeadlineExceeded) {
		return errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return err
}

// NotFound marks err as a missing resource.
func NotFound(err error) error {
	return errs.Mark(err, errs.ErrNotFound)
}
