package middleware

import (
	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/group"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var ErrValidatorEngine = errs.New("gin binding validator is not go-playground/validator")

var customValidators = map[string]validator.Func{
	"date": func(fl validator.FieldLevel) bool {
		_, err := stay.ParseDate(fl.Field().String())
		return err == nil
	},
	"booking_category": func(fl validator.FieldLevel) bool {
		return group.Category(fl.Field().String()).IsValid()
	},
	"modification_type": func(fl validator.FieldLevel) bool {
		return booking.ModificationType(fl.Field().String()).IsValid()
	},
	"payment_outcome": func(fl validator.FieldLevel) bool {
		_, err := booking.NewPaymentOutcome(fl.Field().String())
		return err == nil
	},
	"group_status": func(fl validator.FieldLevel) bool {
		return group.Status(fl.Field().String()).IsValid()
	},
}

// RegisterValidators installs the domain binding tags on gin's validator. Call once at startup.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return ErrValidatorEngine
	}
	for tag, fn := range customValidators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return errs.Wrapf(err, "register %s validator", tag)
		}
	}
	return nil
}
