package components

import (
	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/pricing"
	"hotel-booking-core/internal/domain/refund"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/pkg/config"
	"hotel-booking-core/internal/pkg/refcode"
	"hotel-booking-core/internal/usecase"
	"hotel-booking-core/internal/usecase/commands"
	"hotel-booking-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPricingCalculator,
	NewBookingConfig,
	fx.Annotate(
		refcode.NewGenerator,
		fx.As(new(booking.ReferenceGenerator)),
		fx.As(new(refund.ReferenceGenerator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewInventoryCommands,
		commands.NewRefundCommands,
		commands.NewGroupCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewInventoryQueries,
		queries.NewBookingQueries,
		queries.NewRefundQueries,
		queries.NewGroupQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPricingCalculator(cfg config.Config) (pricing.Calculator, error) {
	return pricing.NewCalculator(pricing.Mode(cfg.Booking.PricingMode))
}

func NewBookingConfig(cfg config.Config) commands.BookingConfig {
	return commands.BookingConfig{
		RepriceOnModify: cfg.Booking.RepriceOnModify,
		IdempotencyTTL:  cfg.Booking.IdempotencyTTL,
	}
}
