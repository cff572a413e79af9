package components

import (
	"hotel-booking-core/internal/handler"
	"hotel-booking-core/internal/handler/api"
	"hotel-booking-core/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHotelHandler,
		api.NewBookingHandler,
		api.NewRefundHandler,
		api.NewGroupHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(
		middleware.RegisterValidators,
		handler.NewRouter,
	),
)

type handlerParams struct {
	fx.In

	Hotel   *api.HotelHandler
	Booking *api.BookingHandler
	Refund  *api.RefundHandler
	Group   *api.GroupHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Hotel:   p.Hotel,
		Booking: p.Booking,
		Refund:  p.Refund,
		Group:   p.Group,
	}
}
