package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-booking-core/internal/domain/user"
	"hotel-booking-core/internal/handler/api"
	"hotel-booking-core/internal/handler/middleware"
	"hotel-booking-core/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Hotel   *api.HotelHandler
	Booking *api.BookingHandler
	Refund  *api.RefundHandler
	Group   *api.GroupHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.Tracing())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staff := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleStaff)}
	admin := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}

	apiGroup := engine.Group("/api")
	{
		hotels := apiGroup.Group("/hotels/:id")
		{
			addRoutes(hotels, []route{
				{Method: http.MethodGet, Path: "/availability", Handler: h.Hotel.Availability},
				{Method: http.MethodGet, Path: "/calendar", Handler: h.Hotel.Calendar},
				{Method: http.MethodGet, Path: "/price", Handler: h.Hotel.Price},
				{Method: http.MethodGet, Path: "/nightly-price", Handler: h.Hotel.NightlyPrice},
			})

			inventory := hotels.Group("/inventory/:date")
			inventory.Use(authMiddleware.RequireAuth())
			addRoutes(inventory, []route{
				{Method: http.MethodPut, Path: "/surge", Handler: h.Hotel.SetSurge, Mw: staff},
				{Method: http.MethodPut, Path: "/capacity", Handler: h.Hotel.SetCapacity, Mw: staff},
				{Method: http.MethodPut, Path: "/base-price", Handler: h.Hotel.SetBasePrice, Mw: staff},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
				{Method: http.MethodPost, Path: "/:id/modifications", Handler: h.Booking.Modify},
				{Method: http.MethodGet, Path: "/:id/modifications", Handler: h.Booking.ListModifications},
				{Method: http.MethodGet, Path: "/:id/history", Handler: h.Booking.History},
				{Method: http.MethodPost, Path: "/:id/payment-outcome", Handler: h.Booking.ApplyPaymentOutcome, Mw: staff},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Booking.Complete, Mw: staff},
				{Method: http.MethodPost, Path: "/:id/refunded", Handler: h.Booking.MarkRefunded, Mw: staff},
				{Method: http.MethodPost, Path: "/:id/refunds", Handler: h.Refund.Request},
				{Method: http.MethodGet, Path: "/:id/refunds", Handler: h.Refund.ListByBooking},
			})
		}

		refunds := apiGroup.Group("/refunds")
		refunds.Use(authMiddleware.RequireAuth())
		{
			addRoutes(refunds, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Refund.Get},
				{Method: http.MethodPost, Path: "/:id/decision", Handler: h.Refund.Decide, Mw: staff},
			})
		}

		groups := apiGroup.Group("/group-bookings")
		groups.Use(authMiddleware.RequireAuth())
		{
			addRoutes(groups, []route{
				{Method: http.MethodPost, Path: "/quote", Handler: h.Group.Quote},
				{Method: http.MethodPost, Path: "", Handler: h.Group.Submit},
				{Method: http.MethodGet, Path: "", Handler: h.Group.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Group.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Group.UpdateStatus, Mw: admin},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
