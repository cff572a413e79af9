package components

import (
	"log/slog"

	"hotel-booking-core/internal/infra/memstore"
	"hotel-booking-core/internal/pkg/config"
	"hotel-booking-core/internal/usecase/queries"
	"hotel-booking-core/internal/usecase/shared"
	"hotel-booking-core/internal/worker"

	"go.uber.org/fx"
)

// MemoryPersistenceModule backs every port with one in-process store.
var MemoryPersistenceModule = fx.Module("persistence/memory",
	fx.Provide(
		NewMemoryStore,
		fx.Annotate(
			func(s *memstore.Store) *memstore.Store { return s },
			fx.As(new(shared.UnitOfWork)),
			fx.As(new(worker.Store)),
			fx.As(new(worker.KeyPurger)),
		),
		fx.Annotate(
			memstore.NewHotelReadStore,
			fx.As(new(queries.HotelReadStore)),
		),
		fx.Annotate(
			memstore.NewInventoryReadStore,
			fx.As(new(queries.InventoryReadStore)),
		),
		fx.Annotate(
			memstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			memstore.NewRefundReadStore,
			fx.As(new(queries.RefundReadStore)),
		),
		fx.Annotate(
			memstore.NewGroupReadStore,
			fx.As(new(queries.GroupReadStore)),
		),
	),
)

func NewMemoryStore(cfg config.Config, logger *slog.Logger) (*memstore.Store, error) {
	s := memstore.New()
	if cfg.Store.SeedFile == "" {
		logger.Warn("memory store started without seed file; no hotels are bookable")
		return s, nil
	}
	if err := memstore.LoadSeedFile(s, cfg.Store.SeedFile); err != nil {
		return nil, err
	}
	logger.Info("memory store seeded", "file", cfg.Store.SeedFile)
	return s, nil
}
