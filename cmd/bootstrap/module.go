package bootstrap

import (
	"hotel-booking-core/cmd/bootstrap/components"
	"hotel-booking-core/internal/pkg/config"

	"go.uber.org/fx"
)

func Module(cfg config.Config) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		TelemetryModule,
		JWTModule,
		persistence(cfg.Store),
		components.UseCaseModule,
		components.HandlerModule,
		components.WorkerModule,
	)
}

func persistence(cfg config.StoreConfig) fx.Option {
	if cfg.Driver == config.StoreDriverMemory {
		return components.MemoryPersistenceModule
	}
	return fx.Options(
		DBModule,
		components.PostgresPersistenceModule,
	)
}
