package bootstrap

import (
	"hotel-booking-core/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies a configuration loaded before the graph is built,
// since the store driver decides which persistence module is installed.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
	)
}
