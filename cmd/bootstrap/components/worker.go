package components

import (
	"context"
	"log/slog"

	"hotel-booking-core/internal/infra/notifier"
	"hotel-booking-core/internal/pkg/clock"
	"hotel-booking-core/internal/pkg/config"
	"hotel-booking-core/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewPublisher,
		NewDispatcher,
	),
	fx.Invoke(startDispatcher),
)

// NewPublisher falls back to the structured log when no webhook is configured.
func NewPublisher(cfg config.Config, logger *slog.Logger) notifier.Publisher {
	if cfg.Notifier.WebhookURL == "" {
		return notifier.NewLogPublisher(logger)
	}
	return notifier.NewWebhookPublisher(cfg.Notifier.WebhookURL, cfg.Notifier.Timeout, logger)
}

func NewDispatcher(store worker.Store, purger worker.KeyPurger, publisher notifier.Publisher, clk clock.Clock, cfg config.Config, logger *slog.Logger) *worker.Dispatcher {
	return worker.NewDispatcher(store, purger, publisher, clk, worker.Config{
		PollInterval: cfg.Notifier.PollInterval,
		BatchSize:    cfg.Notifier.BatchSize,
		MaxAttempts:  cfg.Notifier.MaxAttempts,
		Timeout:      cfg.Notifier.Timeout,
	}, logger)
}

func startDispatcher(lc fx.Lifecycle, d *worker.Dispatcher, cfg config.Config, logger *slog.Logger) {
	if cfg.Notifier.Disabled {
		logger.Info("outbox dispatcher disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	})
}
