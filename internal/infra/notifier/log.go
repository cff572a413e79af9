package notifier

import (
	"context"
	"log/slog"
)

// LogPublisher writes events to the structured log. Used when no webhook is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, env Envelope) error {
	p.logger.InfoContext(ctx, "domain event",
		"event_id", env.ID.String(),
		"kind", env.Kind,
		"topic", env.Topic,
		"attempt", env.Attempt,
		"payload", string(env.Payload),
	)
	return nil
}
