// Package worker moves domain events from the outbox to the notifier.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-booking-core/internal/infra/notifier"
	"hotel-booking-core/internal/pkg/clock"
)

const (
	baseBackoff   = 2 * time.Second
	maxBackoff    = 5 * time.Minute
	purgeInterval = 10 * time.Minute
)

type Config struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
	Timeout      time.Duration
}

type Dispatcher struct {
	store     Store
	purger    KeyPurger
	publisher notifier.Publisher
	clock     clock.Clock
	cfg       Config
	logger    *slog.Logger

	mu        sync.Mutex
	cancel    context.CancelFunc
	done      chan struct{}
	lastPurge time.Time
}

func NewDispatcher(store Store, purger KeyPurger, publisher notifier.Publisher, clk clock.Clock, cfg Config, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		store:     store,
		purger:    purger,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
		logger:    logger.With("component", "outbox-dispatcher"),
	}
}

// Start launches the polling loop. Calling Start twice is a no-op.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.done = make(chan struct{})

	go d.loop(ctx, d.done)
	d.logger.Info("outbox dispatcher started", "poll_interval", d.cfg.PollInterval, "batch_size", d.cfg.BatchSize)
}

func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	cancel, done := d.cancel, d.done
	d.cancel, d.done = nil, nil
	d.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		d.logger.Info("outbox dispatcher stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// drain while full batches keep coming
			for {
				n, err := d.RunOnce(ctx)
				if err != nil {
					if ctx.Err() == nil {
						d.logger.Error("outbox poll failed", "error", err.Error())
					}
					break
				}
				if n < d.cfg.BatchSize || ctx.Err() != nil {
					break
				}
			}
			d.purgeKeys(ctx)
		}
	}
}

// RunOnce processes at most one batch of due jobs and returns how many were claimed.
func (d *Dispatcher) RunOnce(ctx context.Context) (int, error) {
	return d.store.ProcessDue(ctx, d.clock.Now(), d.cfg.BatchSize, d.handle)
}

func (d *Dispatcher) handle(ctx context.Context, job Job) Result {
	attempt := job.Attempts + 1

	publishCtx := ctx
	if d.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		publishCtx, cancel = context.WithTimeout(ctx, d.cfg.Timeout)
		defer cancel()
	}

	err := d.publisher.Publish(publishCtx, notifier.Envelope{
		ID:      job.ID,
		Kind:    job.Kind,
		Topic:   job.Topic,
		Attempt: attempt,
		SentAt:  d.clock.Now().UTC(),
		Payload: job.Payload,
	})
	if err == nil {
		return Result{Outcome: OutcomeDelivered}
	}

	if attempt >= d.cfg.MaxAttempts {
		d.logger.Error("outbox job failed permanently",
			"job_id", job.ID.String(),
			"kind", job.Kind,
			"attempt", attempt,
			"error", err.Error())
		return Result{Outcome: OutcomeDead, Error: err.Error()}
	}

	retryAt := d.clock.Now().Add(Backoff(attempt))
	d.logger.Warn("outbox job publish failed, rescheduling",
		"job_id", job.ID.String(),
		"kind", job.Kind,
		"attempt", attempt,
		"retry_at", retryAt,
		"error", err.Error())
	return Result{Outcome: OutcomeRetry, RetryAt: retryAt, Error: err.Error()}
}

func (d *Dispatcher) purgeKeys(ctx context.Context) {
	if d.purger == nil {
		return
	}
	now := d.clock.Now()
	if !d.lastPurge.IsZero() && now.Sub(d.lastPurge) < purgeInterval {
		return
	}
	d.lastPurge = now

	n, err := d.purger.DeleteExpired(ctx, now)
	if err != nil {
		d.logger.Warn("failed to purge expired idempotency keys", "error", err.Error())
		return
	}
	if n > 0 {
		d.logger.Info("purged expired idempotency keys", "count", n)
	}
}

// Backoff doubles from 2s per attempt and is capped at 5 minutes.
func Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := baseBackoff
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
