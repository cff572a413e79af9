package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"hotel-booking-core/internal/pkg/errs"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

var ErrWebhookRejected = errs.New("webhook rejected notification")

const (
	breakerName          = "notification-webhook"
	breakerTripThreshold = 5
	breakerOpenTimeout   = 30 * time.Second
	maxDrainBytes        = 64 << 10
)

type WebhookPublisher struct {
	url     string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

func NewWebhookPublisher(url string, timeout time.Duration, logger *slog.Logger) *WebhookPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookPublisher{
		url:    url,
		client: &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        breakerName,
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     breakerOpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= breakerTripThreshold
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				logger.Warn("circuit breaker state changed",
					"breaker", name,
					"from", from.String(),
					"to", to.String())
			},
		}),
	}
}

// Publish posts env as JSON. Any non-2xx answer counts as a failure and feeds the breaker;
// while the breaker is open calls fail fast with gobreaker.ErrOpenState.
func (p *WebhookPublisher) Publish(ctx context.Context, env Envelope) error {
	body, err := json.Marshal(env)
	if err != nil {
		return errs.Wrap(err, "marshal notification envelope")
	}

	_, err = p.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", env.ID.String())
		req.Header.Set("X-Event-Kind", env.Kind)
		otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

		resp, err := p.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, errs.Wrapf(ErrWebhookRejected, "status %d", resp.StatusCode)
		}
		return nil, nil
	})
	return err
}

func (p *WebhookPublisher) State() gobreaker.State {
	return p.breaker.State()
}
