//go:build unit

package notifier_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"hotel-booking-core/internal/infra/notifier"
	"hotel-booking-core/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelope() notifier.Envelope {
	return notifier.Envelope{
		ID:      uuid.New(),
		Kind:    "booking_created",
		Topic:   "booking",
		Attempt: 1,
		SentAt:  time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		Payload: json.RawMessage(`{"booking_id":"b1"}`),
	}
}

func TestWebhookPublisher_Publish(t *testing.T) {
	t.Run("posts the envelope with delivery headers", func(t *testing.T) {
		env := envelope()
		var got notifier.Envelope
		var headers http.Header
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers = r.Header.Clone()
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		p := notifier.NewWebhookPublisher(srv.URL, time.Second, nil)
		require.NoError(t, p.Publish(context.Background(), env))

		assert.Equal(t, env.ID, got.ID)
		assert.Equal(t, "booking", got.Topic)
		assert.JSONEq(t, `{"booking_id":"b1"}`, string(got.Payload))
		assert.Equal(t, "application/json", headers.Get("Content-Type"))
		assert.Equal(t, env.ID.String(), headers.Get("Idempotency-Key"))
		assert.Equal(t, "booking_created", headers.Get("X-Event-Kind"))
	})

	t.Run("non-2xx is a rejection", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		err := notifier.NewWebhookPublisher(srv.URL, time.Second, nil).Publish(context.Background(), envelope())
		require.Error(t, err)
		assert.True(t, errs.Is(err, notifier.ErrWebhookRejected))
	})

	t.Run("breaker opens after consecutive failures and fails fast", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		p := notifier.NewWebhookPublisher(srv.URL, time.Second, nil)
		for range 5 {
			require.Error(t, p.Publish(context.Background(), envelope()))
		}
		assert.Equal(t, gobreaker.StateOpen, p.State())

		err := p.Publish(context.Background(), envelope())
		assert.True(t, errors.Is(err, gobreaker.ErrOpenState))
		assert.Equal(t, int32(5), hits.Load())
	})
}

func TestLogPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	env := envelope()

	require.NoError(t, notifier.NewLogPublisher(logger).Publish(context.Background(), env))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "domain event", line["msg"])
	assert.Equal(t, env.ID.String(), line["event_id"])
	assert.Equal(t, "booking_created", line["kind"])
}
