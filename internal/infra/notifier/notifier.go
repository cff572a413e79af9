// Package notifier delivers outbox events to the outside world.
package notifier

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Envelope is the JSON document published for every outbox job.
type Envelope struct {
	ID      uuid.UUID       `json:"id"`
	Kind    string          `json:"kind"`
	Topic   string          `json:"topic"`
	Attempt int             `json:"attempt"`
	SentAt  time.Time       `json:"sent_at"`
	Payload json.RawMessage `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, env Envelope) error
}
