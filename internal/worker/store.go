package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one queued outbox row.
type Job struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int
	RunAt    time.Time
}

type Outcome int

const (
	OutcomeDelivered Outcome = iota
	OutcomeRetry
	OutcomeDead
)

type Result struct {
	Outcome Outcome
	RetryAt time.Time
	Error   string
}

// Store claims due jobs and records each Result before releasing them.
// Implementations must not hand the same job to two concurrent callers.
type Store interface {
	ProcessDue(ctx context.Context, now time.Time, limit int, handle func(ctx context.Context, job Job) Result) (int, error)
}

type KeyPurger interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
