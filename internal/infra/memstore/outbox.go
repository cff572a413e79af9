package memstore

import (
	"context"
	"slices"
	"time"

	"hotel-booking-core/internal/worker"
)

// ProcessDue claims due jobs under the write lock, then publishes them without it so
// bookings are not held up by a slow subscriber.
func (s *Store) ProcessDue(ctx context.Context, now time.Time, limit int, handle func(ctx context.Context, job worker.Job) worker.Result) (int, error) {
	var claimed []worker.Job
	s.mutate(func(st *state) {
		var due []*NotificationJob
		for _, id := range st.jobOrder {
			j := st.jobs[id]
			if j.Status == JobStatusQueued && !j.RunAt.After(now) {
				due = append(due, j)
			}
		}
		slices.SortStableFunc(due, func(a, b *NotificationJob) int { return a.RunAt.Compare(b.RunAt) })
		if len(due) > limit {
			due = due[:limit]
		}
		for _, j := range due {
			j.Status = JobStatusProcessing
			claimed = append(claimed, worker.Job{
				ID:       j.ID,
				Kind:     j.Kind,
				Topic:    j.Topic,
				Payload:  slices.Clone(j.Payload),
				Attempts: j.Attempts,
				RunAt:    j.RunAt,
			})
		}
	})

	for _, job := range claimed {
		result := handle(ctx, job)
		s.mutate(func(st *state) {
			j := st.jobs[job.ID]
			j.Attempts++
			switch result.Outcome {
			case worker.OutcomeDelivered:
				j.Status = JobStatusSent
				j.LastError = ""
			case worker.OutcomeRetry:
				j.Status = JobStatusQueued
				j.RunAt = result.RetryAt
				j.LastError = result.Error
			default:
				j.Status = JobStatusFailed
				j.LastError = result.Error
			}
		})
	}
	return len(claimed), nil
}

// DeleteExpired drops idempotency keys whose expiry has passed.
func (s *Store) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	s.mutate(func(st *state) {
		for k, rec := range st.keys {
			if rec.IsExpired(now) {
				delete(st.keys, k)
				n++
			}
		}
	})
	return n, nil
}
