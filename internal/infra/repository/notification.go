package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hotel-booking-core/internal/infra"
	sqlc "hotel-booking-core/internal/infra/sqlc/generated"
	"hotel-booking-core/internal/pkg/pgconv"
	"hotel-booking-core/internal/worker"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
	}

	err := r.queries.CreateNotificationJob(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

type OutboxQueries interface {
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	RescheduleNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.RescheduleNotificationJobParams) error
	MarkNotificationJobFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobFailedParams) error
}

type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// OutboxStore claims due jobs with FOR UPDATE SKIP LOCKED so several dispatchers can share the table.
type OutboxStore struct {
	queries OutboxQueries
	db      TxBeginner
}

func NewOutboxStore(queries OutboxQueries, db TxBeginner) *OutboxStore {
	return &OutboxStore{
		queries: queries,
		db:      db,
	}
}

func (s *OutboxStore) ProcessDue(ctx context.Context, now time.Time, limit int, handle func(ctx context.Context, job worker.Job) worker.Result) (int, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to begin outbox transaction", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback outbox transaction", "error", rbErr.Error())
		}
	}()

	rows, err := s.queries.ClaimDueNotificationJobs(ctx, tx, sqlc.ClaimDueNotificationJobsParams{
		Now:       pgconv.TimeToPgtype(now),
		BatchSize: int32(limit),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	for _, row := range rows {
		result := handle(ctx, worker.Job{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: int(row.Attempts),
			RunAt:    pgconv.TimeFromPgtype(row.RunAt),
		})
		if err := s.record(ctx, tx, row.ID, result); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, infra.WrapRepoErr("failed to commit outbox transaction", err)
	}
	return len(rows), nil
}

func (s *OutboxStore) record(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, result worker.Result) error {
	var err error
	switch result.Outcome {
	case worker.OutcomeDelivered:
		err = s.queries.MarkNotificationJobSent(ctx, tx, id)
	case worker.OutcomeRetry:
		err = s.queries.RescheduleNotificationJob(ctx, tx, sqlc.RescheduleNotificationJobParams{
			ID:        id,
			RunAt:     pgconv.TimeToPgtype(result.RetryAt),
			LastError: pgconv.StringToPgtype(result.Error),
		})
	default:
		err = s.queries.MarkNotificationJobFailed(ctx, tx, sqlc.MarkNotificationJobFailedParams{
			ID:        id,
			LastError: pgconv.StringToPgtype(result.Error),
		})
	}
	if err != nil {
		return infra.WrapRepoErr("failed to record notification job result", err)
	}
	return nil
}
