package repository

import (
	"context"

	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/refund"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/repository/converter"
	sqlc "hotel-booking-core/internal/infra/sqlc/generated"
	"hotel-booking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RefundWriteQueries interface {
	CreateRefundRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRefundRequestParams) error
	GetRefundRequestForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.RefundRequests, error)
	UpdateRefundRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRefundRequestParams) error
	SumCommittedRefunds(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (int64, error)
	CountApprovedRefunds(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (int64, error)
}

type RefundRepository struct {
	queries RefundWriteQueries
	db      sqlc.DBTX
}

func NewRefundRepository(queries RefundWriteQueries, db sqlc.DBTX) *RefundRepository {
	return &RefundRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RefundRepository) Create(ctx context.Context, req *refund.Request) error {
	if err := r.queries.CreateRefundRequest(ctx, r.db, converter.RefundToCreateParams(req)); err != nil {
		return infra.WrapRepoErr("failed to create refund request", err)
	}
	return nil
}

func (r *RefundRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*refund.Request, error) {
	row, err := r.queries.GetRefundRequestForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("refund request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock refund request", err)
	}

	req, err := converter.RefundFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert refund request", err)
	}
	return req, nil
}

func (r *RefundRepository) Update(ctx context.Context, req *refund.Request) error {
	if err := r.queries.UpdateRefundRequest(ctx, r.db, converter.RefundToUpdateParams(req)); err != nil {
		return infra.WrapRepoErr("failed to update refund request", err)
	}
	return nil
}

func (r *RefundRepository) SumCommitted(ctx context.Context, bookingID uuid.UUID) (money.Money, error) {
	total, err := r.queries.SumCommittedRefunds(ctx, r.db, bookingID)
	if err != nil {
		return money.Zero(), infra.WrapRepoErr("failed to sum committed refunds", err)
	}
	return money.FromCents(total), nil
}

func (r *RefundRepository) CountApproved(ctx context.Context, bookingID uuid.UUID) (int64, error) {
	count, err := r.queries.CountApprovedRefunds(ctx, r.db, bookingID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count approved refunds", err)
	}
	return count, nil
}
