package readstore

import (
	"context"

	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/repository/converter"
	sqlc "hotel-booking-core/internal/infra/sqlc/generated"
	"hotel-booking-core/internal/pkg/pgconv"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type RefundViewQueries interface {
	GetRefundRequestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.RefundRequests, error)
	ListRefundRequestsByBooking(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.RefundRequests, error)
}

type RefundReadStore struct {
	queries RefundViewQueries
	db      sqlc.DBTX
}

func NewRefundReadStore(queries RefundViewQueries, db sqlc.DBTX) *RefundReadStore {
	return &RefundReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RefundReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RefundView, error) {
	row, err := r.queries.GetRefundRequestByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("refund request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get refund request by id", err)
	}
	req, err := converter.RefundFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert refund request", err)
	}
	return queries.NewRefundView(req), nil
}

func (r *RefundReadStore) FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]*queries.RefundView, error) {
	rows, err := r.queries.ListRefundRequestsByBooking(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list refund requests by booking", err)
	}
	result := make([]*queries.RefundView, len(rows))
	for i, row := range rows {
		req, err := converter.RefundFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert refund request", err)
		}
		result[i] = queries.NewRefundView(req)
	}
	return result, nil
}
