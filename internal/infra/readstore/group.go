package readstore

import (
	"context"
	"time"

	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/repository/converter"
	sqlc "hotel-booking-core/internal/infra/sqlc/generated"
	"hotel-booking-core/internal/pkg/pgconv"
	"hotel-booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type GroupViewQueries interface {
	GetGroupBookingRequestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GroupBookingRequests, error)
	ListGroupBookingRequestsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListGroupBookingRequestsFirstPageParams) ([]sqlc.GroupBookingRequests, error)
	ListGroupBookingRequestsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListGroupBookingRequestsKeysetParams) ([]sqlc.GroupBookingRequests, error)
}

type GroupReadStore struct {
	queries GroupViewQueries
	db      sqlc.DBTX
}

func NewGroupReadStore(queries GroupViewQueries, db sqlc.DBTX) *GroupReadStore {
	return &GroupReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *GroupReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GroupRequestView, error) {
	row, err := r.queries.GetGroupBookingRequestByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("group booking request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get group booking request by id", err)
	}
	req, err := converter.GroupFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert group booking request", err)
	}
	return queries.NewGroupRequestView(req), nil
}

func (r *GroupReadStore) FindFirstPage(ctx context.Context, organizerID *uuid.UUID, limit int32) ([]*queries.GroupRequestView, error) {
	rows, err := r.queries.ListGroupBookingRequestsFirstPage(ctx, r.db, sqlc.ListGroupBookingRequestsFirstPageParams{
		OrganizerID: pgconv.UUIDPtrToPgtype(organizerID),
		LimitCount:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list group booking requests first page", err)
	}
	return mapGroupRows(rows)
}

func (r *GroupReadStore) FindKeyset(ctx context.Context, organizerID *uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.GroupRequestView, error) {
	rows, err := r.queries.ListGroupBookingRequestsKeyset(ctx, r.db, sqlc.ListGroupBookingRequestsKeysetParams{
		OrganizerID:    pgconv.UUIDPtrToPgtype(organizerID),
		AfterCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		AfterID:        lastID,
		LimitCount:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list group booking requests keyset", err)
	}
	return mapGroupRows(rows)
}

func mapGroupRows(rows []sqlc.GroupBookingRequests) ([]*queries.GroupRequestView, error) {
	result := make([]*queries.GroupRequestView, len(rows))
	for i, row := range rows {
		req, err := converter.GroupFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert group booking request", err)
		}
		result[i] = queries.NewGroupRequestView(req)
	}
	return result, nil
}
