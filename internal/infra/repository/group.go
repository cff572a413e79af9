package repository

import (
	"context"

	"hotel-booking-core/internal/domain/group"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/repository/converter"
	sqlc "hotel-booking-core/internal/infra/sqlc/generated"
	"hotel-booking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type GroupWriteQueries interface {
	CreateGroupBookingRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateGroupBookingRequestParams) error
	GetGroupBookingRequestForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GroupBookingRequests, error)
	UpdateGroupBookingRequestStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateGroupBookingRequestStatusParams) error
}

type GroupRepository struct {
	queries GroupWriteQueries
	db      sqlc.DBTX
}

func NewGroupRepository(queries GroupWriteQueries, db sqlc.DBTX) *GroupRepository {
	return &GroupRepository{
		queries: queries,
		db:      db,
	}
}

func (r *GroupRepository) Create(ctx context.Context, req *group.Request) error {
	if err := r.queries.CreateGroupBookingRequest(ctx, r.db, converter.GroupToCreateParams(req)); err != nil {
		return infra.WrapRepoErr("failed to create group booking request", err)
	}
	return nil
}

func (r *GroupRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*group.Request, error) {
	row, err := r.queries.GetGroupBookingRequestForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("group booking request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock group booking request", err)
	}

	req, err := converter.GroupFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert group booking request", err)
	}
	return req, nil
}

func (r *GroupRepository) Update(ctx context.Context, req *group.Request) error {
	if err := r.queries.UpdateGroupBookingRequestStatus(ctx, r.db, converter.GroupToStatusParams(req)); err != nil {
		return infra.WrapRepoErr("failed to update group booking request", err)
	}
	return nil
}
