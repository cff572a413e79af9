package repository

import (
	"context"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/repository/converter"
	sqlc "hotel-booking-core/internal/infra/sqlc/generated"
	"hotel-booking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) error
	CreateBookingStatusHistory(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingStatusHistoryParams) error
	CreateBookingModification(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingModificationParams) error
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking", err)
	}
	return b, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.UpdateBooking(ctx, r.db, converter.BookingToUpdateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	return nil
}

func (r *BookingRepository) AppendStatusChange(ctx context.Context, change booking.StatusChange) error {
	if err := r.queries.CreateBookingStatusHistory(ctx, r.db, converter.StatusChangeToParams(change)); err != nil {
		return infra.WrapRepoErr("failed to append booking status history", err)
	}
	return nil
}

func (r *BookingRepository) AppendModification(ctx context.Context, m booking.Modification) error {
	params, err := converter.ModificationToParams(m)
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking modification", err)
	}
	if err := r.queries.CreateBookingModification(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to append booking modification", err)
	}
	return nil
}
