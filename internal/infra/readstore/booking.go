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

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListBookingsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserFirstPageParams) ([]sqlc.Bookings, error)
	ListBookingsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserKeysetParams) ([]sqlc.Bookings, error)
	ListBookingStatusHistory(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.BookingStatusHistory, error)
	ListBookingModifications(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.BookingModifications, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking", err)
	}
	return queries.NewBookingView(b), nil
}

func (r *BookingReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByUserFirstPage(ctx, r.db, sqlc.ListBookingsByUserFirstPageParams{
		UserID:     userID,
		LimitCount: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page by user", err)
	}
	return mapBookingRows(rows)
}

func (r *BookingReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByUserKeyset(ctx, r.db, sqlc.ListBookingsByUserKeysetParams{
		UserID:         userID,
		AfterCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		AfterID:        lastID,
		LimitCount:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset by user", err)
	}
	return mapBookingRows(rows)
}

func (r *BookingReadStore) FindStatusHistory(ctx context.Context, bookingID uuid.UUID) ([]*queries.StatusChangeView, error) {
	rows, err := r.queries.ListBookingStatusHistory(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking status history", err)
	}
	result := make([]*queries.StatusChangeView, len(rows))
	for i, row := range rows {
		result[i] = queries.NewStatusChangeView(converter.StatusChangeFromRow(row))
	}
	return result, nil
}

func (r *BookingReadStore) FindModifications(ctx context.Context, bookingID uuid.UUID) ([]*queries.ModificationView, error) {
	rows, err := r.queries.ListBookingModifications(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking modifications", err)
	}
	result := make([]*queries.ModificationView, len(rows))
	for i, row := range rows {
		m, err := converter.ModificationFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booking modification", err)
		}
		result[i] = queries.NewModificationView(m)
	}
	return result, nil
}

func mapBookingRows(rows []sqlc.Bookings) ([]*queries.BookingView, error) {
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		b, err := converter.BookingFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booking", err)
		}
		result[i] = queries.NewBookingView(b)
	}
	return result, nil
}
