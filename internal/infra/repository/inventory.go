package repository

import (
	"context"

	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/stay"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/repository/converter"
	sqlc "hotel-booking-core/internal/infra/sqlc/generated"
	"hotel-booking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InventoryWriteQueries interface {
	EnsureAvailabilityRows(ctx context.Context, db sqlc.DBTX, arg sqlc.EnsureAvailabilityRowsParams) error
	LockAvailabilityRange(ctx context.Context, db sqlc.DBTX, arg sqlc.LockAvailabilityRangeParams) ([]sqlc.HotelAvailability, error)
	UpdateAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAvailabilityParams) error
}

type InventoryRepository struct {
	queries InventoryWriteQueries
	db      sqlc.DBTX
}

func NewInventoryRepository(queries InventoryWriteQueries, db sqlc.DBTX) *InventoryRepository {
	return &InventoryRepository{
		queries: queries,
		db:      db,
	}
}

// LockWindow materializes missing days with defaults, then locks the whole span in date order.
func (r *InventoryRepository) LockWindow(ctx context.Context, hotelID uuid.UUID, span stay.Range) (*inventory.Window, error) {
	from := pgconv.DateToPgtype(span.CheckIn())
	to := pgconv.DateToPgtype(span.CheckOut())

	err := r.queries.EnsureAvailabilityRows(ctx, r.db, sqlc.EnsureAvailabilityRowsParams{
		HotelID:  hotelID,
		FromDate: from,
		ToDate:   to,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to materialize availability rows", err)
	}

	rows, err := r.queries.LockAvailabilityRange(ctx, r.db, sqlc.LockAvailabilityRangeParams{
		HotelID:  hotelID,
		FromDate: from,
		ToDate:   to,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock availability rows", err)
	}

	days, err := converter.DaysFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert availability rows", err)
	}

	return inventory.NewWindow(hotelID, span, days), nil
}

func (r *InventoryRepository) SaveDays(ctx context.Context, days []*inventory.Day) error {
	for _, d := range days {
		if err := r.queries.UpdateAvailability(ctx, r.db, converter.DayToUpdateParams(d)); err != nil {
			return infra.WrapRepoErr("failed to update availability", err)
		}
		d.MarkStored()
	}
	return nil
}
