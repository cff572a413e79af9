package readstore

import (
	"context"
	"time"

	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/repository/converter"
	sqlc "hotel-booking-core/internal/infra/sqlc/generated"
	"hotel-booking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InventoryViewQueries interface {
	GetAvailabilityRange(ctx context.Context, db sqlc.DBTX, arg sqlc.GetAvailabilityRangeParams) ([]sqlc.HotelAvailability, error)
}

type InventoryReadStore struct {
	queries InventoryViewQueries
	db      sqlc.DBTX
}

func NewInventoryReadStore(queries InventoryViewQueries, db sqlc.DBTX) *InventoryReadStore {
	return &InventoryReadStore{
		queries: queries,
		db:      db,
	}
}

// FindDays reads stored rows in [from, to) without locking or materializing anything.
func (r *InventoryReadStore) FindDays(ctx context.Context, hotelID uuid.UUID, from, to time.Time) ([]*inventory.Day, error) {
	rows, err := r.queries.GetAvailabilityRange(ctx, r.db, sqlc.GetAvailabilityRangeParams{
		HotelID:  hotelID,
		FromDate: pgconv.DateToPgtype(from),
		ToDate:   pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get availability range", err)
	}

	days, err := converter.DaysFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert availability rows", err)
	}
	return days, nil
}
