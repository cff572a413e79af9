package readstore

import (
	"context"

	"hotel-booking-core/internal/domain/hotel"
	"hotel-booking-core/internal/infra"
	"hotel-booking-core/internal/infra/repository/converter"
	sqlc "hotel-booking-core/internal/infra/sqlc/generated"
	"hotel-booking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type HotelViewQueries interface {
	GetHotelByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Hotels, error)
}

type HotelReadStore struct {
	queries HotelViewQueries
	db      sqlc.DBTX
}

func NewHotelReadStore(queries HotelViewQueries, db sqlc.DBTX) *HotelReadStore {
	return &HotelReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HotelReadStore) FindByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	row, err := r.queries.GetHotelByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get hotel by id", err)
	}
	return converter.HotelFromRow(row), nil
}
