package converter

import (
	"hotel-booking-core/internal/domain/hotel"
	"hotel-booking-core/internal/domain/inventory"
	"hotel-booking-core/internal/domain/money"
	sqlc "hotel-booking-core/internal/infra/sqlc/generated"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/pkg/pgconv"
)

// SurgeScale is the number of fractional digits of hotel_availability.surge_multiplier.
const SurgeScale = 4

func HotelFromRow(row sqlc.Hotels) *hotel.Hotel {
	return hotel.Reconstruct(row.ID, row.Name, money.FromCents(row.PricePerNightCents), row.IsActive)
}

func DayFromRow(row sqlc.HotelAvailability) (*inventory.Day, error) {
	bp, err := pgconv.ScaledFromNumeric(row.SurgeMultiplier, SurgeScale)
	if err != nil {
		return nil, errs.Wrapf(errs.Mark(err, ErrInvalidRow), "availability %s/%s surge", row.HotelID, pgconv.DateFromPgtype(row.Date).Format("2006-01-02"))
	}
	surge, err := inventory.NewSurge(bp)
	if err != nil {
		return nil, errs.Wrapf(errs.Mark(err, ErrInvalidRow), "availability %s surge", row.HotelID)
	}

	var basePrice *money.Money
	if cents := pgconv.Int64PtrFromPgtype(row.BasePriceCents); cents != nil {
		m := money.FromCents(*cents)
		basePrice = &m
	}

	return inventory.ReconstructDay(
		row.HotelID,
		pgconv.DateFromPgtype(row.Date),
		int(row.MaxRooms),
		int(row.AvailableRooms),
		basePrice,
		surge,
	), nil
}

func DaysFromRows(rows []sqlc.HotelAvailability) ([]*inventory.Day, error) {
	days := make([]*inventory.Day, 0, len(rows))
	for _, row := range rows {
		d, err := DayFromRow(row)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

func DayToUpdateParams(d *inventory.Day) sqlc.UpdateAvailabilityParams {
	var basePrice *int64
	if bp := d.BasePrice(); bp != nil {
		cents := bp.Cents()
		basePrice = &cents
	}
	return sqlc.UpdateAvailabilityParams{
		HotelID:         d.HotelID(),
		Date:            pgconv.DateToPgtype(d.Date()),
		MaxRooms:        int32(d.MaxRooms()),
		AvailableRooms:  int32(d.AvailableRooms()),
		BasePriceCents:  pgconv.Int64PtrToPgtype(basePrice),
		SurgeMultiplier: pgconv.ScaledToNumeric(d.Surge().BasisPoints(), SurgeScale),
	}
}
