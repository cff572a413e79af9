package converter

import (
	"hotel-booking-core/internal/domain/group"
	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/stay"
	sqlc "hotel-booking-core/internal/infra/sqlc/generated"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/pkg/pgconv"
)

func GroupToCreateParams(r *group.Request) sqlc.CreateGroupBookingRequestParams {
	var budget *int64
	if b := r.EstimatedBudget(); b != nil {
		cents := b.Cents()
		budget = &cents
	}
	return sqlc.CreateGroupBookingRequestParams{
		ID:                   r.ID(),
		HotelID:              r.HotelID(),
		OrganizerID:          r.OrganizerID(),
		GroupName:            r.Name(),
		GroupSize:            int32(r.Size()),
		Category:             string(r.Category()),
		CheckInDate:          pgconv.DateToPgtype(r.Stay().CheckIn()),
		CheckOutDate:         pgconv.DateToPgtype(r.Stay().CheckOut()),
		RoomsRequired:        int32(r.RoomsRequired()),
		SpecialRequirements:  pgconv.StringPtrToPgtype(r.SpecialRequirements()),
		EstimatedBudgetCents: pgconv.Int64PtrToPgtype(budget),
		Status:               string(r.Status()),
		AdminNotes:           pgconv.StringPtrToPgtype(r.AdminNotes()),
		CreatedAt:            pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:            pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func GroupToStatusParams(r *group.Request) sqlc.UpdateGroupBookingRequestStatusParams {
	return sqlc.UpdateGroupBookingRequestStatusParams{
		ID:         r.ID(),
		Status:     string(r.Status()),
		AdminNotes: pgconv.StringPtrToPgtype(r.AdminNotes()),
		UpdatedAt:  pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func GroupFromRow(row sqlc.GroupBookingRequests) (*group.Request, error) {
	stayRange, err := stay.NewRange(pgconv.DateFromPgtype(row.CheckInDate), pgconv.DateFromPgtype(row.CheckOutDate))
	if err != nil {
		return nil, errs.Wrapf(errs.Mark(err, ErrInvalidRow), "group request %s stay", row.ID)
	}
	category, err := group.NewCategory(row.Category)
	if err != nil {
		return nil, errs.Wrapf(errs.Mark(err, ErrInvalidRow), "group request %s category", row.ID)
	}
	status, err := group.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(errs.Mark(err, ErrInvalidRow), "group request %s status", row.ID)
	}

	var budget *money.Money
	if cents := pgconv.Int64PtrFromPgtype(row.EstimatedBudgetCents); cents != nil {
		m := money.FromCents(*cents)
		budget = &m
	}

	return group.Reconstruct(
		row.ID,
		row.HotelID,
		row.OrganizerID,
		row.GroupName,
		int(row.GroupSize),
		category,
		stayRange,
		int(row.RoomsRequired),
		pgconv.StringPtrFromPgtype(row.SpecialRequirements),
		budget,
		status,
		pgconv.StringPtrFromPgtype(row.AdminNotes),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
