package converter

import (
	"encoding/json"

	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/stay"
	sqlc "hotel-booking-core/internal/infra/sqlc/generated"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/pkg/pgconv"
)

var ErrInvalidRow = errs.New("stored row failed validation")

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:               b.ID(),
		BookingReference: b.Reference(),
		HotelID:          b.HotelID(),
		UserID:           b.UserID(),
		CheckInDate:      pgconv.DateToPgtype(b.Stay().CheckIn()),
		CheckOutDate:     pgconv.DateToPgtype(b.Stay().CheckOut()),
		Guests:           int32(b.Guests()),
		Rooms:            int32(b.Rooms()),
		TotalAmountCents: b.Total().Cents(),
		BookingStatus:    b.Status().String(),
		PaymentStatus:    b.PaymentStatus().String(),
		GuestName:        b.Guest().Name(),
		GuestEmail:       b.Guest().Email(),
		GuestPhone:       pgconv.StringPtrToPgtype(b.Guest().Phone()),
		SpecialRequests:  pgconv.StringPtrToPgtype(b.Guest().SpecialRequests()),
		CreatedAt:        pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingParams {
	return sqlc.UpdateBookingParams{
		ID:               b.ID(),
		CheckInDate:      pgconv.DateToPgtype(b.Stay().CheckIn()),
		CheckOutDate:     pgconv.DateToPgtype(b.Stay().CheckOut()),
		Guests:           int32(b.Guests()),
		Rooms:            int32(b.Rooms()),
		TotalAmountCents: b.Total().Cents(),
		BookingStatus:    b.Status().String(),
		PaymentStatus:    b.PaymentStatus().String(),
		UpdatedAt:        pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	stayRange, err := stay.NewRange(pgconv.DateFromPgtype(row.CheckInDate), pgconv.DateFromPgtype(row.CheckOutDate))
	if err != nil {
		return nil, errs.Wrapf(errs.Mark(err, ErrInvalidRow), "booking %s stay", row.ID)
	}
	status := booking.Status(row.BookingStatus)
	if !status.IsValid() {
		return nil, errs.Wrapf(ErrInvalidRow, "booking %s status %q", row.ID, row.BookingStatus)
	}
	payment := booking.PaymentStatus(row.PaymentStatus)
	if !payment.IsValid() {
		return nil, errs.Wrapf(ErrInvalidRow, "booking %s payment status %q", row.ID, row.PaymentStatus)
	}

	return booking.Reconstruct(
		row.ID,
		row.BookingReference,
		row.HotelID,
		row.UserID,
		stayRange,
		int(row.Guests),
		int(row.Rooms),
		money.FromCents(row.TotalAmountCents),
		status,
		payment,
		booking.ReconstructGuestInfo(
			row.GuestName,
			row.GuestEmail,
			pgconv.StringPtrFromPgtype(row.GuestPhone),
			pgconv.StringPtrFromPgtype(row.SpecialRequests),
		),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func StatusChangeToParams(c booking.StatusChange) sqlc.CreateBookingStatusHistoryParams {
	params := sqlc.CreateBookingStatusHistoryParams{
		BookingID: c.BookingID,
		NewStatus: c.To.String(),
		ActorID:   c.ActorID,
		CreatedAt: pgconv.TimeToPgtype(c.At),
	}
	if c.From != "" {
		params.PreviousStatus = pgconv.StringToPgtype(c.From.String())
	}
	if c.Reason != "" {
		params.Reason = pgconv.StringToPgtype(c.Reason)
	}
	return params
}

func StatusChangeFromRow(row sqlc.BookingStatusHistory) booking.StatusChange {
	c := booking.StatusChange{
		BookingID: row.BookingID,
		To:        booking.Status(row.NewStatus),
		ActorID:   row.ActorID,
		At:        pgconv.TimeFromPgtype(row.CreatedAt),
	}
	if row.PreviousStatus.Valid {
		c.From = booking.Status(row.PreviousStatus.String)
	}
	if row.Reason.Valid {
		c.Reason = row.Reason.String
	}
	return c
}

func ModificationToParams(m booking.Modification) (sqlc.CreateBookingModificationParams, error) {
	oldData, err := json.Marshal(m.Old)
	if err != nil {
		return sqlc.CreateBookingModificationParams{}, errs.Wrap(err, "marshal old snapshot")
	}
	newData, err := json.Marshal(m.New)
	if err != nil {
		return sqlc.CreateBookingModificationParams{}, errs.Wrap(err, "marshal new snapshot")
	}
	return sqlc.CreateBookingModificationParams{
		ID:               m.ID,
		BookingID:        m.BookingID,
		ModificationType: string(m.Type),
		OldData:          oldData,
		NewData:          newData,
		Reason:           pgconv.StringPtrToPgtype(m.Reason),
		Status:           m.Status,
		ActorID:          m.ActorID,
		CreatedAt:        pgconv.TimeToPgtype(m.CreatedAt),
	}, nil
}

func ModificationFromRow(row sqlc.BookingModifications) (booking.Modification, error) {
	m := booking.Modification{
		ID:        row.ID,
		BookingID: row.BookingID,
		Type:      booking.ModificationType(row.ModificationType),
		Reason:    pgconv.StringPtrFromPgtype(row.Reason),
		Status:    row.Status,
		ActorID:   row.ActorID,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
	if err := json.Unmarshal(row.OldData, &m.Old); err != nil {
		return booking.Modification{}, errs.Wrapf(errs.Mark(err, ErrInvalidRow), "modification %s old_data", row.ID)
	}
	if err := json.Unmarshal(row.NewData, &m.New); err != nil {
		return booking.Modification{}, errs.Wrapf(errs.Mark(err, ErrInvalidRow), "modification %s new_data", row.ID)
	}
	return m, nil
}
