package queries

import (
	"hotel-booking-core/internal/domain/booking"
	"hotel-booking-core/internal/domain/group"
	"hotel-booking-core/internal/domain/refund"
	"hotel-booking-core/internal/domain/stay"
)

func NewBookingView(b *booking.Booking) *BookingView {
	g := b.Guest()
	return &BookingView{
		ID:               b.ID(),
		Reference:        b.Reference(),
		HotelID:          b.HotelID(),
		UserID:           b.UserID(),
		CheckIn:          stay.FormatDate(b.Stay().CheckIn()),
		CheckOut:         stay.FormatDate(b.Stay().CheckOut()),
		Nights:           b.Stay().Nights(),
		Guests:           b.Guests(),
		Rooms:            b.Rooms(),
		TotalAmountCents: b.Total().Cents(),
		Status:           b.Status().String(),
		PaymentStatus:    b.PaymentStatus().String(),
		GuestName:        g.Name(),
		GuestEmail:       g.Email(),
		GuestPhone:       g.Phone(),
		SpecialRequests:  g.SpecialRequests(),
		CreatedAt:        b.CreatedAt(),
		UpdatedAt:        b.UpdatedAt(),
	}
}

func NewStatusChangeView(c booking.StatusChange) *StatusChangeView {
	v := &StatusChangeView{
		To:      c.To.String(),
		ActorID: c.ActorID,
		At:      c.At,
	}
	if c.From != "" {
		from := c.From.String()
		v.From = &from
	}
	if c.Reason != "" {
		reason := c.Reason
		v.Reason = &reason
	}
	return v
}

func NewModificationView(m booking.Modification) *ModificationView {
	return &ModificationView{
		ID:        m.ID,
		BookingID: m.BookingID,
		Type:      string(m.Type),
		Old:       SnapshotView(m.Old),
		New:       SnapshotView(m.New),
		Reason:    m.Reason,
		Status:    m.Status,
		ActorID:   m.ActorID,
		CreatedAt: m.CreatedAt,
	}
}

func NewRefundView(r *refund.Request) *RefundView {
	return &RefundView{
		ID:                  r.ID(),
		BookingID:           r.BookingID(),
		UserID:              r.UserID(),
		AmountCents:         r.Amount().Cents(),
		Reason:              r.Reason(),
		Status:              string(r.Status()),
		RequestReference:    r.RequestReference(),
		SettlementReference: r.SettlementReference(),
		RequestedAt:         r.RequestedAt(),
		ProcessedAt:         r.ProcessedAt(),
	}
}

func NewGroupRequestView(r *group.Request) *GroupRequestView {
	v := &GroupRequestView{
		ID:                  r.ID(),
		HotelID:             r.HotelID(),
		OrganizerID:         r.OrganizerID(),
		Name:                r.Name(),
		Size:                r.Size(),
		Category:            string(r.Category()),
		CheckIn:             stay.FormatDate(r.Stay().CheckIn()),
		CheckOut:            stay.FormatDate(r.Stay().CheckOut()),
		RoomsRequired:       r.RoomsRequired(),
		SpecialRequirements: r.SpecialRequirements(),
		Status:              string(r.Status()),
		AdminNotes:          r.AdminNotes(),
		CreatedAt:           r.CreatedAt(),
		UpdatedAt:           r.UpdatedAt(),
	}
	if b := r.EstimatedBudget(); b != nil {
		cents := b.Cents()
		v.EstimatedBudgetCents = &cents
	}
	return v
}

func NewGroupQuoteView(q group.Quote) *GroupQuoteView {
	return &GroupQuoteView{
		GroupSize:           q.GroupSize,
		Category:            string(q.Category),
		Nights:              q.Nights,
		RoomsRequired:       q.RoomsRequired,
		PricePerNightCents:  q.PricePerNight.Cents(),
		BasePriceCents:      q.BasePrice.Cents(),
		DiscountPercent:     q.DiscountPercent,
		DiscountAmountCents: q.DiscountAmount.Cents(),
		RoomsTotalCents:     q.RoomsTotal.Cents(),
		Services: AdditionalServicesView{
			MeetingRoomCents:       q.Services.MeetingRoom.Cents(),
			CateringPerPersonCents: q.Services.CateringPerPerson.Cents(),
			DecorationsCents:       q.Services.Decorations.Cents(),
			TransportationCents:    q.Services.Transportation.Cents(),
			TotalCents:             q.ServicesTotal.Cents(),
		},
		GrandTotalCents: q.GrandTotal.Cents(),
		ValidUntil:      q.ValidUntil,
	}
}
