package converter

import (
	"hotel-booking-core/internal/domain/money"
	"hotel-booking-core/internal/domain/refund"
	sqlc "hotel-booking-core/internal/infra/sqlc/generated"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/pkg/pgconv"
)

func RefundToCreateParams(r *refund.Request) sqlc.CreateRefundRequestParams {
	return sqlc.CreateRefundRequestParams{
		ID:                  r.ID(),
		BookingID:           r.BookingID(),
		UserID:              r.UserID(),
		AmountCents:         r.Amount().Cents(),
		Reason:              r.Reason(),
		Status:              string(r.Status()),
		RequestReference:    r.RequestReference(),
		SettlementReference: pgconv.StringPtrToPgtype(r.SettlementReference()),
		RequestedAt:         pgconv.TimeToPgtype(r.RequestedAt()),
		ProcessedAt:         pgconv.TimePtrToPgtype(r.ProcessedAt()),
	}
}

func RefundToUpdateParams(r *refund.Request) sqlc.UpdateRefundRequestParams {
	return sqlc.UpdateRefundRequestParams{
		ID:                  r.ID(),
		Status:              string(r.Status()),
		SettlementReference: pgconv.StringPtrToPgtype(r.SettlementReference()),
		ProcessedAt:         pgconv.TimePtrToPgtype(r.ProcessedAt()),
	}
}

func RefundFromRow(row sqlc.RefundRequests) (*refund.Request, error) {
	status := refund.Status(row.Status)
	if !status.IsValid() {
		return nil, errs.Wrapf(ErrInvalidRow, "refund %s status %q", row.ID, row.Status)
	}
	return refund.Reconstruct(
		row.ID,
		row.BookingID,
		row.UserID,
		money.FromCents(row.AmountCents),
		row.Reason,
		status,
		row.RequestReference,
		pgconv.StringPtrFromPgtype(row.SettlementReference),
		pgconv.TimeFromPgtype(row.RequestedAt),
		pgconv.TimePtrFromPgtype(row.ProcessedAt),
	), nil
}
