package response

import (
	"time"

	"hotel-booking-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type RefundResponse struct {
	ID                  uuid.UUID  `json:"id"`
	BookingID           uuid.UUID  `json:"booking_id"`
	UserID              uuid.UUID  `json:"user_id"`
	AmountCents         int64      `json:"amount_cents"`
	Reason              string     `json:"reason"`
	Status              string     `json:"status"`
	RequestReference    string     `json:"request_reference"`
	SettlementReference *string    `json:"settlement_reference,omitempty"`
	RequestedAt         time.Time  `json:"requested_at"`
	ProcessedAt         *time.Time `json:"processed_at,omitempty"`
}

func FromRefundView(v *queries.RefundView) *RefundResponse {
	var res RefundResponse
	copyView(&res, v)
	return &res
}

func FromRefundViews(views []*queries.RefundView) []*RefundResponse {
	res := make([]*RefundResponse, len(views))
	for i, v := range views {
		res[i] = FromRefundView(v)
	}
	return res
}
