package request

import (
	"strings"

	"hotel-booking-core/internal/usecase/commands"
)

type RequestRefundRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Reason      string `json:"reason" binding:"required,max=1000"`
}

func (r RequestRefundRequest) ToInput() commands.RequestRefundInput {
	return commands.RequestRefundInput{
		AmountCents: r.AmountCents,
		Reason:      strings.TrimSpace(r.Reason),
	}
}

type RefundDecisionRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}
