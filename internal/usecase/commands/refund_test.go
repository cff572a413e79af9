//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-booking-core/internal/domain/refund"
	"hotel-booking-core/internal/domain/user"
	"hotel-booking-core/internal/pkg/errs"
	"hotel-booking-core/internal/pkg/refcode"
	"hotel-booking-core/internal/usecase/commands"
	"hotel-booking-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestRefund(t *testing.T) {
	ctx := context.Background()

	t.Run("pending refund against a paid booking", func(t *testing.T) {
		f := newFixture(t, defaultConfig())
		b := f.mustCreate(t, f.guest, createInput("2025-07-01", "2025-07-03", 1))
		f.mustPay(t, b.ID)

		r, err := f.refunds.Request(ctx, f.guest, b.ID, commands.RequestRefundInput{AmountCents: 5000, Reason: "left early"})
		require.NoError(t, err)
		assert.Equal(t, string(refund.StatusPending), r.Status)
		assert.True(t, refcode.HasPrefix(r.RequestReference, refcode.PrefixRefund))
		assert.Nil(t, r.SettlementReference)
		assert.Equal(t, commands.EventRefundRequested, f.jobKinds()[len(f.jobKinds())-1])
	})

	t.Run("unpaid booking", func(t *testing.T) {
		f := newFixture(t, defaultConfig())
		b := f.mustCreate(t, f.guest, createInput("2025-07-01", "2025-07-03", 1))

		_, err := f.refunds.Request(ctx, f.guest, b.ID, commands.RequestRefundInput{AmountCents: 5000, Reason: "x"})
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
	})

	t.Run("amounts are bounded by the booking total", func(t *testing.T) {
		f := newFixture(t, defaultConfig())
		b := f.mustCreate(t, f.guest, createInput("2025-07-01", "2025-07-03", 1))
		f.mustPay(t, b.ID)

		first, err := f.refunds.Request(ctx, f.guest, b.ID, commands.RequestRefundInput{AmountCents: 15000, Reason: "first"})
		require.NoError(t, err)

		_, err = f.refunds.Request(ctx, f.guest, b.ID, commands.RequestRefundInput{AmountCents: 5001, Reason: "second"})
		assert.True(t, errs.Is(err, errs.ErrRefundExceedsTotal))

		_, err = f.refunds.Decide(ctx, f.staff, first.ID, false)
		require.NoError(t, err)
		_, err = f.refunds.Request(ctx, f.guest, b.ID, commands.RequestRefundInput{AmountCents: 20000, Reason: "after rejection"})
		assert.NoError(t, err, "rejected refunds no longer count against the total")
	})

	t.Run("invalid input", func(t *testing.T) {
		f := newFixture(t, defaultConfig())
		b := f.mustCreate(t, f.guest, createInput("2025-07-01", "2025-07-03", 1))
		f.mustPay(t, b.ID)

		for _, in := range []commands.RequestRefundInput{
			{AmountCents: 0, Reason: "zero"},
			{AmountCents: -100, Reason: "negative"},
			{AmountCents: 100, Reason: "   "},
		} {
			_, err := f.refunds.Request(ctx, f.guest, b.ID, in)
			assert.True(t, errs.Is(err, errs.ErrValidation), "input %+v got %v", in, err)
		}
	})

	t.Run("other guests see not found", func(t *testing.T) {
		f := newFixture(t, defaultConfig())
		b := f.mustCreate(t, f.guest, createInput("2025-07-01", "2025-07-03", 1))
		f.mustPay(t, b.ID)
		stranger := shared.Actor{UserID: uuid.New(), Role: user.RoleGuest}

		_, err := f.refunds.Request(ctx, stranger, b.ID, commands.RequestRefundInput{AmountCents: 100, Reason: "x"})
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestDecideRefund(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, defaultConfig())
	b := f.mustCreate(t, f.guest, createInput("2025-07-01", "2025-07-03", 1))
	f.mustPay(t, b.ID)
	r, err := f.refunds.Request(ctx, f.guest, b.ID, commands.RequestRefundInput{AmountCents: 5000, Reason: "left early"})
	require.NoError(t, err)

	_, err = f.refunds.Decide(ctx, f.guest, r.ID, true)
	require.True(t, errs.Is(err, errs.ErrForbidden))

	decided, err := f.refunds.Decide(ctx, f.staff, r.ID, true)
	require.NoError(t, err)
	assert.Equal(t, string(refund.StatusApproved), decided.Status)
	require.NotNil(t, decided.SettlementReference)
	assert.True(t, refcode.HasPrefix(*decided.SettlementReference, refcode.PrefixSettlement))
	require.NotNil(t, decided.ProcessedAt)
	assert.Equal(t, commands.EventRefundDecided, f.jobKinds()[len(f.jobKinds())-1])

	_, err = f.refunds.Decide(ctx, f.staff, r.ID, false)
	assert.True(t, errs.Is(err, errs.ErrInvalidTransition))

	booking, err := f.bookings.Cancel(ctx, f.guest, b.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "paid", booking.PaymentStatus, "deciding a refund never touches payment status")

	_, err = f.refunds.Decide(ctx, f.staff, uuid.New(), true)
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}
