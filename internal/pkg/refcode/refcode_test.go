//go:build unit

package refcode_test

import (
	"testing"
	"time"

	"hotel-booking-core/internal/pkg/refcode"

	"github.com/stretchr/testify/assert"
)

func TestGenerator(t *testing.T) {
	g := refcode.NewGenerator()
	now := time.Date(2025, 3, 7, 23, 59, 0, 0, time.UTC)

	bk := g.BookingReference(now)
	assert.Regexp(t, `^BK-250307-[0-9A-HJKMNP-TV-Z]{8}$`, bk)
	assert.True(t, refcode.HasPrefix(bk, refcode.PrefixBooking))
	assert.False(t, refcode.HasPrefix(bk, refcode.PrefixRefund))

	assert.Regexp(t, `^REF-250307-`, g.RequestReference(now))
	assert.Regexp(t, `^RFD-250307-`, g.SettlementReference(now))

	seen := map[string]struct{}{}
	for range 1000 {
		seen[g.BookingReference(now)] = struct{}{}
	}
	assert.Len(t, seen, 1000)
}

func TestFormat(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	// 2025-03-08 08:00 JST is still 2025-03-07 in UTC
	at := time.Date(2025, 3, 8, 8, 0, 0, 0, jst)
	assert.Equal(t, "BK-250307-ABCDEFGH", refcode.Format(refcode.PrefixBooking, at, "ABCDEFGH"))
}
