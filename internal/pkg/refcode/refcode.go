package refcode

import (
	"encoding/base32"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	PrefixBooking    = "BK"
	PrefixRefund     = "REF"
	PrefixSettlement = "RFD"

	suffixLength = 8
)

// Crockford-style alphabet without I, L, O, U.
var encoding = base32.NewEncoding("0123456789ABCDEFGHJKMNPQRSTVWXYZ").WithPadding(base32.NoPadding)

// Generator issues human-readable references of the form PREFIX-YYMMDD-XXXXXXXX.
// Uniqueness is enforced by the store; the suffix carries 40 bits of randomness.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) BookingReference(now time.Time) string {
	return Format(PrefixBooking, now, newSuffix())
}

func (g *Generator) RequestReference(now time.Time) string {
	return Format(PrefixRefund, now, newSuffix())
}

func (g *Generator) SettlementReference(now time.Time) string {
	return Format(PrefixSettlement, now, newSuffix())
}

func Format(prefix string, now time.Time, suffix string) string {
	var b strings.Builder
	b.Grow(len(prefix) + 1 + 6 + 1 + len(suffix))
	b.WriteString(prefix)
	b.WriteByte('-')
	b.WriteString(now.UTC().Format("060102"))
	b.WriteByte('-')
	b.WriteString(suffix)
	return b.String()
}

// HasPrefix reports whether ref looks like a reference issued with prefix.
func HasPrefix(ref, prefix string) bool {
	parts := strings.Split(ref, "-")
	return len(parts) == 3 && parts[0] == prefix && len(parts[1]) == 6 && len(parts[2]) == suffixLength
}

func newSuffix() string {
	id := uuid.New()
	return encoding.EncodeToString(id[:5])
}
