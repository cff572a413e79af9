package money

import (
	"errors"
	"fmt"
)

var ErrNegativeAmount = errors.New("amount cannot be negative")

// BasisPointsOne is a multiplier of 1.0 expressed in basis points.
const BasisPointsOne int64 = 10000

// Money holds an amount in minor currency units (cents).
type Money struct {
	cents int64
}

func New(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// FromCents skips validation; use for values already checked by storage constraints.
func FromCents(cents int64) Money {
	return Money{cents: cents}
}

// FromMajor converts whole currency units to minor units.
func FromMajor(units int64) Money {
	return Money{cents: units * 100}
}

func Zero() Money {
	return Money{}
}

func (m Money) Cents() int64 { return m.cents }
func (m Money) IsZero() bool { return m.cents == 0 }
func (m Money) Add(o Money) Money {
	return Money{cents: m.cents + o.cents}
}

func (m Money) Sub(o Money) Money {
	return Money{cents: m.cents - o.cents}
}

func (m Money) Mul(n int64) Money {
	return Money{cents: m.cents * n}
}

func (m Money) GreaterThan(o Money) bool {
	return m.cents > o.cents
}

// ApplyBasisPoints multiplies by bp/10000, rounding half up to a whole cent.
func (m Money) ApplyBasisPoints(bp int64) Money {
	return Money{cents: divRoundHalfUp(m.cents*bp, BasisPointsOne)}
}

// Percent returns pct percent of m, rounded half up.
func (m Money) Percent(pct int64) Money {
	return Money{cents: divRoundHalfUp(m.cents*pct, 100)}
}

func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

func divRoundHalfUp(num, den int64) int64 {
	if num >= 0 {
		return (num + den/2) / den
	}
	return -((-num + den/2) / den)
}
