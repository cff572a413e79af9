//go:build unit

package money_test

import (
	"testing"

	"hotel-booking-core/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m, err := money.New(1250)
	require.NoError(t, err)
	assert.Equal(t, int64(1250), m.Cents())

	_, err = money.New(-1)
	require.ErrorIs(t, err, money.ErrNegativeAmount)
}

func TestApplyBasisPoints(t *testing.T) {
	cases := []struct {
		name  string
		cents int64
		bp    int64
		want  int64
	}{
		{name: "identity", cents: 15000, bp: 10000, want: 15000},
		{name: "surge 1.5", cents: 15000, bp: 15000, want: 22500},
		{name: "rounds half up", cents: 10001, bp: 15000, want: 15002},
		{name: "rounds down below half", cents: 3333, bp: 12500, want: 4166},
		{name: "zero surge", cents: 9999, bp: 0, want: 0},
		{name: "fractional surge", cents: 100, bp: 12345, want: 123},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := money.FromCents(c.cents).ApplyBasisPoints(c.bp)
			assert.Equal(t, c.want, got.Cents())
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, int64(2000), money.FromCents(10000).Percent(20).Cents())
	assert.Equal(t, int64(1), money.FromCents(5).Percent(15).Cents())
	assert.Equal(t, int64(0), money.FromCents(3).Percent(10).Cents())
}

func TestArithmetic(t *testing.T) {
	a := money.FromMajor(150)
	b := money.FromCents(2550)

	assert.Equal(t, int64(15000), a.Cents())
	assert.Equal(t, int64(17550), a.Add(b).Cents())
	assert.Equal(t, int64(12450), a.Sub(b).Cents())
	assert.Equal(t, int64(45000), a.Mul(3).Cents())
	assert.True(t, a.GreaterThan(b))
	assert.True(t, money.Zero().IsZero())
}

func TestString(t *testing.T) {
	assert.Equal(t, "150.00", money.FromMajor(150).String())
	assert.Equal(t, "0.05", money.FromCents(5).String())
	assert.Equal(t, "-12.34", money.FromCents(-1234).String())
}
