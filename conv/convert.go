package conv

import "github.com/ericlagergren/decimal"

var zeroRounded decimal.Big

func init() {
	zeroRounded = decimal.Big{}
	zeroRounded.Context = decimal.Context128
	zeroRounded.Context.RoundingMode = decimal.ToZero
	zeroRounded.Quantize(8)
}

// NewDecimalWithPrecision returns a fresh zero with the platform decimal context
func NewDecimalWithPrecision() *decimal.Big {
	z := zeroRounded
	return &z
}

// Percent computes x * pct / 100 without rounding the result
func Percent(x *decimal.Big, pct float64) *decimal.Big {
	p := NewDecimalWithPrecision().SetFloat64(pct)
	hundred := NewDecimalWithPrecision().SetUint64(100)
	z := NewDecimalWithPrecision().Mul(x, p)
	return z.Quo(z, hundred)
}

// RoundWholeHalfUp rounds x to the nearest whole currency unit, half away from
// zero. The task commission schedule applies this per level independently, so the
// sum of the rounded levels may deviate from a rounded total. That deviation is
// part of the payout contract and must stay stable across recomputations.
func RoundWholeHalfUp(x *decimal.Big) *decimal.Big {
	z := new(decimal.Big)
	z.Context = decimal.Context128
	z.Context.RoundingMode = decimal.ToNearestAway
	z.Copy(x)
	return z.RoundToInt()
}
