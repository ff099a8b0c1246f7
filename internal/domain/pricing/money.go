package pricing

import "math/big"

// Money is an exact monetary amount backed by a rational number.
//
// The charge composition pipeline recomputes totals on every mutation, so
// amounts are kept exact internally and only rounded when rendered. The zero
// value is usable and equals 0.

type Money struct {
	rat *big.Rat
}

func MoneyFromFloat(v float64) Money {
	r := new(big.Rat)
	r.SetFloat64(v)
	return Money{rat: r}
}

func MoneyZero() Money {
	return Money{rat: new(big.Rat)}
}

func (m Money) r() *big.Rat {
	if m.rat == nil {
		return new(big.Rat)
	}
	return m.rat
}

func (m Money) Add(n Money) Money {
	return Money{rat: new(big.Rat).Add(m.r(), n.r())}
}

func (m Money) Sub(n Money) Money {
	return Money{rat: new(big.Rat).Sub(m.r(), n.r())}
}

func (m Money) MulFloat(v float64) Money {
	f := new(big.Rat)
	f.SetFloat64(v)
	return Money{rat: new(big.Rat).Mul(m.r(), f)}
}

// DivFloat divides by v. v must be non-zero; callers validate first.
func (m Money) DivFloat(v float64) Money {
	f := new(big.Rat)
	f.SetFloat64(v)
	return Money{rat: new(big.Rat).Quo(m.r(), f)}
}

// Percent returns m * p/100 without intermediate rounding.
func (m Money) Percent(p float64) Money {
	f := new(big.Rat)
	f.SetFloat64(p)
	f.Quo(f, big.NewRat(100, 1))
	return Money{rat: new(big.Rat).Mul(m.r(), f)}
}

func (m Money) Equal(n Money) bool {
	return m.r().Cmp(n.r()) == 0
}

func (m Money) Cmp(n Money) int {
	return m.r().Cmp(n.r())
}

func (m Money) IsZero() bool {
	return m.r().Sign() == 0
}

func (m Money) Float64() float64 {
	f, _ := m.r().Float64()
	return f
}

// StringFixed renders the amount rounded to the given number of decimal
// places. This is the only place rounding happens.
func (m Money) StringFixed(places int) string {
	return m.r().FloatString(places)
}
