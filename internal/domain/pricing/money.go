package pricing

import "errors"

// Money is an amount in minor currency units (cents). All pricing
// arithmetic stays in integers; ratios are resolved with rounded
// integer division so totals never accumulate floating point error.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromInt(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) Positive() bool {
	return m.cents > 0
}

// roundDiv divides two non-negative integers rounding to the nearest
// unit, halves away from zero.
func roundDiv(num, den int64) int64 {
	return (num + den/2) / den
}
