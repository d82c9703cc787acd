package value

import (
	"math"
	"strconv"
)

// Price is an optional amount of in-game currency. The zero value is absent.
type Price struct {
	amount  float64
	present bool
}

func Some(amount float64) Price {
	return Price{amount: amount, present: true}
}

func None() Price {
	return Price{}
}

// PositiveOf returns a present price only for finite amounts above zero.
// Upstream data uses 0 and null interchangeably for "no price".
func PositiveOf(amount *float64) Price {
	if amount == nil || !(*amount > 0) || math.IsInf(*amount, 0) {
		return None()
	}

	return Some(*amount)
}

func (p Price) Get() (float64, bool) {
	return p.amount, p.present
}

func (p Price) IsPresent() bool {
	return p.present
}

// IsPositive reports whether the price is present and strictly above zero.
func (p Price) IsPositive() bool {
	return p.present && p.amount > 0 && !math.IsInf(p.amount, 0)
}

func (p Price) OrZero() float64 {
	if !p.present {
		return 0
	}

	return p.amount
}

// Or returns p when present, otherwise fallback.
func (p Price) Or(fallback Price) Price {
	if p.present {
		return p
	}

	return fallback
}

func (p Price) String() string {
	if !p.present {
		return "N/A"
	}

	return strconv.FormatFloat(p.amount, 'f', -1, 64)
}

func (p Price) MarshalJSON() ([]byte, error) {
	if !p.present || math.IsNaN(p.amount) || math.IsInf(p.amount, 0) {
		return []byte("null"), nil
	}

	return strconv.AppendFloat(nil, p.amount, 'f', -1, 64), nil
}

func (p *Price) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = None()
		return nil
	}

	amount, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}

	*p = Some(amount)

	return nil
}
