package pricing

import "tarkov_trader/internal/domain/value"

// Profit is market minus vendor. It is absent when either price is absent or
// zero, and when the difference itself is zero.
func Profit(market, vendor value.Price) value.Price {
	m, v, ok := operands(market, vendor)
	if !ok {
		return value.None()
	}

	if m == v {
		return value.None()
	}

	return value.Some(m - v)
}

// ROI is the return on buying from a vendor and selling on the market, in
// percent. Negative values are valid and mean a losing trade.
func ROI(market, vendor value.Price) value.Price {
	m, v, ok := operands(market, vendor)
	if !ok {
		return value.None()
	}

	return value.Some((m - v) / v * 100) //nolint:mnd // percent
}

func operands(market, vendor value.Price) (float64, float64, bool) {
	m, ok := market.Get()
	if !ok || m == 0 {
		return 0, 0, false
	}

	v, ok := vendor.Get()
	if !ok || v == 0 {
		return 0, 0, false
	}

	return m, v, true
}
