package view

import (
	"math"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"tarkov_trader/internal/domain/entity"
	"tarkov_trader/internal/domain/value"
)

const notAvailable = "N/A"

var sparkBlocks = []rune("▁▂▃▄▅▆▇█") //nolint:gochecknoglobals

// Price renders p as a whole amount with grouped thousands, e.g. "12 500 ₽".
func Price(p value.Price, currency string) string {
	v, ok := p.Get()
	if !ok {
		return notAvailable
	}

	if currency == "" {
		currency = entity.DefaultCurrency
	}

	return groupThousands(decimal.NewFromFloat(v).Round(0).IntPart()) + " " + currency
}

// ROI renders a signed percentage with one decimal place.
func ROI(p value.Price) string {
	v, ok := p.Get()
	if !ok {
		return notAvailable
	}

	return Percent(v)
}

func Percent(v float64) string {
	sign := ""
	if v > 0 {
		sign = "+"
	}

	return sign + decimal.NewFromFloat(v).StringFixed(1) + "%"
}

// Sparkline draws one block per price, scaled between the lowest and the
// highest value. A flat series is drawn at mid height.
func Sparkline(prices []float64) string {
	if len(prices) == 0 {
		return ""
	}

	low, high := lo.Min(prices), lo.Max(prices)

	var b strings.Builder
	for _, p := range prices {
		ratio := 0.5
		if high > low {
			ratio = (p - low) / (high - low)
		}

		level := int(math.Round(ratio * float64(len(sparkBlocks)-1)))
		b.WriteRune(sparkBlocks[min(max(level, 0), len(sparkBlocks)-1)])
	}

	return b.String()
}

func groupThousands(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := decimal.NewFromInt(n).String()

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}

		b.WriteRune(d)
	}

	return sign + b.String()
}
