// Package trend generates illustrative price trends. There is no price
// history behind it: samples are derived from the current price with a fixed
// curve and random jitter, and every Trend is marked Illustrative.
package trend

import (
	"math"
	"math/rand"
	"time"

	"github.com/samber/lo"

	"tarkov_trader/internal/domain/entity"
	"tarkov_trader/internal/domain/value"
)

const (
	SampleCount = 12
	MaxJitter   = 0.08
)

// curve dips in the oldest hours, peaks near the end and settles on the
// anchor price.
//
//nolint:gochecknoglobals,mnd
var curve = [SampleCount]float64{0.92, 0.90, 0.93, 0.95, 0.97, 1.00, 1.02, 1.04, 1.06, 1.05, 1.03, 1.00}

type Generator struct {
	random func() float64
}

// NewGenerator returns a generator using random as a source of floats in
// [0, 1). A nil random uses a time-seeded source.
func NewGenerator(random func() float64) Generator {
	if random == nil {
		random = rand.New(rand.NewSource(time.Now().UnixNano())).Float64 //nolint:gosec // not security sensitive
	}

	return Generator{random: random}
}

// Generate returns SampleCount hourly samples ending at now, or none when the
// anchor is absent or not positive.
func (g Generator) Generate(itemID string, anchor value.Price, now time.Time) entity.Trend {
	trend := entity.Trend{
		ItemID:       itemID,
		Samples:      []entity.TrendSample{},
		Illustrative: true,
	}

	if !anchor.IsPositive() {
		return trend
	}

	price := anchor.OrZero()
	last := now.Truncate(time.Hour)

	trend.Anchor = price
	trend.Samples = make([]entity.TrendSample, SampleCount)

	for i := range SampleCount {
		jitter := (g.random()*2 - 1) * MaxJitter

		trend.Samples[i] = entity.TrendSample{
			At:    last.Add(-time.Duration(SampleCount-1-i) * time.Hour),
			Price: math.Round(price * curve[i] * (1 + jitter)),
		}
	}

	trend.Summary = Summarize(trend.Samples)

	return trend
}

func Summarize(samples []entity.TrendSample) entity.TrendSummary {
	if len(samples) == 0 {
		return entity.TrendSummary{}
	}

	prices := lo.Map(samples, func(s entity.TrendSample, _ int) float64 { return s.Price })

	first, last := prices[0], prices[len(prices)-1]

	summary := entity.TrendSummary{
		High:    lo.Max(prices),
		Low:     lo.Min(prices),
		Average: math.Round(lo.Sum(prices) / float64(len(prices))),
		Change:  last - first,
	}

	if first != 0 {
		summary.ChangePercent = (last - first) / first * 100 //nolint:mnd // percent
	}

	return summary
}
