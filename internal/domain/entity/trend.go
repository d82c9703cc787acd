package entity

import "time"

// TrendSample is one hourly point of a price trend.
type TrendSample struct {
	At    time.Time `json:"at"`
	Price float64   `json:"price"`
}

type TrendSummary struct {
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Average       float64 `json:"average"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}

// Trend is a synthetic price history. Illustrative is always true: the
// samples are generated from the current price, not read from real history.
type Trend struct {
	ItemID       string        `json:"itemId"`
	Anchor       float64       `json:"anchor"`
	Samples      []TrendSample `json:"samples"`
	Summary      TrendSummary  `json:"summary"`
	Illustrative bool          `json:"illustrative"`
}
