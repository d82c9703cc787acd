// Package rest holds the JSON models of the HTTP API.
package rest

import "time"

type Offer struct {
	Source   string   `json:"source"`
	Price    *float64 `json:"price"`
	Currency string   `json:"currency"`
}

type Item struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	ShortName       string   `json:"shortName,omitempty"`
	ImageURL        string   `json:"imageUrl,omitempty"`
	AggregatePrice  *float64 `json:"avg24hPrice"`
	LastKnownPrice  *float64 `json:"lastLowPrice"`
	BestMarketPrice *float64 `json:"bestMarketPrice"`
	BestVendorPrice *float64 `json:"bestVendorPrice"`
	BestVendor      string   `json:"bestVendor,omitempty"`
	Profit          *float64 `json:"profit"`
	// ROI Exact return on investment in percent
	ROI *float64 `json:"roi"`
	// ROIRounded ROI rounded to one decimal place for display
	ROIRounded *float64 `json:"roiRounded"`
	Vendors    []Offer  `json:"vendors"`
}

type ItemList struct {
	Query   string `json:"query"`
	Preview bool   `json:"preview"`
	Matched int    `json:"matched"`
	Total   int    `json:"total"`
	Items   []Item `json:"items"`
}

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

// Trend Synthetic price trend. Illustrative is always true.
type Trend struct {
	ItemID       string        `json:"itemId"`
	Illustrative bool          `json:"illustrative"`
	Notice       string        `json:"notice"`
	Samples      []TrendSample `json:"samples"`
	Summary      TrendSummary  `json:"summary"`
}

type CatalogStatus struct {
	Loaded     bool       `json:"loaded"`
	Items      int        `json:"items"`
	LoadedAt   *time.Time `json:"loadedAt"`
	LastError  string     `json:"lastError,omitempty"`
	LastFailAt *time.Time `json:"lastFailAt,omitempty"`
}

// Error Error model
type Error struct {
	// Code Error code
	Code ErrorCode `json:"code"`

	// Message Human readable error message
	Message string `json:"message"`

	SupportID string `json:"supportId"`
}

// ErrorCode Error code
type ErrorCode string
