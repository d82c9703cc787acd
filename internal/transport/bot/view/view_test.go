package view_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tarkov_trader/internal/domain"
	"tarkov_trader/internal/domain/entity"
	"tarkov_trader/internal/domain/service/catalog"
	"tarkov_trader/internal/domain/service/pricing"
	"tarkov_trader/internal/domain/value"
	"tarkov_trader/internal/transport/bot/view"
	"tarkov_trader/pkg/errcodes"
)

func TestPrice(t *testing.T) {
	testCases := []struct {
		name     string
		price    value.Price
		currency string
		want     string
	}{
		{name: "Absent", price: value.None(), want: "N/A"},
		{name: "Small", price: value.Some(600), want: "600 ₽"},
		{name: "Grouped", price: value.Some(1234567), want: "1 234 567 ₽"},
		{name: "Rounded", price: value.Some(999.6), want: "1 000 ₽"},
		{name: "Negative", price: value.Some(-12500), want: "-12 500 ₽"},
		{name: "Currency", price: value.Some(150), currency: "$", want: "150 $"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, view.Price(tc.price, tc.currency))
		})
	}
}

func TestROI(t *testing.T) {
	rq := require.New(t)

	rq.Equal("N/A", view.ROI(value.None()))
	rq.Equal("+66.7%", view.ROI(value.Some(200.0/3)))
	rq.Equal("-12.5%", view.ROI(value.Some(-12.5)))
	rq.Equal("0.0%", view.ROI(value.Some(0)))
}

func TestSparkline(t *testing.T) {
	rq := require.New(t)

	rq.Empty(view.Sparkline(nil))
	rq.Equal("▁█", view.Sparkline([]float64{1, 2}))
	rq.Equal("▅▅▅", view.Sparkline([]float64{3, 3, 3}))
}

func TestSearchPage(t *testing.T) {
	rq := require.New(t)

	item := entity.ResolvedItem{
		Item:            entity.Item{ID: "a1", Name: "Bolt <Cutter>"},
		BestMarketPrice: value.Some(1000),
		BestVendorPrice: value.Some(600),
		BestVendor:      "Therapist",
		Profit:          value.Some(400),
		ROI:             value.Some(66.666),
	}

	text := view.SearchPage(
		catalog.View{Query: "bolt", Matched: 1, Total: 8},
		[]entity.ResolvedItem{item},
		1, 1,
	)

	rq.Contains(text, "Showing 1 of 8 items")
	rq.Contains(text, "Bolt &lt;Cutter&gt;")
	rq.Contains(text, "Therapist: 600 ₽")
	rq.Contains(text, "ROI: +66.7%")
	rq.NotContains(text, "page")

	rq.Contains(view.SearchPage(catalog.View{Query: "zzz", Total: 8}, nil, 1, 1), "Nothing found")
}

func TestTrend(t *testing.T) {
	rq := require.New(t)

	item := entity.ResolvedItem{Item: entity.Item{ID: "a1", Name: "Salewa"}}

	empty := view.Trend(item, entity.Trend{ItemID: "a1", Illustrative: true})
	rq.Contains(empty, "No price to build a trend from")
	rq.Contains(empty, "Simulated")

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	text := view.Trend(item, entity.Trend{
		ItemID:       "a1",
		Illustrative: true,
		Samples: []entity.TrendSample{
			{At: now.Add(-time.Hour), Price: 9000},
			{At: now, Price: 10000},
		},
		Summary: entity.TrendSummary{High: 10000, Low: 9000, Average: 9500, Change: 1000, ChangePercent: 11.11},
	})
	rq.Contains(text, "▁█")
	rq.Contains(text, "High: 10 000")
	rq.Contains(text, "Change: 1 000 (+11.1%)")
}

func TestStatus(t *testing.T) {
	rq := require.New(t)

	rq.Contains(view.Status(catalog.Status{}), "not loaded yet")

	loadedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	text := view.Status(catalog.Status{
		Loaded:     true,
		Items:      42,
		LoadedAt:   loadedAt,
		LastError:  "boom",
		LastFailAt: loadedAt.Add(time.Hour),
	})
	rq.Contains(text, "42 items loaded at 2024-05-01 12:00:00")
	rq.Contains(text, "Last reload failed at 2024-05-01 13:00:00: boom")
}

func TestError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "Not loaded",
			err:  fmt.Errorf("svc: %w", domain.NewError(errcodes.CatalogNotLoaded, "not loaded")),
			want: "⏳ Market data is not loaded yet, try again shortly",
		},
		{
			name: "Not found",
			err:  domain.NewError(errcodes.ItemNotFound, "item not found"),
			want: "❓ Item not found",
		},
		{
			name: "Provider",
			err:  domain.WrapError(errors.New("timeout"), errcodes.ProviderUnavailable, "Failed"),
			want: "⚠️ Failed to load Tarkov market data",
		},
		{
			name: "Unknown",
			err:  errors.New("boom"),
			want: "⚠️ Something went wrong",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, view.Error(tc.err))
		})
	}
}

func TestROIOnlyNextToProfit(t *testing.T) {
	testCases := []struct {
		name    string
		offers  []entity.Offer
		wantROI string
	}{
		{
			name: "Equal prices",
			offers: []entity.Offer{
				{Source: "fleaMarket", Price: value.Some(500)},
				{Source: "prapor", Price: value.Some(500)},
			},
		},
		{
			name: "No vendor",
			offers: []entity.Offer{
				{Source: "fleaMarket", Price: value.Some(500)},
			},
		},
		{
			name: "Profitable",
			offers: []entity.Offer{
				{Source: "fleaMarket", Price: value.Some(1000)},
				{Source: "therapist", Price: value.Some(600)},
			},
			wantROI: "ROI: +66.7%",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			item := pricing.ResolveItem(entity.Item{ID: "a1", Name: "Filter", MarketOffers: tc.offers})

			line := view.ItemLine(item)
			card := view.Item(item)

			if tc.wantROI == "" {
				rq.Contains(line, "Profit: N/A\n")
				rq.NotContains(line, "ROI")
				rq.NotContains(card, "ROI")

				return
			}

			rq.Contains(line, tc.wantROI)
			rq.Contains(card, tc.wantROI)
		})
	}
}

func TestDigestFitsMessageLimit(t *testing.T) {
	rq := require.New(t)

	loadedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	items := make([]entity.ResolvedItem, 200)
	for i := range items {
		items[i] = entity.ResolvedItem{
			Item:            entity.Item{ID: fmt.Sprintf("%024d", i), Name: strings.Repeat("Bolt Cutter ", 4)},
			BestMarketPrice: value.Some(1000),
			BestVendorPrice: value.Some(600),
			BestVendor:      "Therapist",
			Profit:          value.Some(400),
			ROI:             value.Some(66.666),
		}
	}

	text := view.Digest(items, loadedAt)
	rq.LessOrEqual(len(text), view.MaxMessageLength)
	rq.Contains(text, "1. <b>Bolt Cutter")
	rq.NotContains(text, "Top 200 by ROI")

	short := view.Digest(items[:2], loadedAt)
	rq.Contains(short, "Top 2 by ROI")
	rq.Contains(short, "2. <b>Bolt Cutter")
}
