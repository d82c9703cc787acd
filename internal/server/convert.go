package server

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"tarkov_trader/internal/domain/entity"
	"tarkov_trader/internal/domain/service/catalog"
	"tarkov_trader/internal/domain/service/pricing"
	"tarkov_trader/internal/domain/value"
	"tarkov_trader/pkg/rest"
)

const (
	roiDisplayPlaces = 1
	trendNotice      = "simulated, not real price history"
)

func newRESTItem(item entity.ResolvedItem) rest.Item {
	return rest.Item{
		ID:              item.ID,
		Name:            item.Name,
		ShortName:       item.ShortName,
		ImageURL:        item.ImageURL,
		AggregatePrice:  priceRef(item.AggregatePrice),
		LastKnownPrice:  priceRef(item.LastKnownPrice),
		BestMarketPrice: priceRef(item.BestMarketPrice),
		BestVendorPrice: priceRef(item.BestVendorPrice),
		BestVendor:      item.BestVendor,
		Profit:          priceRef(item.Profit),
		ROI:             priceRef(item.ROI),
		ROIRounded:      roundedRef(item.ROI, roiDisplayPlaces),
		Vendors:         lo.Map(pricing.VendorOffers(item.Item), newRESTOffer),
	}
}

func newRESTOffer(offer entity.Offer, _ int) rest.Offer {
	return rest.Offer{
		Source:   offer.Source,
		Price:    priceRef(offer.Price),
		Currency: offer.CurrencyOrDefault(),
	}
}

func newRESTItemList(view catalog.View) rest.ItemList {
	return rest.ItemList{
		Query:   view.Query,
		Preview: view.Preview,
		Matched: view.Matched,
		Total:   view.Total,
		Items: lo.Map(view.Items, func(item entity.ResolvedItem, _ int) rest.Item {
			return newRESTItem(item)
		}),
	}
}

func newRESTTrend(trend entity.Trend) rest.Trend {
	return rest.Trend{
		ItemID:       trend.ItemID,
		Illustrative: trend.Illustrative,
		Notice:       trendNotice,
		Samples: lo.Map(trend.Samples, func(sample entity.TrendSample, _ int) rest.TrendSample {
			return rest.TrendSample{
				At:    sample.At,
				Price: sample.Price,
			}
		}),
		Summary: rest.TrendSummary{
			High:          trend.Summary.High,
			Low:           trend.Summary.Low,
			Average:       trend.Summary.Average,
			Change:        trend.Summary.Change,
			ChangePercent: trend.Summary.ChangePercent,
		},
	}
}

func newRESTCatalogStatus(status catalog.Status) rest.CatalogStatus {
	return rest.CatalogStatus{
		Loaded:     status.Loaded,
		Items:      status.Items,
		LoadedAt:   timeRef(status.LoadedAt),
		LastError:  status.LastError,
		LastFailAt: timeRef(status.LastFailAt),
	}
}

func priceRef(p value.Price) *float64 {
	v, ok := p.Get()
	if !ok {
		return nil
	}

	return &v
}

func roundedRef(p value.Price, places int32) *float64 {
	v, ok := p.Get()
	if !ok {
		return nil
	}

	rounded, _ := decimal.NewFromFloat(v).Round(places).Float64()

	return &rounded
}

func timeRef(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}
