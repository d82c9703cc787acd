package pricing

import (
	"github.com/samber/lo"

	"tarkov_trader/internal/domain/entity"
	"tarkov_trader/internal/domain/value"
)

type Resolution struct {
	Market      value.Price
	Vendor      value.Price
	VendorLabel string
}

// Resolve picks the best market and vendor price for an item.
//
// Market price falls back in order: highest market sell offer, highest market
// buy offer, aggregate price. Vendor price is the highest vendor sell offer;
// vendor buy offers never count. Offers without a positive price are ignored.
// On equal prices the first offer in input order wins.
func Resolve(item entity.Item) Resolution {
	var res Resolution

	if best, ok := bestOffer(item.MarketOffers, KindMarket); ok {
		res.Market = best.Price
	} else if best, ok := bestOffer(item.MarketBuyOffers, KindMarket); ok {
		res.Market = best.Price
	} else if item.AggregatePrice.IsPositive() {
		res.Market = item.AggregatePrice
	}

	if best, ok := bestOffer(item.MarketOffers, KindVendor); ok {
		res.Vendor = best.Price
		res.VendorLabel = best.Source
	}

	return res
}

// ResolveItem resolves prices and metrics into a ResolvedItem.
func ResolveItem(item entity.Item) entity.ResolvedItem {
	res := Resolve(item)

	return entity.ResolvedItem{
		Item:            item,
		BestMarketPrice: res.Market,
		BestVendorPrice: res.Vendor,
		BestVendor:      res.VendorLabel,
		Profit:          Profit(res.Market, res.Vendor),
		ROI:             ROI(res.Market, res.Vendor),
	}
}

// VendorOffers returns the vendor offers of an item with a usable price, in
// input order.
func VendorOffers(item entity.Item) []entity.Offer {
	return candidates(item.MarketOffers, KindVendor)
}

func candidates(offers []entity.Offer, kind Kind) []entity.Offer {
	return lo.Filter(offers, func(o entity.Offer, _ int) bool {
		return o.Price.IsPositive() && Classify(o).Kind == kind
	})
}

func bestOffer(offers []entity.Offer, kind Kind) (entity.Offer, bool) {
	found := candidates(offers, kind)
	if len(found) == 0 {
		return entity.Offer{}, false
	}

	return lo.MaxBy(found, func(a, b entity.Offer) bool {
		return a.Price.OrZero() > b.Price.OrZero()
	}), true
}
