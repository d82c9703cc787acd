package entity

import "tarkov_trader/internal/domain/value"

// DefaultCurrency is the open-market currency symbol assumed when an offer
// carries none.
const DefaultCurrency = "₽"

// Item is one tradeable entity as delivered by the market data provider.
type Item struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	ShortName       string      `json:"shortName"`
	AggregatePrice  value.Price `json:"avg24hPrice"`
	LastKnownPrice  value.Price `json:"lastLowPrice"`
	ImageURL        string      `json:"imageUrl"`
	MarketOffers    []Offer     `json:"sellFor"`
	MarketBuyOffers []Offer     `json:"buyFor"`
}

// Offer is one quoted price for an item from one source.
type Offer struct {
	Price    value.Price `json:"price"`
	Currency string      `json:"currency"`
	Source   string      `json:"source"`
}

func (o Offer) CurrencyOrDefault() string {
	if o.Currency == "" {
		return DefaultCurrency
	}

	return o.Currency
}
