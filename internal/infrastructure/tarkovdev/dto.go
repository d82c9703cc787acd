package tarkovdev

import (
	"cmp"

	"tarkov_trader/internal/domain/entity"
	"tarkov_trader/internal/domain/value"
	"tarkov_trader/pkg/lox"
)

type graphQLRequest struct {
	Query string `json:"query"`
}

type graphQLResponse struct {
	Data   *itemsData     `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type itemsData struct {
	Items []itemSchema `json:"items"`
}

// itemSchema mirrors the provider payload. Every scalar may be null.
type itemSchema struct {
	ID            string        `json:"id"`
	Name          *string       `json:"name"`
	ShortName     *string       `json:"shortName"`
	Avg24hPrice   *float64      `json:"avg24hPrice"`
	LastLowPrice  *float64      `json:"lastLowPrice"`
	GridImageLink *string       `json:"gridImageLink"`
	SellFor       []offerSchema `json:"sellFor"`
	BuyFor        []offerSchema `json:"buyFor"`
}

type offerSchema struct {
	Price    *float64 `json:"price"`
	Currency *string  `json:"currency"`
	Source   *string  `json:"source"`
}

func (s itemSchema) toDomain() entity.Item {
	shortName := deref(s.ShortName)

	return entity.Item{
		ID:              s.ID,
		Name:            cmp.Or(deref(s.Name), shortName, s.ID),
		ShortName:       shortName,
		AggregatePrice:  value.PositiveOf(s.Avg24hPrice),
		LastKnownPrice:  value.PositiveOf(s.LastLowPrice),
		ImageURL:        deref(s.GridImageLink),
		MarketOffers:    lox.Map(s.SellFor, offerSchema.toDomain),
		MarketBuyOffers: lox.Map(s.BuyFor, offerSchema.toDomain),
	}
}

func (s offerSchema) toDomain() entity.Offer {
	return entity.Offer{
		Price:    value.PositiveOf(s.Price),
		Currency: cmp.Or(deref(s.Currency), entity.DefaultCurrency),
		Source:   deref(s.Source),
	}
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}

	return *v
}
