package tarkovdev_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"tarkov_trader/internal/domain"
	"tarkov_trader/internal/domain/entity"
	"tarkov_trader/internal/domain/value"
	"tarkov_trader/internal/infrastructure/tarkovdev"
	"tarkov_trader/pkg/errcodes"
)

const itemsResponse = `{
  "data": {
    "items": [
      {
        "id": "59e35ef086f7741777737012",
        "name": "Screw nut",
        "shortName": "Nut",
        "avg24hPrice": 7213,
        "lastLowPrice": 6999,
        "gridImageLink": "https://assets.tarkov.dev/nut.webp",
        "sellFor": [
          {"price": 7500, "currency": "RUB", "source": "fleaMarket"},
          {"price": 3036, "currency": null, "source": "therapist"},
          {"price": 0, "currency": "RUB", "source": "prapor"}
        ],
        "buyFor": null
      },
      {
        "id": "5d1b39a386f774252339976f",
        "name": null,
        "shortName": "Bolts",
        "avg24hPrice": null,
        "lastLowPrice": 0,
        "gridImageLink": null,
        "sellFor": null,
        "buyFor": [
          {"price": 20000, "currency": "RUB", "source": "flea-market"}
        ]
      }
    ]
  }
}`

func TestClientFetchItems(t *testing.T) {
	rq := require.New(t)

	var gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)

		rq.Equal(http.MethodPost, r.Method)
		rq.Equal("application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(itemsResponse))
	}))
	defer server.Close()

	items, err := tarkovdev.NewClient(server.URL, server.Client()).FetchItems(context.Background())
	rq.NoError(err)
	rq.Contains(gotBody, `"query"`)
	rq.Contains(gotBody, "sellFor")
	rq.Contains(gotBody, "buyFor")
	rq.Len(items, 2)

	nut := items[0]
	rq.Equal("Screw nut", nut.Name)
	rq.Equal("Nut", nut.ShortName)
	rq.Equal(value.Some(7213), nut.AggregatePrice)
	rq.Equal(value.Some(6999), nut.LastKnownPrice)
	rq.Equal("https://assets.tarkov.dev/nut.webp", nut.ImageURL)
	rq.Len(nut.MarketOffers, 3)
	rq.Equal(entity.DefaultCurrency, nut.MarketOffers[1].Currency)
	rq.False(nut.MarketOffers[2].Price.IsPresent())
	rq.Empty(nut.MarketBuyOffers)

	bolts := items[1]
	rq.Equal("Bolts", bolts.Name)
	rq.False(bolts.AggregatePrice.IsPresent())
	rq.False(bolts.LastKnownPrice.IsPresent())
	rq.Empty(bolts.MarketOffers)
	rq.Equal("flea-market", bolts.MarketBuyOffers[0].Source)
}

func TestClientFetchItemsErrors(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		status  int
		body    string
		code    string
		message string
	}{
		{
			name:    "HTTP error",
			status:  http.StatusBadGateway,
			body:    "bad gateway",
			code:    errcodes.ProviderUnavailable.String(),
			message: "Failed to load Tarkov market data: HTTP error! status: 502",
		},
		{
			name:    "GraphQL error",
			status:  http.StatusOK,
			body:    `{"errors":[{"message":"Syntax Error: Unexpected Name"},{"message":"second"}],"data":null}`,
			code:    errcodes.ProviderError.String(),
			message: "Failed to load Tarkov market data: Syntax Error: Unexpected Name",
		},
		{
			name:    "Missing data",
			status:  http.StatusOK,
			body:    `{}`,
			code:    errcodes.ProviderError.String(),
			message: "Failed to load Tarkov market data: response has no data",
		},
		{
			name:   "Malformed JSON",
			status: http.StatusOK,
			body:   `{"data":`,
			code:   errcodes.ProviderError.String(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			_, err := tarkovdev.NewClient(server.URL, server.Client()).FetchItems(context.Background())
			rq.Error(err)

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(tc.code, code.String())

			if tc.message != "" {
				rq.EqualError(err, tc.message)
			}
		})
	}
}

func TestClientTransportFailure(t *testing.T) {
	rq := require.New(t)

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := tarkovdev.NewClient(url, nil).FetchItems(context.Background())
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.ProviderUnavailable, code)
}
