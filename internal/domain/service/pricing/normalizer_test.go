package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tarkov_trader/internal/domain/entity"
	"tarkov_trader/internal/domain/service/pricing"
)

func TestClassify(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		source string
		kind   pricing.Kind
		vendor string
	}{
		{name: "Market single token", source: "fleaMarket", kind: pricing.KindMarket},
		{name: "Market hyphenated", source: "flea-market", kind: pricing.KindMarket},
		{name: "Vendor", source: "therapist", kind: pricing.KindVendor, vendor: "therapist"},
		{name: "No case folding", source: "FleaMarket", kind: pricing.KindVendor, vendor: "FleaMarket"},
		{name: "No trimming", source: " fleaMarket", kind: pricing.KindVendor, vendor: " fleaMarket"},
		{name: "Empty source", source: "", kind: pricing.KindVendor, vendor: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			got := pricing.Classify(entity.Offer{Source: tc.source})

			rq.Equal(tc.kind, got.Kind)
			rq.Equal(tc.vendor, got.Vendor)
		})
	}
}
