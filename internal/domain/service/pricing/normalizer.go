// Package pricing derives best prices and trading metrics for items. It is
// the only place in the service where offers are interpreted.
package pricing

import "tarkov_trader/internal/domain/entity"

// Open-market source tags. Both spellings occur in upstream data.
const (
	SourceFleaMarket       = "fleaMarket"
	SourceFleaMarketHyphen = "flea-market"
)

type Kind int

const (
	KindVendor Kind = iota
	KindMarket
)

func (k Kind) String() string {
	if k == KindMarket {
		return "market"
	}

	return "vendor"
}

// Classification is the result of classifying one offer. Vendor holds the
// source verbatim for vendor offers and is empty for market offers.
type Classification struct {
	Kind   Kind
	Vendor string
}

// Classify tells open-market offers from vendor offers. Source is compared
// exactly; no case folding or trimming is applied.
func Classify(offer entity.Offer) Classification {
	if IsMarketSource(offer.Source) {
		return Classification{Kind: KindMarket}
	}

	return Classification{Kind: KindVendor, Vendor: offer.Source}
}

func IsMarketSource(source string) bool {
	return source == SourceFleaMarket || source == SourceFleaMarketHyphen
}
