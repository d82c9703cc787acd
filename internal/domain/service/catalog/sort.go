package catalog

import (
	"sort"
	"strings"

	"tarkov_trader/internal/domain/entity"
	"tarkov_trader/internal/domain/value"
)

// SortField selects which item column to sort by. The empty field keeps
// catalog order.
type SortField string

const (
	SortFieldNone   SortField = ""
	SortFieldName   SortField = "name"
	SortFieldMarket SortField = "market"
	SortFieldVendor SortField = "vendor"
	SortFieldProfit SortField = "profit"
	SortFieldROI    SortField = "roi"
)

type SortDirection string

const (
	SortDirectionAsc  SortDirection = "asc"
	SortDirectionDesc SortDirection = "desc"
)

type SortOptions struct {
	Field     SortField
	Direction SortDirection
}

// SortItems returns a sorted copy of in. Items without a value for the
// selected field go last in either direction.
func SortItems(in []entity.ResolvedItem, opts SortOptions) []entity.ResolvedItem {
	out := append([]entity.ResolvedItem(nil), in...)

	field := normalizeSortField(opts.Field)
	if field == SortFieldNone || len(out) <= 1 {
		return out
	}

	desc := normalizeSortDirection(opts.Direction) == SortDirectionDesc

	sort.SliceStable(out, func(i, j int) bool {
		cmp, decided := compareItems(out[i], out[j], field)
		if decided {
			return cmp < 0
		}
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})

	return out
}

func normalizeSortField(field SortField) SortField {
	switch SortField(strings.ToLower(strings.TrimSpace(string(field)))) {
	case SortFieldName:
		return SortFieldName
	case SortFieldMarket:
		return SortFieldMarket
	case SortFieldVendor:
		return SortFieldVendor
	case SortFieldProfit:
		return SortFieldProfit
	case SortFieldROI:
		return SortFieldROI
	default:
		return SortFieldNone
	}
}

func normalizeSortDirection(dir SortDirection) SortDirection {
	if strings.EqualFold(strings.TrimSpace(string(dir)), string(SortDirectionDesc)) {
		return SortDirectionDesc
	}

	return SortDirectionAsc
}

// compareItems returns decided=true when the order does not depend on the
// direction, which is the case when one side has no value.
func compareItems(a, b entity.ResolvedItem, field SortField) (cmp int, decided bool) {
	switch field {
	case SortFieldName:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)), false
	case SortFieldMarket:
		return comparePrices(a.BestMarketPrice, b.BestMarketPrice)
	case SortFieldVendor:
		return comparePrices(a.BestVendorPrice, b.BestVendorPrice)
	case SortFieldProfit:
		return comparePrices(a.Profit, b.Profit)
	case SortFieldROI:
		return comparePrices(a.ROI, b.ROI)
	default:
		return 0, false
	}
}

func comparePrices(a, b value.Price) (int, bool) {
	av, aok := a.Get()
	bv, bok := b.Get()

	switch {
	case !aok && !bok:
		return 0, true
	case !aok:
		return 1, true
	case !bok:
		return -1, true
	case av < bv:
		return -1, false
	case av > bv:
		return 1, false
	default:
		return 0, false
	}
}
