package catalog

import (
	"strings"

	"github.com/samber/lo"

	"tarkov_trader/internal/domain/entity"
)

// PreviewSize is how many items an empty query shows.
const PreviewSize = 5

// Search returns the items to display for query.
//
// An empty or all-whitespace query yields a preview of PreviewSize items,
// priced items first. Any other query yields every item whose name or short
// name contains it, ignoring case, without a limit.
func Search(items []entity.ResolvedItem, query string) []entity.ResolvedItem {
	if IsEmptyQuery(query) {
		return Preview(items, PreviewSize)
	}

	needle := strings.ToLower(query)

	return lo.Filter(items, func(item entity.ResolvedItem, _ int) bool {
		return Matches(item, needle)
	})
}

func IsEmptyQuery(query string) bool {
	return strings.TrimSpace(query) == ""
}

// Matches reports whether item's name or short name contains needle.
// needle must already be lower-cased.
func Matches(item entity.ResolvedItem, needle string) bool {
	if strings.Contains(strings.ToLower(item.Name), needle) {
		return true
	}

	return item.ShortName != "" && strings.Contains(strings.ToLower(item.ShortName), needle)
}

// Preview returns up to size items, those with a resolvable market price
// first, each group in catalog order.
func Preview(items []entity.ResolvedItem, size int) []entity.ResolvedItem {
	if len(items) <= size {
		return append([]entity.ResolvedItem(nil), items...)
	}

	priced, unpriced := lo.FilterReject(items, func(item entity.ResolvedItem, _ int) bool {
		return item.HasResolvablePrice()
	})

	out := make([]entity.ResolvedItem, 0, size)
	out = append(out, priced[:min(len(priced), size)]...)
	out = append(out, unpriced[:size-len(out)]...)

	return out
}
