package entity

import (
	"time"

	"tarkov_trader/internal/domain/value"
)

// ResolvedItem is an Item enriched with derived trading metrics. Derived
// fields are computed once per catalog load and never stored.
type ResolvedItem struct {
	Item

	BestMarketPrice value.Price
	BestVendorPrice value.Price
	BestVendor      string
	Profit          value.Price
	ROI             value.Price
}

// HasResolvablePrice reports whether the item has any market-side price.
func (r ResolvedItem) HasResolvablePrice() bool {
	return r.BestMarketPrice.IsPresent() || r.AggregatePrice.IsPresent()
}

// Snapshot is an immutable view of the whole catalog produced by one load.
type Snapshot struct {
	Items    []ResolvedItem
	LoadedAt time.Time

	byID map[string]int
}

func NewSnapshot(items []ResolvedItem, loadedAt time.Time) *Snapshot {
	byID := make(map[string]int, len(items))
	for i, item := range items {
		if _, ok := byID[item.ID]; !ok {
			byID[item.ID] = i
		}
	}

	return &Snapshot{
		Items:    items,
		LoadedAt: loadedAt,
		byID:     byID,
	}
}

func (s *Snapshot) Get(id string) (ResolvedItem, bool) {
	if s == nil {
		return ResolvedItem{}, false
	}

	i, ok := s.byID[id]
	if !ok {
		return ResolvedItem{}, false
	}

	return s.Items[i], true
}

func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}

	return len(s.Items)
}

// Digest is the set of most profitable items announced after a load.
type Digest struct {
	Items    []ResolvedItem
	LoadedAt time.Time
}
