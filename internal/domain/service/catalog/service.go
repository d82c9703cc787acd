package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"

	"tarkov_trader/internal/domain"
	"tarkov_trader/internal/domain/entity"
	"tarkov_trader/internal/domain/service/trend"
	"tarkov_trader/pkg/errcodes"
)

const (
	defaultTrendTTL    = 10 * time.Minute
	trendCleanupPeriod = time.Hour
	searchModePreview  = "preview"
	searchModeQuery    = "query"
)

type Service struct {
	store      *Store
	trends     trend.Generator
	trendCache *cache.Cache
	trendTTL   time.Duration
	now        func() time.Time
}

func NewService(store *Store, trends trend.Generator) *Service {
	return &Service{
		store:      store,
		trends:     trends,
		trendCache: cache.New(defaultTrendTTL, trendCleanupPeriod),
		trendTTL:   defaultTrendTTL,
		now:        time.Now,
	}
}

// WithTrendTTL sets how long a generated trend is reused for the same item.
func (s *Service) WithTrendTTL(ttl time.Duration) *Service {
	s.trendTTL = ttl
	return s
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Reload replaces the catalog. Cached trends belong to the old prices and
// are dropped.
func (s *Service) Reload(ctx context.Context) (*entity.Snapshot, error) {
	snapshot, err := s.store.Reload(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.Reload: %w", err)
	}

	s.trendCache.Flush()

	return snapshot, nil
}

func (s *Service) Status() Status {
	return s.store.Status()
}

func (s *Service) View(ctx context.Context, query string, opts SortOptions) (View, error) {
	snapshot, err := s.snapshot()
	if err != nil {
		return View{}, err
	}

	view := DeriveView(snapshot, query, opts)

	mode := searchModeQuery
	if view.Preview {
		mode = searchModePreview
	}

	searchesTotal.WithLabelValues(mode).Inc()

	logger(ctx).Debug("catalog view derived", "query", query, "matched", view.Matched, "total", view.Total)

	return view, nil
}

func (s *Service) Item(_ context.Context, id string) (entity.ResolvedItem, error) {
	snapshot, err := s.snapshot()
	if err != nil {
		return entity.ResolvedItem{}, err
	}

	return itemIn(snapshot, id)
}

// Trend returns an illustrative trend anchored on the item's best market
// price, or its aggregate price when there is none. A memoized trend is
// reused only while the snapshot it was built from is still current.
func (s *Service) Trend(_ context.Context, id string) (entity.Trend, error) {
	snapshot, err := s.snapshot()
	if err != nil {
		return entity.Trend{}, err
	}

	item, err := itemIn(snapshot, id)
	if err != nil {
		return entity.Trend{}, err
	}

	if cached, found := s.trendCache.Get(id); found {
		if memo, ok := cached.(trendMemo); ok && memo.snapshot == snapshot {
			return memo.trend, nil
		}
	}

	t := s.trends.Generate(id, item.BestMarketPrice.Or(item.AggregatePrice), s.now())

	s.trendCache.Set(id, trendMemo{snapshot: snapshot, trend: t}, s.trendTTL)

	return t, nil
}

type trendMemo struct {
	snapshot *entity.Snapshot
	trend    entity.Trend
}

// TopByROI returns up to n items with a profit, highest ROI first.
func (s *Service) TopByROI(n int) []entity.ResolvedItem {
	snapshot := s.store.Snapshot()
	if snapshot == nil || n <= 0 {
		return nil
	}

	profitable := lo.Filter(snapshot.Items, func(item entity.ResolvedItem, _ int) bool {
		return item.Profit.IsPresent() && item.ROI.IsPresent()
	})

	sorted := SortItems(profitable, SortOptions{Field: SortFieldROI, Direction: SortDirectionDesc})

	return sorted[:min(n, len(sorted))]
}

func (s *Service) snapshot() (*entity.Snapshot, error) {
	snapshot := s.store.Snapshot()
	if snapshot == nil {
		return nil, domain.NewError(errcodes.CatalogNotLoaded, "market data is not loaded yet")
	}

	return snapshot, nil
}

func itemIn(snapshot *entity.Snapshot, id string) (entity.ResolvedItem, error) {
	item, ok := snapshot.Get(id)
	if !ok {
		return entity.ResolvedItem{}, domain.NewError(errcodes.ItemNotFound, "item not found")
	}

	return item, nil
}
