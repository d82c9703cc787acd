package catalog_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tarkov_trader/internal/domain"
	"tarkov_trader/internal/domain/entity"
	"tarkov_trader/internal/domain/value"
	"tarkov_trader/internal/domain/service/catalog"
	"tarkov_trader/internal/domain/service/trend"
	"tarkov_trader/pkg/errcodes"
)

func newService(provider catalog.Provider) *catalog.Service {
	calls := 0
	random := func() float64 {
		calls++
		return float64(calls%10) / 10
	}

	return catalog.NewService(catalog.NewStore(provider), trend.NewGenerator(random)).
		WithClock(func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) })
}

func TestServiceNotLoaded(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc := newService(&providerStub{})

	_, err := svc.View(ctx, "", catalog.SortOptions{})
	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.CatalogNotLoaded, code)

	_, err = svc.Item(ctx, "bolts")
	code, _ = domain.GetCode(err)
	rq.Equal(errcodes.CatalogNotLoaded, code)

	rq.Nil(svc.TopByROI(3))
}

func TestServiceViewAndItem(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc := newService(&providerStub{items: rawItems()})

	_, err := svc.Reload(ctx)
	rq.NoError(err)

	view, err := svc.View(ctx, "NUT", catalog.SortOptions{})
	rq.NoError(err)
	rq.False(view.Preview)
	rq.Equal(1, view.Matched)
	rq.Equal(2, view.Total)
	rq.Equal("nuts", view.Items[0].ID)

	view, err = svc.View(ctx, "", catalog.SortOptions{Field: catalog.SortFieldMarket, Direction: catalog.SortDirectionDesc})
	rq.NoError(err)
	rq.True(view.Preview)
	rq.Equal([]string{"bolts", "nuts"}, ids(view.Items))

	_, err = svc.Item(ctx, "missing")
	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.ItemNotFound, code)

	top := svc.TopByROI(5)
	rq.Len(top, 1)
	rq.Equal("bolts", top[0].ID)
}

func TestServiceTrendMemo(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc := newService(&providerStub{items: rawItems()})

	_, err := svc.Reload(ctx)
	rq.NoError(err)

	first, err := svc.Trend(ctx, "bolts")
	rq.NoError(err)
	rq.True(first.Illustrative)
	rq.Len(first.Samples, trend.SampleCount)
	rq.InDelta(1000, first.Anchor, 0)

	second, err := svc.Trend(ctx, "bolts")
	rq.NoError(err)
	rq.Equal(first, second)

	// Aggregate price is the anchor when there is no market offer.
	nuts, err := svc.Trend(ctx, "nuts")
	rq.NoError(err)
	rq.InDelta(300, nuts.Anchor, 0)

	_, err = svc.Reload(ctx)
	rq.NoError(err)

	third, err := svc.Trend(ctx, "bolts")
	rq.NoError(err)
	rq.NotEqual(first.Samples, third.Samples, "reload drops memoized trends")
}

func TestServiceTrendWithoutPrice(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc := newService(&providerStub{items: []entity.Item{{ID: "junk", Name: "Junk"}}})

	_, err := svc.Reload(ctx)
	rq.NoError(err)

	got, err := svc.Trend(ctx, "junk")
	rq.NoError(err)
	rq.Empty(got.Samples)
	rq.True(got.Illustrative)
}

func TestServiceTrendReloadDuringGeneration(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})

	var once sync.Once

	random := func() float64 {
		once.Do(func() {
			close(started)
			<-release
		})

		return 0.5
	}

	provider := &providerStub{items: []entity.Item{{ID: "gpu", Name: "GPU", AggregatePrice: value.Some(1000)}}}
	svc := catalog.NewService(catalog.NewStore(provider), trend.NewGenerator(random))

	_, err := svc.Reload(ctx)
	rq.NoError(err)

	done := make(chan error, 1)

	go func() {
		_, err := svc.Trend(ctx, "gpu")
		done <- err
	}()

	<-started

	provider.items = []entity.Item{{ID: "gpu", Name: "GPU", AggregatePrice: value.Some(50000)}}

	_, err = svc.Reload(ctx)
	rq.NoError(err)

	close(release)
	rq.NoError(<-done)

	got, err := svc.Trend(ctx, "gpu")
	rq.NoError(err)
	rq.InDelta(50000, got.Anchor, 0)
}
