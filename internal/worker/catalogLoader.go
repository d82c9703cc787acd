package worker

import (
	"context"
	"log/slog"
	"time"

	"tarkov_trader/internal/domain/entity"
	"tarkov_trader/pkg/logx"
)

type catalogService interface {
	Reload(ctx context.Context) (*entity.Snapshot, error)
	TopByROI(n int) []entity.ResolvedItem
}

// CatalogLoader loads the catalog at startup and, when an interval is set,
// reloads it periodically. Loads never overlap: the next tick waits for the
// current load to finish.
type CatalogLoader struct {
	svc      catalogService
	interval time.Duration

	digests    chan<- entity.Digest
	digestSize int
}

func NewCatalogLoader(svc catalogService) *CatalogLoader {
	return &CatalogLoader{
		svc: svc,
	}
}

// WithInterval enables periodic reloads. Zero or negative loads only once.
func (w *CatalogLoader) WithInterval(interval time.Duration) *CatalogLoader {
	w.interval = interval
	return w
}

// WithDigests publishes the top size items by ROI after every successful load.
func (w *CatalogLoader) WithDigests(digests chan<- entity.Digest, size int) *CatalogLoader {
	w.digests = digests
	w.digestSize = size

	return w
}

func (w *CatalogLoader) Run(ctx context.Context) error {
	w.loadOnce(ctx)

	if w.interval <= 0 {
		logger(ctx).Info("catalog refresh disabled")
		return nil
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger(ctx).Info("catalog refresh scheduled", slog.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.loadOnce(ctx)
		}
	}
}

func (w *CatalogLoader) loadOnce(ctx context.Context) {
	snapshot, err := w.svc.Reload(ctx)
	if err != nil {
		if ctx.Err() == nil {
			logger(ctx).Error("catalog load failed", logx.Error(err))
		}

		return
	}

	logger(ctx).Info("catalog loaded", slog.Int("items", snapshot.Len()))

	if w.digests == nil || w.digestSize <= 0 {
		return
	}

	top := w.svc.TopByROI(w.digestSize)
	if len(top) == 0 {
		return
	}

	select {
	case w.digests <- entity.Digest{Items: top, LoadedAt: snapshot.LoadedAt}:
	case <-ctx.Done():
	}
}
