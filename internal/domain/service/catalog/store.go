package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"tarkov_trader/internal/domain/entity"
	"tarkov_trader/internal/domain/service/pricing"
	"tarkov_trader/pkg/contextx"
	"tarkov_trader/pkg/logx"
	"tarkov_trader/pkg/lox"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Provider interface {
	FetchItems(ctx context.Context) ([]entity.Item, error)
}

// Store owns the catalog. Reload is the only writer; readers get immutable
// snapshots and never block on a reload in progress.
type Store struct {
	provider Provider
	now      func() time.Time

	mu       sync.Mutex
	snapshot atomic.Pointer[entity.Snapshot]
	lastErr  atomic.Pointer[loadError]
}

type loadError struct {
	err error
	at  time.Time
}

type Status struct {
	Loaded     bool
	Items      int
	LoadedAt   time.Time
	LastError  string
	LastFailAt time.Time
}

func NewStore(provider Provider) *Store {
	return &Store{
		provider: provider,
		now:      time.Now,
	}
}

func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Reload fetches the whole catalog and replaces the current snapshot. On
// failure the previous snapshot stays in place.
func (s *Store) Reload(ctx context.Context) (*entity.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()

	items, err := s.provider.FetchItems(ctx)

	reloadDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		reloadsTotal.WithLabelValues(resultError).Inc()
		s.lastErr.Store(&loadError{err: err, at: s.now()})

		logger(ctx).Error("catalog reload failed", logx.Error(err))

		return nil, fmt.Errorf("provider.FetchItems: %w", err)
	}

	snapshot := entity.NewSnapshot(lox.Map(items, pricing.ResolveItem), s.now())

	s.snapshot.Store(snapshot)
	s.lastErr.Store(nil)

	reloadsTotal.WithLabelValues(resultSuccess).Inc()
	catalogItems.Set(float64(snapshot.Len()))

	logger(ctx).Info(
		"catalog reloaded",
		slog.Int("items", snapshot.Len()),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	)

	return snapshot, nil
}

// Snapshot returns the current catalog or nil before the first successful
// load.
func (s *Store) Snapshot() *entity.Snapshot {
	return s.snapshot.Load()
}

func (s *Store) Status() Status {
	var status Status

	if snapshot := s.snapshot.Load(); snapshot != nil {
		status.Loaded = true
		status.Items = snapshot.Len()
		status.LoadedAt = snapshot.LoadedAt
	}

	if le := s.lastErr.Load(); le != nil {
		status.LastError = le.err.Error()
		status.LastFailAt = le.at
	}

	return status
}
