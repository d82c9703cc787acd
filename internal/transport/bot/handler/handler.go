package handler

import (
	"context"

	"tarkov_trader/internal/domain/entity"
	"tarkov_trader/internal/domain/service/catalog"
	"tarkov_trader/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type catalogService interface {
	View(ctx context.Context, query string, opts catalog.SortOptions) (catalog.View, error)
	Item(ctx context.Context, id string) (entity.ResolvedItem, error)
	Trend(ctx context.Context, id string) (entity.Trend, error)
	Reload(ctx context.Context) (*entity.Snapshot, error)
	Status() catalog.Status
}

type Handler struct {
	svc      catalogService
	pageSize int
}

func New(svc catalogService) *Handler {
	return &Handler{
		svc:      svc,
		pageSize: defaultPageSize,
	}
}
