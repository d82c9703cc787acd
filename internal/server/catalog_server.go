package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tarkov_trader/internal/domain/entity"
	"tarkov_trader/internal/domain/service/catalog"
	"tarkov_trader/pkg/contextx"
	"tarkov_trader/pkg/errcodes"
	"tarkov_trader/pkg/httpx/reply"
	"tarkov_trader/pkg/httpx/req"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type catalogService interface {
	View(ctx context.Context, query string, opts catalog.SortOptions) (catalog.View, error)
	Item(ctx context.Context, id string) (entity.ResolvedItem, error)
	Trend(ctx context.Context, id string) (entity.Trend, error)
	Reload(ctx context.Context) (*entity.Snapshot, error)
	Status() catalog.Status
}

type CatalogServer struct {
	catalogService catalogService
}

func NewCatalogServer(catalogService catalogService) CatalogServer {
	return CatalogServer{
		catalogService: catalogService,
	}
}

type itemsQuery struct {
	Query     string `validate:"max=256"`
	Sort      string `validate:"omitempty,oneof=name market vendor profit roi"`
	Direction string `validate:"omitempty,oneof=asc desc"`
}

type itemIDParam struct {
	ID string `validate:"required,max=64,alphanum"`
}

func (s CatalogServer) getV1Items(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	query := itemsQuery{
		Query:     r.URL.Query().Get("q"),
		Sort:      r.URL.Query().Get("sort"),
		Direction: r.URL.Query().Get("direction"),
	}

	if err := req.Validate(ctx, &query, req.FieldCodes{
		"Sort":      errcodes.InvalidSortField,
		"Direction": errcodes.InvalidSortDirection,
	}); err != nil {
		return fmt.Errorf("req.Validate: %w", err)
	}

	view, err := s.catalogService.View(ctx, query.Query, catalog.SortOptions{
		Field:     catalog.SortField(query.Sort),
		Direction: catalog.SortDirection(query.Direction),
	})
	if err != nil {
		return fmt.Errorf("catalogService.View: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTItemList(view))

	return nil
}

func (s CatalogServer) getV1Item(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := itemID(r)
	if err != nil {
		return err
	}

	item, err := s.catalogService.Item(ctx, id)
	if err != nil {
		return fmt.Errorf("catalogService.Item: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTItem(item))

	return nil
}

func (s CatalogServer) getV1ItemTrend(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := itemID(r)
	if err != nil {
		return err
	}

	trend, err := s.catalogService.Trend(ctx, id)
	if err != nil {
		return fmt.Errorf("catalogService.Trend: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTTrend(trend))

	return nil
}

func (s CatalogServer) getV1Catalog(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTCatalogStatus(s.catalogService.Status()))

	return nil
}

func (s CatalogServer) postV1CatalogReload(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	snapshot, err := s.catalogService.Reload(ctx)
	if err != nil {
		return fmt.Errorf("catalogService.Reload: %w", err)
	}

	logger(ctx).Info("catalog reloaded via api", slog.Int("items", snapshot.Len()))

	reply.JSON(ctx, w, http.StatusOK, newRESTCatalogStatus(s.catalogService.Status()))

	return nil
}

func itemID(r *http.Request) (string, error) {
	param := itemIDParam{ID: chi.URLParam(r, "id")}

	if err := req.Validate(r.Context(), &param, req.FieldCodes{"ID": errcodes.InvalidItemID}); err != nil {
		return "", fmt.Errorf("req.Validate: %w", err)
	}

	return param.ID, nil
}
