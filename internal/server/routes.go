package server

import (
	"errors"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"tarkov_trader/internal/domain"
	"tarkov_trader/pkg/errcodes"
	"tarkov_trader/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/items", func(r chi.Router) {
				r.Get("/", handler(s.getV1Items))
				r.Get("/{id}", handler(s.getV1Item))
				r.Get("/{id}/trend", handler(s.getV1ItemTrend))
			})
			r.Route("/catalog", func(r chi.Router) {
				r.Get("/", handler(s.getV1Catalog))
				r.Post("/reload", handler(s.postV1CatalogReload))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			replyError(w, r, err)
		}
	}
}

func replyError(w http.ResponseWriter, r *http.Request, err error) {
	code, ok := domain.GetCode(err)
	if !ok {
		reply.Error(r.Context(), w, err)
		return
	}

	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		err = appErr
	}

	reply.Coded(r.Context(), w, statusFor(code), code, err)
}

func statusFor(code failure.ErrorCode) int {
	switch code {
	case errcodes.ItemNotFound, errcodes.NotFound:
		return http.StatusNotFound
	case errcodes.CatalogNotLoaded:
		return http.StatusServiceUnavailable
	case errcodes.ProviderUnavailable, errcodes.ProviderError:
		return http.StatusBadGateway
	case errcodes.InvalidItemID, errcodes.InvalidSortField, errcodes.InvalidSortDirection, errcodes.ValidationError:
		return http.StatusBadRequest
	case errcodes.TimeoutExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
