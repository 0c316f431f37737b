package getstorebyslug

import (
	"errors"
	"net/http"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/domain/store"
	"storemap/internal/core/services"
	getstorebyslug "storemap/internal/core/services/get_store_by_slug"
	"storemap/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[getstorebyslug.Input, getstorebyslug.Result]
}

func New(
	service services.Service[getstorebyslug.Input, getstorebyslug.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Store   response.Store    `json:"store"`
	Reviews []response.Review `json:"reviews"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		response.RenderError(rw, "invalid store slug", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		getstorebyslug.Input{Slug: store.Slug(slug)},
	)
	if errors.Is(err, store.ErrStoreDoesNotExist) {
		response.RenderError(rw, "store does not exist", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	s := response.Store{}
	s.FromDomainStore(result.Store)
	reviews := make([]response.Review, 0, len(result.Reviews))
	for _, domainReview := range result.Reviews {
		rv := response.Review{}
		rv.FromDomainReview(domainReview)
		reviews = append(reviews, rv)
	}
	response.Render(rw, Result{Store: s, Reviews: reviews}, http.StatusOK)
}
