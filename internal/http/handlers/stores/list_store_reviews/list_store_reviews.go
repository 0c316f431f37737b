package liststorereviews

import (
	"errors"
	"net/http"
	"strconv"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/domain/store"
	"storemap/internal/core/services"
	liststorereviews "storemap/internal/core/services/list_store_reviews"
	"storemap/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[liststorereviews.Input, liststorereviews.Result]
}

func New(
	service services.Service[liststorereviews.Input, liststorereviews.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Reviews []response.Review `json:"reviews"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	storeID, err := strconv.ParseInt(chi.URLParam(r, "storeID"), 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid store ID", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		liststorereviews.Input{StoreID: store.ID(storeID)},
	)
	if errors.Is(err, store.ErrStoreDoesNotExist) {
		response.RenderError(rw, "store does not exist", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	reviews := make([]response.Review, 0, len(result.Reviews))
	for _, domainReview := range result.Reviews {
		rv := response.Review{}
		rv.FromDomainReview(domainReview)
		reviews = append(reviews, rv)
	}
	response.Render(rw, Result{Reviews: reviews}, http.StatusOK)
}
