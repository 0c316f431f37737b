package topstores

import (
	"net/http"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/services"
	gettopstores "storemap/internal/core/services/get_top_stores"
	"storemap/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[gettopstores.Input, gettopstores.Result]
}

func New(
	service services.Service[gettopstores.Input, gettopstores.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Stores []response.TopStore `json:"stores"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), gettopstores.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	stores := make([]response.TopStore, 0, len(result.Stores))
	for _, domainTopStore := range result.Stores {
		ts := response.TopStore{}
		ts.FromDomainTopStore(domainTopStore)
		stores = append(stores, ts)
	}
	response.Render(rw, Result{Stores: stores}, http.StatusOK)
}
