package liststores

import (
	"net/http"
	"strconv"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/services"
	liststores "storemap/internal/core/services/list_stores"
	"storemap/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[liststores.Input, liststores.Result]
}

func New(
	service services.Service[liststores.Input, liststores.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Stores     []response.Store `json:"stores"`
	TotalCount uint             `json:"total_count"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := liststores.Input{}
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		limit, err := strconv.ParseUint(rawLimit, 10, 32)
		if err != nil {
			response.RenderError(rw, "invalid limit", http.StatusBadRequest)
			return
		}
		input.Limit = uint(limit)
	}
	if rawOffset := r.URL.Query().Get("offset"); rawOffset != "" {
		offset, err := strconv.ParseUint(rawOffset, 10, 32)
		if err != nil {
			response.RenderError(rw, "invalid offset", http.StatusBadRequest)
			return
		}
		input.Offset = uint(offset)
	}

	result, err := h.service.Run(r.Context(), input)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	stores := make([]response.Store, 0, len(result.Stores))
	for _, domainStore := range result.Stores {
		s := response.Store{}
		s.FromDomainStore(domainStore)
		stores = append(stores, s)
	}
	response.Render(rw, Result{Stores: stores, TotalCount: result.TotalCount}, http.StatusOK)
}
