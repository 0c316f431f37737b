package tagcounts

import (
	"net/http"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/services"
	gettagcounts "storemap/internal/core/services/get_tag_counts"
	"storemap/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[gettagcounts.Input, gettagcounts.Result]
}

func New(
	service services.Service[gettagcounts.Input, gettagcounts.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Tags []response.TagCount `json:"tags"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), gettagcounts.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	tags := make([]response.TagCount, 0, len(result.Tags))
	for _, domainTagCount := range result.Tags {
		tc := response.TagCount{}
		tc.FromDomainTagCount(domainTagCount)
		tags = append(tags, tc)
	}
	response.Render(rw, Result{Tags: tags}, http.StatusOK)
}
