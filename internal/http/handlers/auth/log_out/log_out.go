package logout

import (
	"net/http"
	"storemap/internal/core/domain/user"
	"storemap/internal/core/services"
	logout "storemap/internal/core/services/log_out"
	"storemap/internal/http/handlers/auth"
	"storemap/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[logout.Input, logout.Result]
}

func New(
	service services.Service[logout.Input, logout.Result],
) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.ParseToken(r)
	if !ok {
		response.RenderUnauthorized(rw)
		return
	}
	_, err := h.service.Run(
		r.Context(),
		logout.Input{Token: user.SessionToken(token)},
	)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.Render(rw, struct{}{}, http.StatusOK)
}
