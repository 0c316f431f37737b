package validatepasswordresettoken

import (
	"errors"
	"net/http"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/domain/user"
	"storemap/internal/core/services"
	service "storemap/internal/core/services/validate_password_reset_token"
	"storemap/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Valid bool `json:"valid"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}

	_, err := h.service.Run(
		r.Context(),
		service.Input{Token: user.PasswordResetToken(token)},
	)
	if errors.Is(err, user.ErrResetTokenInvalidOrExpired) {
		response.Render(rw, Result{Valid: false}, http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Valid: true}, http.StatusOK)
}
