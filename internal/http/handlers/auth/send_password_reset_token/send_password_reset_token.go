package sendpasswordresettoken

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "storemap/internal/core/domain/common"
	e "storemap/internal/core/domain/errors"
	ratelimiter "storemap/internal/core/domain/rate_limiter"
	"storemap/internal/core/domain/user"
	"storemap/internal/core/services"
	service "storemap/internal/core/services/send_password_reset_token"
	"storemap/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
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

type Input struct {
	Email string `json:"email"`
}

type Result struct {
	Message string `json:"message"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	_, err := h.service.Run(
		r.Context(),
		service.Input{Email: c.NewEmail(input.Email)},
	)
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderRateLimitExceeded(rw)
		return
	}
	if errors.Is(err, user.ErrNotificationUnavailable) {
		response.RenderError(
			rw,
			"could not send the email, please try again later",
			http.StatusServiceUnavailable,
		)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	// The response does not reveal whether the email is registered.
	response.Render(
		rw,
		Result{Message: "a password reset link has been sent if the email is registered"},
		http.StatusOK,
	)
}
