package resetpassword

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/domain/user"
	"storemap/internal/core/services"
	resetpassword "storemap/internal/core/services/reset_password"
	"storemap/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[resetpassword.Input, resetpassword.Result]
}

func New(
	service services.Service[resetpassword.Input, resetpassword.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Token                string `json:"token"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type Result struct {
	User  response.User `json:"user"`
	Token string        `json:"token"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Token, validation.Required, validation.Length(0, 1024)),
		validation.Field(&i.Password, validation.Required, validation.Length(8, 256)),
		validation.Field(&i.PasswordConfirmation, validation.Required, validation.Length(0, 256)),
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

	result, err := h.service.Run(
		r.Context(),
		resetpassword.Input{
			Token:                   user.PasswordResetToken(input.Token),
			NewPassword:             user.RawPassword(input.Password),
			NewPasswordConfirmation: user.RawPassword(input.PasswordConfirmation),
		},
	)
	if errors.Is(err, user.ErrPasswordConfirmationMismatch) {
		response.RenderError(rw, "passwords do not match", http.StatusUnprocessableEntity)
		return
	}
	if errors.Is(err, user.ErrResetTokenInvalidOrExpired) {
		response.RenderError(rw, "token is invalid or expired", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	u := response.User{}
	u.FromDomainUser(result.User)
	response.Render(rw, Result{User: u, Token: string(result.Token)}, http.StatusOK)
}
