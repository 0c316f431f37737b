package createstore

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/domain/store"
	"storemap/internal/core/domain/user"
	"storemap/internal/core/services"
	createstore "storemap/internal/core/services/create_store"
	"storemap/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[createstore.Input, createstore.Result]
}

func New(
	service services.Service[createstore.Input, createstore.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Location struct {
	Coordinates []float64 `json:"coordinates"`
	Address     string    `json:"address"`
}

type Input struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Location    Location `json:"location"`
}

type Result struct {
	Store response.Store `json:"store"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Description, validation.Length(0, 4096)),
		validation.Field(&i.Tags, validation.Length(0, 32)),
		validation.Field(&i.Location, validation.Required),
	)
}

func (l Location) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Coordinates, validation.Required, validation.Length(2, 2)),
		validation.Field(&l.Address, validation.Required, validation.Length(1, 512)),
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
		createstore.Input{
			Name:        input.Name,
			Description: input.Description,
			Tags:        input.Tags,
			Location: store.Location{
				Type:        store.LocationTypePoint,
				Coordinates: input.Location.Coordinates,
				Address:     input.Location.Address,
			},
		},
	)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if errors.Is(err, store.ErrSlugAttemptsExceeded) {
		response.RenderError(rw, "could not generate a unique store slug", http.StatusConflict)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	s := response.Store{}
	s.FromDomainStore(result.Store)
	response.Render(rw, Result{Store: s}, http.StatusCreated)
}
