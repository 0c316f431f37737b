package createreview

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/domain/store"
	"storemap/internal/core/domain/user"
	"storemap/internal/core/services"
	createreview "storemap/internal/core/services/create_review"
	"storemap/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[createreview.Input, createreview.Result]
}

func New(
	service services.Service[createreview.Input, createreview.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

type Result struct {
	Review response.Review `json:"review"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Rating, validation.Required, validation.Min(store.MinRating), validation.Max(store.MaxRating)),
		validation.Field(&i.Text, validation.Length(0, 4096)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	storeID, err := strconv.ParseInt(chi.URLParam(r, "storeID"), 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid store ID", http.StatusBadRequest)
		return
	}

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
		createreview.Input{
			StoreID: store.ID(storeID),
			Rating:  input.Rating,
			Text:    input.Text,
		},
	)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if errors.Is(err, store.ErrStoreDoesNotExist) {
		response.RenderError(rw, "store does not exist", http.StatusNotFound)
		return
	}
	if errors.Is(err, store.ErrRatingOutOfRange) {
		response.RenderError(rw, "rating is out of range", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	rv := response.Review{}
	rv.FromDomainReview(result.Review)
	response.Render(rw, Result{Review: rv}, http.StatusCreated)
}
