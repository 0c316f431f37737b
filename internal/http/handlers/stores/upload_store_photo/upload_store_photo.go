package uploadstorephoto

import (
	"errors"
	"net/http"
	"strconv"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/domain/store"
	"storemap/internal/core/domain/user"
	"storemap/internal/core/services"
	uploadstorephoto "storemap/internal/core/services/upload_store_photo"
	"storemap/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

const (
	MAX_PHOTO_SIZE = 10 << 20
	PHOTO_FIELD    = "photo"
)

var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

type Handler struct {
	service services.Service[uploadstorephoto.Input, uploadstorephoto.Result]
}

func New(
	service services.Service[uploadstorephoto.Input, uploadstorephoto.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Store response.Store `json:"store"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	storeID, err := strconv.ParseInt(chi.URLParam(r, "storeID"), 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid store ID", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(MAX_PHOTO_SIZE); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile(PHOTO_FIELD)
	if err != nil {
		response.RenderError(rw, "photo file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if _, ok := allowedContentTypes[contentType]; !ok {
		response.RenderError(rw, "unsupported photo content type", http.StatusUnprocessableEntity)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		uploadstorephoto.Input{
			StoreID:     store.ID(storeID),
			ContentType: contentType,
			Content:     file,
			Size:        header.Size,
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
	if errors.Is(err, store.ErrNotStoreAuthor) {
		response.RenderError(rw, "you must own a store in order to edit it", http.StatusForbidden)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	s := response.Store{}
	s.FromDomainStore(result.Store)
	response.Render(rw, Result{Store: s}, http.StatusOK)
}
