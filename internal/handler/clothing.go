package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/wardrobe/wardrobe-go/internal/middleware"
	"github.com/wardrobe/wardrobe-go/internal/model"
	"github.com/wardrobe/wardrobe-go/internal/service"
)

const (
	maxItemLimit     = 1000
	maxCategoryLimit = 100
)

// ClothingHandler handles HTTP requests for clothing items and categories.
type ClothingHandler struct {
	service *service.ClothingService
}

// NewClothingHandler creates a new ClothingHandler.
func NewClothingHandler(svc *service.ClothingService) *ClothingHandler {
	return &ClothingHandler{service: svc}
}

// HandleListItems handles GET /clothing-items/ requests, returning the
// authenticated caller's items.
func (h *ClothingHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	skip, limit := pagination(r, maxItemLimit)

	items, err := h.service.ListItems(r.Context(), user.ID, skip, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	if items == nil {
		items = []model.ClothingItem{}
	}

	writeJSON(w, http.StatusOK, items)
}

// HandleGetItem handles GET /clothing-items/{item_id}/ requests.
func (h *ClothingHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid item id"))
		return
	}

	item, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("item not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// HandleCreateItem handles POST /new-clothing/ requests. The created
// item is owned by the authenticated caller regardless of any user_id
// in the body.
func (h *ClothingHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateClothingItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	item, err := h.service.CreateItem(r.Context(), user.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired), errors.Is(err, service.ErrCategoryRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrCategoryNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// HandleUpdateItem handles PUT /edit-clothing/{item_id}/ requests.
// Fields absent from the body keep their stored values.
func (h *ClothingHandler) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w)
		return
	}

	id, err := itemID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid item id"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var update model.ClothingItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	item, err := h.service.UpdateItem(r.Context(), user.ID, id, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse("item not found"))
		case errors.Is(err, service.ErrNotOwner):
			writeJSON(w, http.StatusForbidden, errorResponse(err.Error()))
		case errors.Is(err, service.ErrCategoryNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// HandleListCategories handles GET /clothing-categories/ requests.
func (h *ClothingHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r, maxCategoryLimit)

	categories, err := h.service.ListCategories(r.Context(), skip, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}

	writeJSON(w, http.StatusOK, categories)
}

func itemID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "item_id"), 10, 64)
}

// pagination parses skip/limit query parameters, defaulting skip to 0
// and clamping limit to the given cap.
func pagination(r *http.Request, maxLimit int) (skip, limit int) {
	limit = maxLimit

	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			skip = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n < maxLimit {
			limit = n
		}
	}

	return skip, limit
}
