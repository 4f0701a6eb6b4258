// AngelaMos | 2026
// handler.go

package tracking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/parceld/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/tracking/update", h.AddUpdate)
	r.Get("/tracking/parcel/{parcelID}", h.History)
}

func (h *Handler) AddUpdate(w http.ResponseWriter, r *http.Request) {
	var req AddUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	update, err := h.service.AddUpdate(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "parcel")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToUpdateResponse(update))
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	parcelID := chi.URLParam(r, "parcelID")

	updates, err := h.service.History(r.Context(), parcelID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "parcel")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToUpdateResponseList(updates))
}
