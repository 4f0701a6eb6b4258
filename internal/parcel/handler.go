// AngelaMos | 2026
// handler.go

package parcel

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/parceld/internal/core"
	"github.com/angelamos/parceld/internal/middleware"
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

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Post("/parcels", h.Create)
	r.Get("/parcels/{parcelID}", h.Get)
	r.Delete("/parcels/{parcelID}", h.Delete)

	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/parcels", h.List)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateParcelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	parcel, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToParcelResponse(parcel))
}

// List returns the caller's parcels, newest first. This is the
// confidentiality boundary: the filter email is the verified identity.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetEmail(r.Context())

	parcels, err := h.service.ListForSender(r.Context(), email)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToParcelResponseList(parcels))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	parcelID := chi.URLParam(r, "parcelID")

	parcel, err := h.service.Get(r.Context(), parcelID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "parcel")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToParcelResponse(parcel))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	parcelID := chi.URLParam(r, "parcelID")

	deleted, err := h.service.Delete(r.Context(), parcelID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "parcel")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, DeleteParcelResponse{DeletedCount: deleted})
}
