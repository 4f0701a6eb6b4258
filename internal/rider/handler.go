// AngelaMos | 2026
// handler.go

package rider

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

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Post("/riders", h.Apply)
	r.Get("/riders/pending", h.ListPending)
	r.Get("/riders/active", h.ListActive)

	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Patch("/riders/{riderID}/status", h.UpdateStatus)
	})
}

func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	var req ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	rider, err := h.service.Apply(r.Context(), req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToRiderResponse(rider))
}

func (h *Handler) ListPending(w http.ResponseWriter, r *http.Request) {
	riders, err := h.service.ListPending(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToRiderResponseList(riders))
}

func (h *Handler) ListActive(w http.ResponseWriter, r *http.Request) {
	riders, err := h.service.ListActive(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToRiderResponseList(riders))
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	riderID := chi.URLParam(r, "riderID")

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	rider, err := h.service.UpdateStatus(r.Context(), riderID, req.Status)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "unrecognized status")
			return
		}
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "rider")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToRiderResponse(rider))
}
