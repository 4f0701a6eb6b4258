// AngelaMos | 2026
// handler.go

package user

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
	r.Post("/users", h.UpsertLogin)
	r.Get("/users/search", h.Search)

	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Patch("/users/{userID}/role", h.UpdateRole)
	})
}

func (h *Handler) UpsertLogin(w http.ResponseWriter, r *http.Request) {
	var req UpsertUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	u, created, err := h.service.UpsertLogin(r.Context(), req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	if !created {
		core.OK(w, UpsertUserResponse{
			Message: "user already exists",
			Updated: true,
			User:    ToUserResponse(u),
		})
		return
	}

	core.Created(w, UpsertUserResponse{
		Message: "user created",
		Updated: false,
		User:    ToUserResponse(u),
	})
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("email")

	summaries, err := h.service.Search(r.Context(), query)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "email query is required")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, summaries)
}

func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req UpdateUserRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	u, err := h.service.UpdateRole(r.Context(), userID, req.Role)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "unrecognized role")
			return
		}
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "user")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToUserResponse(u))
}
