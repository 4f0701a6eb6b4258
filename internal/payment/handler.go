// AngelaMos | 2026
// handler.go

package payment

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

// RegisterRoutes mounts the payment surface. The extra limiter throttles
// per verified caller; these routes reach the external processor.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, limiter func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Use(limiter)

		r.Post("/create-payment-intent", h.CreateIntent)
		r.Post("/parcels/payment/{parcelID}", h.Record)
		r.Get("/payments/user/{email}", h.History)
	})
}

func (h *Handler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req CreateIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	secret, err := h.service.CreateIntent(r.Context(), req.AmountCents)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "amount must be a positive integer of cents")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, CreateIntentResponse{ClientSecret: secret})
}

func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	parcelID := chi.URLParam(r, "parcelID")
	payerEmail := middleware.GetEmail(r.Context())

	var req RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	payment, err := h.service.Record(r.Context(), parcelID, payerEmail, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "parcel")
			return
		}
		if errors.Is(err, core.ErrAlreadyPaid) {
			core.Conflict(w, "parcel is already paid")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, RecordPaymentResponse{
		Message:   "payment updated and recorded successfully",
		PaymentID: payment.ID,
		Payment:   ToPaymentResponse(payment),
	})
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	targetEmail := chi.URLParam(r, "email")
	callerEmail := middleware.GetEmail(r.Context())

	payments, err := h.service.HistoryFor(r.Context(), callerEmail, targetEmail)
	if err != nil {
		if errors.Is(err, core.ErrForbidden) {
			core.Forbidden(w, "forbidden access")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPaymentResponseList(payments))
}
