// AngelaMos | 2026
// responses.go

package core

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}

	//nolint:errcheck // best-effort response write
	_ = json.NewEncoder(w).Encode(data)
}

func OK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, data)
}

func BadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: message})
}

func NotFound(w http.ResponseWriter, resource string) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{
		Message: resource + " not found",
	})
}

func Forbidden(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusForbidden, ErrorResponse{Message: message})
}

func Conflict(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusConflict, ErrorResponse{Message: message})
}

// InternalServerError logs the full error and returns a generic message.
// Dependency failure detail never reaches the client.
func InternalServerError(w http.ResponseWriter, err error) {
	slog.Error("internal error", "error", err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Message: "internal server error",
	})
}

func JSONError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.Status, ErrorResponse{Message: appErr.Message})
		return
	}

	status := StatusFromError(err)
	if status == http.StatusInternalServerError {
		InternalServerError(w, err)
		return
	}

	writeJSON(w, status, ErrorResponse{
		Message: strings.ToLower(http.StatusText(status)),
	})
}

func FormatValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "invalid request"
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fieldErr.Field()+" is required")
		case "email":
			messages = append(
				messages,
				fieldErr.Field()+" must be a valid email",
			)
		case "oneof":
			messages = append(
				messages,
				fieldErr.Field()+" must be one of: "+fieldErr.Param(),
			)
		case "min":
			messages = append(
				messages,
				fieldErr.Field()+" must be at least "+fieldErr.Param(),
			)
		case "max":
			messages = append(
				messages,
				fieldErr.Field()+" must be at most "+fieldErr.Param(),
			)
		case "gt":
			messages = append(
				messages,
				fieldErr.Field()+" must be greater than "+fieldErr.Param(),
			)
		default:
			messages = append(messages, fieldErr.Field()+" is invalid")
		}
	}

	return strings.Join(messages, "; ")
}
