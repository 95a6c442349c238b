package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopapp/backend/internal/models"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondSuccess sends the {success, data} envelope
func (h *BaseHandler) RespondSuccess(w http.ResponseWriter, status int, data any) {
	h.RespondJSON(w, status, map[string]any{
		"success": true,
		"data":    data,
	})
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// RespondDomainError maps a domain error to an HTTP status and sends it.
// Unknown errors become an opaque 500 so internals never leak.
func (h *BaseHandler) RespondDomainError(w http.ResponseWriter, err error) {
	switch {
	case models.IsValidation(err),
		errors.Is(err, models.ErrDuplicateEmail),
		errors.Is(err, models.ErrInvalidResetToken):
		h.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		h.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, models.ErrSelfDelete),
		errors.Is(err, models.ErrAdminDelete):
		h.RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrProductNotFound),
		errors.Is(err, models.ErrCategoryNotFound):
		h.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrEmailDelivery):
		h.RespondError(w, http.StatusInternalServerError, err.Error())
	default:
		h.Logger.Error("unexpected error", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
