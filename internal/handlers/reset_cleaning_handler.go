package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ResetTokenCleaner is the interface for clearing expired reset tokens
type ResetTokenCleaner interface {
	// Method ClearExpiredResetTokens removes reset token fields for all users
	// whose token expiry has passed, returning the number of cleared rows.
	ClearExpiredResetTokens(ctx context.Context) (int, error)
}

// ResetCleaningHandler handles reset token cleaning requests
type ResetCleaningHandler struct {
	BaseHandler
	cleaner ResetTokenCleaner
}

// NewResetCleaningHandler creates a new reset cleaning handler
func NewResetCleaningHandler(cleaner ResetTokenCleaner, logger *zap.Logger) *ResetCleaningHandler {
	return &ResetCleaningHandler{
		BaseHandler: BaseHandler{Logger: logger},
		cleaner:     cleaner,
	}
}

// RegisterRoutes registers reset cleaning handler routes
func (h *ResetCleaningHandler) RegisterRoutes(r chi.Router) {
	r.Get("/maintenance/reset-tokens/clean", h.CleanResetTokens)
}

// CleanResetTokens handles GET /maintenance/reset-tokens/clean
// @Summary Clean expired reset tokens
// @Description Clears reset token fields for all users whose reset token expiry has passed.
// @Tags maintenance
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]string "Reset token cleaning completed successfully"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /maintenance/reset-tokens/clean [get]
func (h *ResetCleaningHandler) CleanResetTokens(w http.ResponseWriter, r *http.Request) {
	clearedCount, err := h.cleaner.ClearExpiredResetTokens(r.Context())
	if err != nil {
		h.Logger.Error("failed to clear expired reset tokens", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// 0 cleared rows is not an error
	h.Logger.Info("reset token cleaning completed successfully", zap.Int("clearedCount", clearedCount))
	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "reset token cleaning completed successfully"})
}
