package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopapp/backend/internal/auth/middleware"
	"github.com/shopapp/backend/internal/models"
	"go.uber.org/zap"
)

// ProfileService is the interface that wraps methods for current-user operations
type ProfileService interface {
	// Method GetMe returns the record of the authenticated user.
	GetMe(ctx context.Context, userID int) (*models.User, error)
	// Method UpdateMe applies name/email changes to the caller's own record.
	UpdateMe(ctx context.Context, userID int, req *models.UpdateProfileRequest) (*models.User, error)
}

// ProfileHandler handles current-user HTTP requests
type ProfileHandler struct {
	BaseHandler
	profileService ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    BaseHandler{Logger: logger},
		profileService: profileService,
	}
}

// RegisterRoutes registers profile routes behind the auth middleware
// Note: This assumes the router is already scoped to /api/v1
func (h *ProfileHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/auth/me", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.GetMe)
		r.Put("/", h.UpdateMe)
	})
}

// GetMe handles GET /auth/me
// @Summary Get current user
// @Description Returns the record of the authenticated user.
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]any "Current user"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Router /auth/me [get]
func (h *ProfileHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.profileService.GetMe(r.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to get current user", zap.Int("userID", userID), zap.Error(err))
		h.RespondDomainError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, user)
}

// UpdateMe handles PUT /auth/me
// @Summary Update current user
// @Description Applies name/email changes to the authenticated user's own record.
// @Tags auth
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.UpdateProfileRequest true "Profile update"
// @Success 200 {object} map[string]any "Updated user"
// @Failure 400 {object} map[string]string "Invalid fields"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Router /auth/me [put]
func (h *ProfileHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.profileService.UpdateMe(r.Context(), userID, &req)
	if err != nil {
		h.Logger.Error("failed to update current user", zap.Int("userID", userID), zap.Error(err))
		h.RespondDomainError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, user)
}
