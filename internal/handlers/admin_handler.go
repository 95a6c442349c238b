package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopapp/backend/internal/auth/middleware"
	"github.com/shopapp/backend/internal/models"
	"go.uber.org/zap"
)

// AdminService is the interface that wraps methods for admin user management
type AdminService interface {
	// Method GetUsers retrieves all users.
	GetUsers(ctx context.Context) ([]models.User, error)
	// Method GetUser retrieves a user by ID.
	//
	// If user not found, models.ErrUserNotFound will be returned together with "nil" value.
	GetUser(ctx context.Context, userID int) (*models.User, error)
	// Method UpdateUser applies name/email/role changes to an arbitrary user.
	UpdateUser(ctx context.Context, userID int, req *models.AdminUpdateUserRequest) (*models.User, error)
	// Method DeleteUser deletes a user after the self/existence/admin guards.
	//
	// Guard order: self-deletion is rejected first, then a missing target,
	// then a target holding the admin role.
	DeleteUser(ctx context.Context, callerID, targetID int) error
}

// AdminHandler handles admin-only HTTP requests
type AdminHandler struct {
	BaseHandler
	adminService AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		adminService: adminService,
	}
}

// RegisterRoutes registers all admin handler routes
// Note: This assumes the router is already scoped to /api/v1 and gated by the
// admin role middleware
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/users", h.GetUsers)
		r.Get("/users/{id}", h.GetUser)
		r.Put("/users/{id}", h.UpdateUser)
		r.Delete("/users/{id}", h.DeleteUser)
	})
}

// parseUserID extracts the {id} route parameter
func parseUserID(r *http.Request) (int, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid user id: %s", idStr)
	}
	return id, nil
}

// GetUsers handles GET /admin/users
// @Summary Get all users
// @Description Returns all users with a total count. Admin only.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]any "List of users"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Router /admin/users [get]
func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.GetUsers(r.Context())
	if err != nil {
		h.Logger.Error("failed to get users", zap.Error(err))
		h.RespondDomainError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"numberOfUsers": len(users),
		"data":          users,
	})
}

// GetUser handles GET /admin/users/{id}
// @Summary Get single user
// @Description Returns a single user by ID. Admin only.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]any "User"
// @Failure 404 {object} map[string]string "User not found"
// @Router /admin/users/{id} [get]
func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.adminService.GetUser(r.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to get user", zap.Int("userID", userID), zap.Error(err))
		h.RespondDomainError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, user)
}

// UpdateUser handles PUT /admin/users/{id}
// @Summary Update user
// @Description Applies name/email/role changes to an arbitrary user. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Param request body models.AdminUpdateUserRequest true "User update"
// @Success 200 {object} map[string]any "Updated user"
// @Failure 400 {object} map[string]string "Invalid fields"
// @Failure 404 {object} map[string]string "User not found"
// @Router /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.AdminUpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.adminService.UpdateUser(r.Context(), userID, &req)
	if err != nil {
		h.Logger.Error("failed to update user", zap.Int("userID", userID), zap.Error(err))
		h.RespondDomainError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /admin/users/{id}
// @Summary Delete user
// @Description Deletes a user. Self-deletion and deletion of other admins are rejected. Admin only.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]any "Deletion confirmation"
// @Failure 403 {object} map[string]string "Self-deletion or admin target"
// @Failure 404 {object} map[string]string "User not found"
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	targetID, err := parseUserID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	callerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.adminService.DeleteUser(r.Context(), callerID, targetID); err != nil {
		h.Logger.Warn("failed to delete user",
			zap.Int("callerID", callerID),
			zap.Int("targetID", targetID),
			zap.Error(err),
		)
		h.RespondDomainError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, fmt.Sprintf("Deleted user with id of: %d", targetID))
}
