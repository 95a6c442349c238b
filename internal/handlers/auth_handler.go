package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopapp/backend/internal/models"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication business logic
type AuthService interface {
	// Method Register performs credentials validation and user creation and returns the user with a signed token.
	//
	// If the email is already taken, models.ErrDuplicateEmail will be returned.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, string, error)
	// Method Login performs credentials validation and returns the user with a signed token.
	//
	// An unknown email and a wrong password both produce models.ErrInvalidCredentials.
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error)
	// Method ForgotPassword starts the reset flow and emails a reset link.
	//
	// If the email is unknown, models.ErrUserNotFound will be returned.
	// If delivery fails, the persisted token is cleared and models.ErrEmailDelivery is returned.
	ForgotPassword(ctx context.Context, email, resetURLBase string) (*models.User, error)
	// Method ResetPassword completes the reset flow with the raw token from the reset link.
	ResetPassword(ctx context.Context, rawToken, newPassword string) (*models.User, string, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService      AuthService
	cookieExpireDays int
	isProduction     bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	authService AuthService,
	logger *zap.Logger,
	cookieExpireDays int,
	isProduction bool,
) *AuthHandler {
	return &AuthHandler{
		BaseHandler:      BaseHandler{Logger: logger},
		authService:      authService,
		cookieExpireDays: cookieExpireDays,
		isProduction:     isProduction,
	}
}

// RegisterRoutes registers all auth handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/forgotpassword", h.ForgotPassword)
		r.Put("/resetpassword/{token}", h.ResetPassword)
	})
}

// Register handles POST /auth/register
// @Summary Register a new user
// @Description Register a new user with email, password and optional name. Returns a signed token in the body and as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 201 {object} map[string]any "User registered successfully"
// @Failure 400 {object} map[string]string "Invalid request body or email already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		h.RespondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, token, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		h.Logger.Error("failed to register user", zap.Error(err))
		h.RespondDomainError(w, err)
		return
	}

	h.sendTokenResponse(w, http.StatusCreated, user, token)
}

// Login handles POST /auth/login
// @Summary Login user
// @Description Authenticate user with email and password. Returns a signed token in the body and as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} map[string]any "Login successful"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		h.Logger.Warn("failed to login user", zap.Error(err))
		h.RespondDomainError(w, err)
		return
	}

	h.sendTokenResponse(w, http.StatusOK, user, token)
}

// ForgotPassword handles POST /auth/forgotpassword
// @Summary Request a password reset
// @Description Generates a reset token and emails a reset link to the user.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.ForgotPasswordRequest true "Forgot password request"
// @Success 200 {object} map[string]any "Reset email sent"
// @Failure 404 {object} map[string]string "No user with that email"
// @Failure 500 {object} map[string]string "Email could not be sent"
// @Router /auth/forgotpassword [post]
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" {
		h.RespondError(w, http.StatusBadRequest, "email is required")
		return
	}

	// The reset link points back at this API; the raw token is appended by
	// the service
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	resetURLBase := fmt.Sprintf("%s://%s/api/v1/auth/resetpassword/", scheme, r.Host)

	user, err := h.authService.ForgotPassword(r.Context(), req.Email, resetURLBase)
	if err != nil {
		h.Logger.Error("failed to process forgot password", zap.Error(err))
		h.RespondDomainError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, user)
}

// ResetPassword handles PUT /auth/resetpassword/{token}
// @Summary Complete a password reset
// @Description Validates the reset token from the emailed link and sets the new password.
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "Raw reset token"
// @Param request body models.ResetPasswordRequest true "New password"
// @Success 200 {object} map[string]any "Password reset, token returned"
// @Failure 400 {object} map[string]string "Invalid or expired reset token"
// @Router /auth/resetpassword/{token} [put]
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	rawToken := chi.URLParam(r, "token")

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.authService.ResetPassword(r.Context(), rawToken, req.Password)
	if err != nil {
		h.Logger.Error("failed to reset password", zap.Error(err))
		h.RespondDomainError(w, err)
		return
	}

	h.sendTokenResponse(w, http.StatusOK, user, token)
}

// sendTokenResponse sets the token cookie and sends the token envelope.
// The cookie is HTTP-only; the Secure flag is set only in production mode.
func (h *AuthHandler) sendTokenResponse(w http.ResponseWriter, status int, user *models.User, token string) {
	expiry := time.Duration(h.cookieExpireDays) * 24 * time.Hour

	cookie := &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(expiry),
		MaxAge:   int(expiry.Seconds()),
		HttpOnly: true,
		Secure:   h.isProduction,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)

	h.RespondJSON(w, status, map[string]any{
		"success": true,
		"token":   token,
		"data":    user,
	})
}
