package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopapp/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockAuthService is a mock implementation of AuthService
type mockAuthService struct {
	user              *models.User
	token             string
	registerErr       error
	loginErr          error
	forgotPasswordErr error
	resetPasswordErr  error
}

func (m *mockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, string, error) {
	if m.registerErr != nil {
		return nil, "", m.registerErr
	}
	return m.user, m.token, nil
}

func (m *mockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error) {
	if m.loginErr != nil {
		return nil, "", m.loginErr
	}
	return m.user, m.token, nil
}

func (m *mockAuthService) ForgotPassword(ctx context.Context, email, resetURLBase string) (*models.User, error) {
	if m.forgotPasswordErr != nil {
		return nil, m.forgotPasswordErr
	}
	return m.user, nil
}

func (m *mockAuthService) ResetPassword(ctx context.Context, rawToken, newPassword string) (*models.User, string, error) {
	if m.resetPasswordErr != nil {
		return nil, "", m.resetPasswordErr
	}
	return m.user, m.token, nil
}

// setupAuthRouter builds a router with the auth routes registered
func setupAuthRouter(svc *mockAuthService, isProduction bool) chi.Router {
	h := NewAuthHandler(svc, zap.NewNop(), 30, isProduction)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

// tokenCookie finds the "token" cookie in a recorded response
func tokenCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	t.Fatal("token cookie not set")
	return nil
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		svc            *mockAuthService
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"name":"Test User","email":"test@example.com","password":"pw123456"}`,
			svc: &mockAuthService{
				user:  &models.User{ID: 1, Email: "test@example.com", Role: models.RoleUser},
				token: "signed-token",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid body",
			body:           `{not json`,
			svc:            &mockAuthService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing credentials",
			body:           `{"name":"Test User"}`,
			svc:            &mockAuthService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "duplicate email",
			body:           `{"email":"taken@example.com","password":"pw123456"}`,
			svc:            &mockAuthService{registerErr: models.ErrDuplicateEmail},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupAuthRouter(tt.svc, false)

			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusCreated {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, true, resp["success"])
				assert.Equal(t, "signed-token", resp["token"])
				assert.NotNil(t, resp["data"])
			}
		})
	}
}

func TestAuthHandler_Register_CookieFlags(t *testing.T) {
	svc := &mockAuthService{
		user:  &models.User{ID: 1, Email: "test@example.com"},
		token: "signed-token",
	}

	t.Run("development cookie is not secure", func(t *testing.T) {
		r := setupAuthRouter(svc, false)

		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"test@example.com","password":"pw123456"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		cookie := tokenCookie(t, rec)
		assert.Equal(t, "signed-token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.False(t, cookie.Secure)
	})

	t.Run("production cookie is secure", func(t *testing.T) {
		r := setupAuthRouter(svc, true)

		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"test@example.com","password":"pw123456"}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		cookie := tokenCookie(t, rec)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		svc            *mockAuthService
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"email":"test@example.com","password":"pw123456"}`,
			svc: &mockAuthService{
				user:  &models.User{ID: 1, Email: "test@example.com"},
				token: "signed-token",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid credentials",
			body:           `{"email":"test@example.com","password":"wrong"}`,
			svc:            &mockAuthService{loginErr: models.ErrInvalidCredentials},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid body",
			body:           `{not json`,
			svc:            &mockAuthService{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupAuthRouter(tt.svc, false)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		svc            *mockAuthService
		expectedStatus int
	}{
		{
			name:           "success",
			body:           `{"email":"test@example.com"}`,
			svc:            &mockAuthService{user: &models.User{ID: 1, Email: "test@example.com"}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing email",
			body:           `{}`,
			svc:            &mockAuthService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown email",
			body:           `{"email":"missing@example.com"}`,
			svc:            &mockAuthService{forgotPasswordErr: models.ErrUserNotFound},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "delivery failure",
			body:           `{"email":"test@example.com"}`,
			svc:            &mockAuthService{forgotPasswordErr: models.ErrEmailDelivery},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupAuthRouter(tt.svc, false)

			req := httptest.NewRequest(http.MethodPost, "/auth/forgotpassword", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	tests := []struct {
		name           string
		svc            *mockAuthService
		expectedStatus int
	}{
		{
			name: "success",
			svc: &mockAuthService{
				user:  &models.User{ID: 1, Email: "test@example.com"},
				token: "fresh-token",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid token",
			svc:            &mockAuthService{resetPasswordErr: models.ErrInvalidResetToken},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupAuthRouter(tt.svc, false)

			req := httptest.NewRequest(http.MethodPut, "/auth/resetpassword/sometoken", strings.NewReader(`{"password":"newpw123"}`))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
