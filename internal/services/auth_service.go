package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopapp/backend/internal/auth/service"
	"github.com/shopapp/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthUserRepository is the interface that wraps methods for User table data access needed by the auth service
type AuthUserRepository interface {
	// Method Create inserts a new user into the database.
	//
	// "user" parameter is used to create a new user.
	//
	// If a user with the same email already exists, models.ErrDuplicateEmail will be returned.
	// If some other error occurs during user creation, the error will be returned.
	Create(ctx context.Context, user *models.User) error
	// Method GetByEmail retrieves a user by email without the password hash.
	//
	// If user with such email does not exist, models.ErrUserNotFound will be returned together with "nil" value.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Method GetByEmailWithPassword retrieves a user by email including the password hash.
	//
	// If user with such email does not exist, models.ErrUserNotFound will be returned together with "nil" value.
	GetByEmailWithPassword(ctx context.Context, email string) (*models.User, error)
	// Method SetResetToken stores the hashed reset token and its expiry for a user.
	SetResetToken(ctx context.Context, userID int, tokenHash string, expiry time.Time) error
	// Method ClearResetToken removes both reset token fields for a user.
	ClearResetToken(ctx context.Context, userID int) error
	// Method GetByResetTokenHash retrieves a user by an unexpired reset token hash.
	//
	// If no user matches, models.ErrInvalidResetToken will be returned together with "nil" value.
	GetByResetTokenHash(ctx context.Context, tokenHash string) (*models.User, error)
	// Method UpdatePasswordHash replaces the stored password hash for a user.
	UpdatePasswordHash(ctx context.Context, userID int, passwordHash string) error
}

// MailSender is the interface for the external notification collaborator
type MailSender interface {
	// Method Send delivers a plain message to the recipient.
	//
	// If delivery fails, the error will be returned; the auth service reacts
	// by rolling back any reset token it persisted for this message.
	Send(to, subject, message string) error
}

// authService implements registration, login and the password reset flow
type authService struct {
	userRepo       AuthUserRepository
	mailSender     MailSender
	tokenGenerator *service.TokenGenerator
	resetExpiry    time.Duration
	logger         *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo AuthUserRepository,
	mailSender MailSender,
	tokenGenerator *service.TokenGenerator,
	resetExpiry time.Duration,
	logger *zap.Logger,
) *authService {
	return &authService{
		userRepo:       userRepo,
		mailSender:     mailSender,
		tokenGenerator: tokenGenerator,
		resetExpiry:    resetExpiry,
		logger:         logger,
	}
}

// emailRegex validates email format
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// minPasswordLength is the minimum accepted password length
const minPasswordLength = 6

// validateCredentials checks email format and password length
func validateCredentials(email, password string) error {
	if !emailRegex.MatchString(email) {
		return models.NewValidationError("email", "invalid email format")
	}
	if len(password) < minPasswordLength {
		return models.NewValidationError("password", fmt.Sprintf("password must be at least %d characters long", minPasswordLength))
	}
	return nil
}

// Register creates a new user account and returns it with a signed token
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, string, error) {
	normalizedEmail := strings.TrimSpace(strings.ToLower(req.Email))

	if err := validateCredentials(normalizedEmail, req.Password); err != nil {
		return nil, "", err
	}

	// Hash password
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	// Create user; the store enforces email uniqueness
	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizedEmail,
		PasswordHash: string(passwordHash),
		Role:         models.RoleUser, // Default role
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokenGenerator.Generate(user.ID, int(user.Role))
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Login authenticates a user and returns it with a signed token.
// A missing user and a wrong password produce the same error so the
// response never reveals whether the account exists.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return nil, "", models.ErrInvalidCredentials
	}

	// Get user by email including the normally hidden password hash
	user, err := s.userRepo.GetByEmailWithPassword(ctx, email)
	if err != nil {
		if err == models.ErrUserNotFound {
			return nil, "", models.ErrInvalidCredentials
		}
		return nil, "", err
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.Generate(user.ID, int(user.Role))
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// ForgotPassword starts the password reset flow: it persists a hashed reset
// token with an expiry and emails the raw token to the user.
//
// If the email cannot be delivered the token fields are cleared before the
// error is returned, so a token the user never received can not stay valid.
func (s *authService) ForgotPassword(ctx context.Context, email, resetURLBase string) (*models.User, error) {
	normalizedEmail := strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepo.GetByEmail(ctx, normalizedEmail)
	if err != nil {
		return nil, err
	}

	// Generate reset token and persist only its hash
	rawToken, tokenHash, err := service.GenerateResetToken()
	if err != nil {
		return nil, err
	}

	expiry := time.Now().Add(s.resetExpiry)
	if err := s.userRepo.SetResetToken(ctx, user.ID, tokenHash, expiry); err != nil {
		return nil, err
	}
	user.ResetPasswordTokenHash = &tokenHash
	user.ResetPasswordExpiry = &expiry

	// Build reset URL with the raw token and send it
	resetURL := resetURLBase + rawToken
	message := fmt.Sprintf("You are receiving this email because you (or someone else) has requested the reset of a password. Please make a PUT request to: \n\n %s", resetURL)

	if err := s.mailSender.Send(user.Email, "Password reset token", message); err != nil {
		s.logger.Error("failed to send reset email", zap.Int("userID", user.ID), zap.Error(err))

		// Compensating rollback: the user was never notified, so the token
		// must not remain valid
		if clearErr := s.userRepo.ClearResetToken(ctx, user.ID); clearErr != nil {
			s.logger.Error("failed to clear reset token after send failure", zap.Int("userID", user.ID), zap.Error(clearErr))
		}
		user.ResetPasswordTokenHash = nil
		user.ResetPasswordExpiry = nil

		return nil, models.ErrEmailDelivery
	}

	return user, nil
}

// ResetPassword completes the reset flow: it validates the raw token, sets
// the new password and clears the reset fields, returning the user with a
// fresh signed token
func (s *authService) ResetPassword(ctx context.Context, rawToken, newPassword string) (*models.User, string, error) {
	if len(newPassword) < minPasswordLength {
		return nil, "", models.NewValidationError("password", fmt.Sprintf("password must be at least %d characters long", minPasswordLength))
	}

	user, err := s.userRepo.GetByResetTokenHash(ctx, service.HashResetToken(rawToken))
	if err != nil {
		return nil, "", err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, user.ID, string(passwordHash)); err != nil {
		return nil, "", err
	}

	if err := s.userRepo.ClearResetToken(ctx, user.ID); err != nil {
		return nil, "", err
	}

	token, err := s.tokenGenerator.Generate(user.ID, int(user.Role))
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}
