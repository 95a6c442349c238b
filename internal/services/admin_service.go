package services

import (
	"context"
	"strings"

	"github.com/shopapp/backend/internal/models"
	"go.uber.org/zap"
)

// AdminUserRepository is the interface that wraps methods for User table data access needed by the admin service
type AdminUserRepository interface {
	// Method GetByID retrieves a user by ID.
	//
	// If user with such ID does not exist, models.ErrUserNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, userID int) (*models.User, error)
	// Method GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// Method Update updates the provided user fields; empty fields are ignored.
	Update(ctx context.Context, userID int, user *models.User) error
	// Method ExistsByEmail checks if a user exists with the given email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Method Delete deletes a user by ID.
	//
	// If user with such ID does not exist, models.ErrUserNotFound will be returned.
	Delete(ctx context.Context, userID int) error
}

// adminService implements admin-only user management
type adminService struct {
	userRepo AdminUserRepository
	logger   *zap.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(userRepo AdminUserRepository, logger *zap.Logger) *adminService {
	return &adminService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUsers retrieves all users
func (s *adminService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// GetUser retrieves a user by ID
func (s *adminService) GetUser(ctx context.Context, userID int) (*models.User, error) {
	if userID <= 0 {
		return nil, models.ErrUserNotFound
	}
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateUser applies name/email/role changes to an arbitrary user.
// This is the only path where a role transition happens; the surface is
// admin-gated by the router.
func (s *adminService) UpdateUser(ctx context.Context, userID int, req *models.AdminUpdateUserRequest) (*models.User, error) {
	normalizedEmail := strings.TrimSpace(strings.ToLower(req.Email))
	normalizedName := strings.TrimSpace(req.Name)

	if normalizedEmail == "" && normalizedName == "" && req.Role == nil {
		return nil, models.NewValidationError("body", "at least one field must be provided")
	}

	if req.Role != nil && !req.Role.Valid() {
		return nil, models.NewValidationError("role", "invalid role")
	}

	// Existence check first so 0-row updates are not mistaken for success
	current, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if normalizedEmail != "" {
		if !emailRegex.MatchString(normalizedEmail) {
			return nil, models.NewValidationError("email", "invalid email format")
		}
		if current.Email != normalizedEmail {
			exists, err := s.userRepo.ExistsByEmail(ctx, normalizedEmail)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, models.ErrDuplicateEmail
			}
		}
	}

	userData := &models.User{
		Name:  normalizedName,
		Email: normalizedEmail,
	}
	if req.Role != nil {
		userData.Role = *req.Role
	}

	if err := s.userRepo.Update(ctx, userID, userData); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, userID)
}

// DeleteUser deletes a user after three ordered guards:
// the caller can not delete themselves, the target must exist, and the
// target must not be another admin. The self check runs first so a caller
// deleting their own id always gets the self-protection error.
func (s *adminService) DeleteUser(ctx context.Context, callerID, targetID int) error {
	if targetID == callerID {
		return models.ErrSelfDelete
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	if target.Role == models.RoleAdmin {
		return models.ErrAdminDelete
	}

	if err := s.userRepo.Delete(ctx, targetID); err != nil {
		return err
	}

	s.logger.Info("user deleted", zap.Int("targetID", targetID), zap.Int("callerID", callerID))
	return nil
}
