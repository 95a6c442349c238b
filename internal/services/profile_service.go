package services

import (
	"context"
	"strings"

	"github.com/shopapp/backend/internal/models"
)

// ProfileUserRepository is the interface that wraps methods for User table data access needed by the profile service
type ProfileUserRepository interface {
	// GetByID retrieves a user by ID
	//
	// If user with such ID does not exist, models.ErrUserNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, userID int) (*models.User, error)
	// Update updates the provided user fields
	//
	// "userID" parameter is used to identify the user.
	// "user" parameter carries the fields to update; empty fields are ignored.
	Update(ctx context.Context, userID int, user *models.User) error
	// ExistsByEmail checks if a user exists with the given email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// profileService implements current-user operations
type profileService struct {
	userRepo ProfileUserRepository
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo ProfileUserRepository) *profileService {
	return &profileService{
		userRepo: userRepo,
	}
}

// GetMe returns the record of the authenticated user
func (s *profileService) GetMe(ctx context.Context, userID int) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateMe applies name/email changes to the caller's own record.
// Role can not be changed through this path.
func (s *profileService) UpdateMe(ctx context.Context, userID int, req *models.UpdateProfileRequest) (*models.User, error) {
	normalizedEmail := strings.TrimSpace(strings.ToLower(req.Email))
	normalizedName := strings.TrimSpace(req.Name)

	if normalizedEmail == "" && normalizedName == "" {
		return nil, models.NewValidationError("body", "at least one field must be provided")
	}

	if normalizedEmail != "" {
		if !emailRegex.MatchString(normalizedEmail) {
			return nil, models.NewValidationError("email", "invalid email format")
		}

		current, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}

		// Reject only emails held by someone else
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

	if err := s.userRepo.Update(ctx, userID, userData); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, userID)
}
