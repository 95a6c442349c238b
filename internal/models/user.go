package models

import "time"

type Role int

// UserRole constants
const (
	RoleUser  Role = 1
	RoleAdmin Role = 2
)

// Valid reports whether the role is a known role value
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a user in the system
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	Role         Role      `json:"role"` // 1=User, 2=Admin, default=1
	CreatedAt    time.Time `json:"createdAt"`

	// Reset token fields are set only during an active password reset flow.
	// Both are set together and cleared together.
	ResetPasswordTokenHash *string    `json:"-"`
	ResetPasswordExpiry    *time.Time `json:"-"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest represents a self-service profile update.
// Role is deliberately absent: role transitions are admin-only.
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AdminUpdateUserRequest represents an admin update of an arbitrary user
type AdminUpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  *Role  `json:"role"`
}

// ForgotPasswordRequest represents a forgot-password request
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest represents a reset-password completion request
type ResetPasswordRequest struct {
	Password string `json:"password"`
}
