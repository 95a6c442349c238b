package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/shopapp/backend/internal/models"
	"go.uber.org/zap"
)

// mysqlDuplicateEntry is the MySQL error number for unique key violations
const mysqlDuplicateEntry = 1062

// userRepository implements the user data access interfaces declared in services
type userRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB, logger *zap.Logger) *userRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, role)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, user.Name, user.Email, user.PasswordHash, user.Role)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return models.ErrDuplicateEmail
		}
		r.logger.Error("failed to create user", zap.Error(err))
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	user.ID = int(id)
	return nil
}

// GetByID retrieves a user by ID. The password hash is not selected.
func (r *userRepository) GetByID(ctx context.Context, userID int) (*models.User, error) {
	query := `
		SELECT id, name, email, role, created_at
		FROM users
		WHERE id = ?
		LIMIT 1
	`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("failed to get user by id", zap.Error(err), zap.Int("userID", userID))
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email. The password hash is not selected.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, role, created_at
		FROM users
		WHERE email = ?
		LIMIT 1
	`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("failed to get user by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// GetByEmailWithPassword retrieves a user by email including the normally
// hidden password hash. Only the login flow uses this.
func (r *userRepository) GetByEmailWithPassword(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, created_at
		FROM users
		WHERE email = ?
		LIMIT 1
	`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("failed to get user by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// ExistsByEmail checks if a user exists with the given email
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM users WHERE email = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	if err != nil {
		r.logger.Error("failed to check email existence", zap.Error(err), zap.String("email", email))
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return exists, nil
}

// GetAll retrieves all users ordered by creation time
func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, name, email, role, created_at
		FROM users
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to get users", zap.Error(err))
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// Update updates the provided user fields. Empty name/email and zero role
// leave the stored values untouched.
func (r *userRepository) Update(ctx context.Context, userID int, user *models.User) error {
	query := `
		UPDATE users
		SET name = COALESCE(NULLIF(?, ''), name),
		    email = COALESCE(NULLIF(?, ''), email),
		    role = COALESCE(NULLIF(?, 0), role)
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query, user.Name, user.Email, int(user.Role), userID)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return models.ErrDuplicateEmail
		}
		r.logger.Error("failed to update user", zap.Error(err), zap.Int("userID", userID))
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// UpdatePasswordHash updates the password hash for a user
func (r *userRepository) UpdatePasswordHash(ctx context.Context, userID int, passwordHash string) error {
	query := `UPDATE users SET password_hash = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, passwordHash, userID); err != nil {
		r.logger.Error("failed to update password hash", zap.Error(err), zap.Int("userID", userID))
		return fmt.Errorf("failed to update password hash: %w", err)
	}

	return nil
}

// SetResetToken stores the hashed reset token and its expiry for a user
func (r *userRepository) SetResetToken(ctx context.Context, userID int, tokenHash string, expiry time.Time) error {
	query := `
		UPDATE users
		SET reset_password_token_hash = ?, reset_password_expiry = ?
		WHERE id = ?
	`

	if _, err := r.db.ExecContext(ctx, query, tokenHash, expiry, userID); err != nil {
		r.logger.Error("failed to set reset token", zap.Error(err), zap.Int("userID", userID))
		return fmt.Errorf("failed to set reset token: %w", err)
	}

	return nil
}

// ClearResetToken removes the reset token fields for a user
func (r *userRepository) ClearResetToken(ctx context.Context, userID int) error {
	query := `
		UPDATE users
		SET reset_password_token_hash = NULL, reset_password_expiry = NULL
		WHERE id = ?
	`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		r.logger.Error("failed to clear reset token", zap.Error(err), zap.Int("userID", userID))
		return fmt.Errorf("failed to clear reset token: %w", err)
	}

	return nil
}

// GetByResetTokenHash retrieves a user whose reset token hash matches and is
// not yet expired
func (r *userRepository) GetByResetTokenHash(ctx context.Context, tokenHash string) (*models.User, error) {
	query := `
		SELECT id, name, email, role, created_at
		FROM users
		WHERE reset_password_token_hash = ? AND reset_password_expiry > ?
		LIMIT 1
	`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, tokenHash, time.Now()).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrInvalidResetToken
	}
	if err != nil {
		r.logger.Error("failed to get user by reset token", zap.Error(err))
		return nil, fmt.Errorf("failed to get user by reset token: %w", err)
	}

	return user, nil
}

// ClearExpiredResetTokens removes reset token fields for all users whose
// token expiry has passed, returning the number of cleared rows
func (r *userRepository) ClearExpiredResetTokens(ctx context.Context) (int, error) {
	query := `
		UPDATE users
		SET reset_password_token_hash = NULL, reset_password_expiry = NULL
		WHERE reset_password_expiry IS NOT NULL AND reset_password_expiry <= ?
	`

	result, err := r.db.ExecContext(ctx, query, time.Now())
	if err != nil {
		r.logger.Error("failed to clear expired reset tokens", zap.Error(err))
		return 0, fmt.Errorf("failed to clear expired reset tokens: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rowsAffected), nil
}

// Delete deletes a user by ID
func (r *userRepository) Delete(ctx context.Context, userID int) error {
	query := `DELETE FROM users WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to delete user", zap.Error(err), zap.Int("userID", userID))
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}

	return nil
}
