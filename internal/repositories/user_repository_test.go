package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/shopapp/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupUserTestRepository creates a user repository with a mock database
func setupUserTestRepository(t *testing.T) (*userRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewUserRepository(db, zap.NewNop())

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewUserRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewUserRepository(db, zap.NewNop())

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		user          *models.User
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedID    int
	}{
		{
			name: "success",
			user: &models.User{
				Name:         "Test User",
				Email:        "test@example.com",
				PasswordHash: "hashedpassword",
				Role:         models.RoleUser,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("Test User", "test@example.com", "hashedpassword", models.RoleUser).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			expectedError: nil,
			expectedID:    1,
		},
		{
			name: "database error on insert",
			user: &models.User{
				Name:         "Test User",
				Email:        "test@example.com",
				PasswordHash: "hashedpassword",
				Role:         models.RoleUser,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("Test User", "test@example.com", "hashedpassword", models.RoleUser).
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("failed to create user"),
		},
		{
			name: "error getting last insert id",
			user: &models.User{
				Name:         "Test User",
				Email:        "test@example.com",
				PasswordHash: "hashedpassword",
				Role:         models.RoleUser,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("Test User", "test@example.com", "hashedpassword", models.RoleUser).
					WillReturnResult(sqlmock.NewErrorResult(errors.New("last insert id error")))
			},
			expectedError: errors.New("failed to get last insert id"),
		},
		{
			name: "duplicate email",
			user: &models.User{
				Name:         "Test User",
				Email:        "duplicate@example.com",
				PasswordHash: "hashedpassword",
				Role:         models.RoleUser,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs("Test User", "duplicate@example.com", "hashedpassword", models.RoleUser).
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'duplicate@example.com' for key 'email'"})
			},
			expectedError: models.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.user)

			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, models.ErrDuplicateEmail) {
					assert.ErrorIs(t, err, models.ErrDuplicateEmail)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, tt.user.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		email         string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedUser  *models.User
	}{
		{
			name:  "success",
			email: "test@example.com",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "email", "role", "created_at"}).
					AddRow(1, "Test User", "test@example.com", models.RoleUser, now)
				mock.ExpectQuery(`SELECT id, name, email, role, created_at FROM users`).
					WithArgs("test@example.com").
					WillReturnRows(rows)
			},
			expectedUser: &models.User{
				ID:        1,
				Name:      "Test User",
				Email:     "test@example.com",
				Role:      models.RoleUser,
				CreatedAt: now,
			},
		},
		{
			name:  "user not found",
			email: "missing@example.com",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, email, role, created_at FROM users`).
					WithArgs("missing@example.com").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: models.ErrUserNotFound,
		},
		{
			name:  "database error",
			email: "test@example.com",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, email, role, created_at FROM users`).
					WithArgs("test@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("failed to get user by email"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			user, err := repo.GetByEmail(context.Background(), tt.email)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, user)
				if errors.Is(tt.expectedError, models.ErrUserNotFound) {
					assert.ErrorIs(t, err, models.ErrUserNotFound)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByEmailWithPassword(t *testing.T) {
	now := time.Now()

	repo, mock, cleanup := setupUserTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "created_at"}).
		AddRow(1, "Test User", "test@example.com", "hashedpassword", models.RoleUser, now)
	mock.ExpectQuery(`SELECT id, name, email, password_hash, role, created_at FROM users`).
		WithArgs("test@example.com").
		WillReturnRows(rows)

	user, err := repo.GetByEmailWithPassword(context.Background(), "test@example.com")

	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "hashedpassword", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	tests := []struct {
		name           string
		email          string
		setupMock      func(sqlmock.Sqlmock)
		expectedExists bool
		expectedError  bool
	}{
		{
			name:  "email exists",
			email: "test@example.com",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"exists"}).AddRow(true)
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs("test@example.com").
					WillReturnRows(rows)
			},
			expectedExists: true,
		},
		{
			name:  "email does not exist",
			email: "missing@example.com",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"exists"}).AddRow(false)
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs("missing@example.com").
					WillReturnRows(rows)
			},
			expectedExists: false,
		},
		{
			name:  "database error",
			email: "test@example.com",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs("test@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			exists, err := repo.ExistsByEmail(context.Background(), tt.email)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedExists, exists)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetAll(t *testing.T) {
	now := time.Now()

	repo, mock, cleanup := setupUserTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "role", "created_at"}).
		AddRow(1, "First User", "first@example.com", models.RoleUser, now).
		AddRow(2, "Second User", "second@example.com", models.RoleAdmin, now)
	mock.ExpectQuery(`SELECT id, name, email, role, created_at FROM users`).
		WillReturnRows(rows)

	users, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "first@example.com", users[0].Email)
	assert.Equal(t, models.RoleAdmin, users[1].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update(t *testing.T) {
	tests := []struct {
		name          string
		userID        int
		user          *models.User
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name:   "success",
			userID: 1,
			user:   &models.User{Name: "New Name", Email: "new@example.com"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE users`).
					WithArgs("New Name", "new@example.com", 0, 1).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:   "duplicate email",
			userID: 1,
			user:   &models.User{Email: "taken@example.com"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE users`).
					WithArgs("", "taken@example.com", 0, 1).
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'taken@example.com' for key 'email'"})
			},
			expectedError: models.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Update(context.Background(), tt.userID, tt.user)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_SetResetToken(t *testing.T) {
	repo, mock, cleanup := setupUserTestRepository(t)
	defer cleanup()

	expiry := time.Now().Add(10 * time.Minute)

	mock.ExpectExec(`UPDATE users`).
		WithArgs("tokenhash", expiry, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetResetToken(context.Background(), 1, "tokenhash", expiry)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ClearResetToken(t *testing.T) {
	repo, mock, cleanup := setupUserTestRepository(t)
	defer cleanup()

	mock.ExpectExec(`UPDATE users`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ClearResetToken(context.Background(), 1)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByResetTokenHash(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		tokenHash     string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name:      "success",
			tokenHash: "tokenhash",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "email", "role", "created_at"}).
					AddRow(1, "Test User", "test@example.com", models.RoleUser, now)
				mock.ExpectQuery(`SELECT id, name, email, role, created_at FROM users`).
					WithArgs("tokenhash", sqlmock.AnyArg()).
					WillReturnRows(rows)
			},
		},
		{
			name:      "token not found or expired",
			tokenHash: "stalehash",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, email, role, created_at FROM users`).
					WithArgs("stalehash", sqlmock.AnyArg()).
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: models.ErrInvalidResetToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			user, err := repo.GetByResetTokenHash(context.Background(), tt.tokenHash)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_ClearExpiredResetTokens(t *testing.T) {
	repo, mock, cleanup := setupUserTestRepository(t)
	defer cleanup()

	mock.ExpectExec(`UPDATE users`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))

	cleared, err := repo.ClearExpiredResetTokens(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, cleared)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete(t *testing.T) {
	tests := []struct {
		name          string
		userID        int
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name:   "success",
			userID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM users`).
					WithArgs(1).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:   "user not found",
			userID: 99,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM users`).
					WithArgs(99).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: models.ErrUserNotFound,
		},
		{
			name:   "database error",
			userID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM users`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("failed to delete user"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Delete(context.Background(), tt.userID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, models.ErrUserNotFound) {
					assert.ErrorIs(t, err, models.ErrUserNotFound)
				}
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
