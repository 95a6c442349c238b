package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopapp/backend/internal/models"
	"go.uber.org/zap"
)

// categoryRepository implements the category data access interface declared in services
type categoryRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *sql.DB, logger *zap.Logger) *categoryRepository {
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

// GetAll retrieves all categories ordered by name
func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT id, name, slug, description
		FROM categories
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to get categories", zap.Error(err))
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug, &category.Description); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

// GetByID retrieves a category by ID
func (r *categoryRepository) GetByID(ctx context.Context, categoryID int) (*models.Category, error) {
	query := `
		SELECT id, name, slug, description
		FROM categories
		WHERE id = ?
		LIMIT 1
	`

	category := &models.Category{}
	err := r.db.QueryRowContext(ctx, query, categoryID).Scan(
		&category.ID,
		&category.Name,
		&category.Slug,
		&category.Description,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrCategoryNotFound
	}
	if err != nil {
		r.logger.Error("failed to get category by id", zap.Error(err), zap.Int("categoryID", categoryID))
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}
