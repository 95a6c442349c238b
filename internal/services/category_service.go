package services

import (
	"context"

	"github.com/shopapp/backend/internal/models"
)

// CategoryRepository is the interface that wraps methods for Category table data access
type CategoryRepository interface {
	// Method GetAll retrieves all categories.
	GetAll(ctx context.Context) ([]models.Category, error)
	// Method GetByID retrieves a category by ID.
	//
	// If category with such ID does not exist, models.ErrCategoryNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, categoryID int) (*models.Category, error)
}

// categoryService implements read-only category listing and lookup
type categoryService struct {
	categoryRepo CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo CategoryRepository) *categoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
	}
}

// GetCategories retrieves all categories
func (s *categoryService) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

// GetCategory retrieves a category by ID
func (s *categoryService) GetCategory(ctx context.Context, categoryID int) (*models.Category, error) {
	if categoryID <= 0 {
		return nil, models.ErrCategoryNotFound
	}
	return s.categoryRepo.GetByID(ctx, categoryID)
}
