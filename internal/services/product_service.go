package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/shopapp/backend/internal/models"
	"go.uber.org/zap"
)

// ProductRepository is the interface that wraps methods for Product table data access
type ProductRepository interface {
	// Method Create inserts a new product into the database.
	Create(ctx context.Context, product *models.Product) error
	// Method GetByID retrieves a product by ID.
	//
	// If product with such ID does not exist, models.ErrProductNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, productID int) (*models.Product, error)
	// Method GetBySlug retrieves a product by slug.
	//
	// If product with such slug does not exist, models.ErrProductNotFound will be returned together with "nil" value.
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	// Method GetAll retrieves all products, optionally filtered by category.
	GetAll(ctx context.Context, categoryID *int) ([]models.Product, error)
	// Method Update replaces a product row with the given state.
	Update(ctx context.Context, product *models.Product) error
	// Method Delete deletes a product by ID.
	//
	// If product with such ID does not exist, models.ErrProductNotFound will be returned.
	Delete(ctx context.Context, productID int) error
}

// productService implements catalog product management
type productService struct {
	productRepo ProductRepository
	logger      *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(productRepo ProductRepository, logger *zap.Logger) *productService {
	return &productService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// slugHyphenRegex collapses everything outside [a-z0-9] into single hyphens
var slugHyphenRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a product name
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugHyphenRegex.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// validateProductFields checks the field constraints shared by create and update
func validateProductFields(name string, quantity int, pricePerUnit float64, stock models.StockStatus, description string) error {
	if len(name) < 3 || len(name) > 30 {
		return models.NewValidationError("name", "product name must be between 3 and 30 characters")
	}
	if quantity < 0 {
		return models.NewValidationError("quantity", "quantity can not be negative")
	}
	if pricePerUnit < 0 {
		return models.NewValidationError("pricePerUnit", "price must be higher than 0")
	}
	if !stock.Valid() {
		return models.NewValidationError("stock", "invalid stock status")
	}
	if len(description) < 4 || len(description) > 500 {
		return models.NewValidationError("description", "description must be between 4 and 500 characters")
	}
	return nil
}

// CreateProduct validates and creates a product; the slug is derived from the name
func (s *productService) CreateProduct(ctx context.Context, addedByID int, req *models.CreateProductRequest) (*models.Product, error) {
	name := strings.TrimSpace(req.Name)

	stock := req.Stock
	if stock == "" {
		stock = models.StockNoInfo
	}
	photo := req.Photo
	if photo == "" {
		photo = "no_photo.jpg"
	}

	if err := validateProductFields(name, req.Quantity, req.PricePerUnit, stock, req.Description); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:         name,
		Slug:         Slugify(name),
		Photo:        photo,
		Quantity:     req.Quantity,
		PricePerUnit: req.PricePerUnit,
		Stock:        stock,
		Description:  req.Description,
		AddedByID:    addedByID,
		CategoryID:   req.CategoryID,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProducts retrieves all products, optionally filtered by category
func (s *productService) GetProducts(ctx context.Context, categoryID *int) ([]models.Product, error) {
	return s.productRepo.GetAll(ctx, categoryID)
}

// GetProduct retrieves a product by ID
func (s *productService) GetProduct(ctx context.Context, productID int) (*models.Product, error) {
	if productID <= 0 {
		return nil, models.ErrProductNotFound
	}
	return s.productRepo.GetByID(ctx, productID)
}

// GetProductBySlug retrieves a product by slug
func (s *productService) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return s.productRepo.GetBySlug(ctx, slug)
}

// UpdateProduct applies a partial update; renaming re-derives the slug
func (s *productService) UpdateProduct(ctx context.Context, productID int, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
		product.Slug = Slugify(product.Name)
	}
	if req.Photo != nil {
		product.Photo = *req.Photo
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.PricePerUnit != nil {
		product.PricePerUnit = *req.PricePerUnit
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}

	if err := validateProductFields(product.Name, product.Quantity, product.PricePerUnit, product.Stock, product.Description); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct deletes a product by ID
func (s *productService) DeleteProduct(ctx context.Context, productID int) error {
	if productID <= 0 {
		return models.ErrProductNotFound
	}
	return s.productRepo.Delete(ctx, productID)
}
