package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopapp/backend/internal/models"
	"go.uber.org/zap"
)

// productRepository implements the product data access interface declared in services
type productRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sql.DB, logger *zap.Logger) *productRepository {
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// productColumns is the column list shared by all product selects
const productColumns = `id, name, slug, photo, quantity, price_per_unit, stock, description, added_by_id, category_id, created_at`

// scanProduct scans a single product row
func scanProduct(row interface{ Scan(...any) error }) (*models.Product, error) {
	product := &models.Product{}
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Slug,
		&product.Photo,
		&product.Quantity,
		&product.PricePerUnit,
		&product.Stock,
		&product.Description,
		&product.AddedByID,
		&product.CategoryID,
		&product.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Create inserts a new product into the database
func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name, slug, photo, quantity, price_per_unit, stock, description, added_by_id, category_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		product.Name,
		product.Slug,
		product.Photo,
		product.Quantity,
		product.PricePerUnit,
		product.Stock,
		product.Description,
		product.AddedByID,
		product.CategoryID,
	)
	if err != nil {
		r.logger.Error("failed to create product", zap.Error(err))
		return fmt.Errorf("failed to create product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	product.ID = int(id)
	return nil
}

// GetByID retrieves a product by ID
func (r *productRepository) GetByID(ctx context.Context, productID int) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ? LIMIT 1`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, productID))
	if err == sql.ErrNoRows {
		return nil, models.ErrProductNotFound
	}
	if err != nil {
		r.logger.Error("failed to get product by id", zap.Error(err), zap.Int("productID", productID))
		return nil, fmt.Errorf("failed to get product by id: %w", err)
	}

	return product, nil
}

// GetBySlug retrieves a product by slug
func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug = ? LIMIT 1`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, slug))
	if err == sql.ErrNoRows {
		return nil, models.ErrProductNotFound
	}
	if err != nil {
		r.logger.Error("failed to get product by slug", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("failed to get product by slug: %w", err)
	}

	return product, nil
}

// GetAll retrieves all products, optionally filtered by category
func (r *productRepository) GetAll(ctx context.Context, categoryID *int) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	args := []any{}
	if categoryID != nil {
		query += ` WHERE category_id = ?`
		args = append(args, *categoryID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to get products", zap.Error(err))
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// Update updates a product row with the given full state
func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET name = ?, slug = ?, photo = ?, quantity = ?, price_per_unit = ?, stock = ?, description = ?, category_id = ?
		WHERE id = ?
	`

	if _, err := r.db.ExecContext(ctx, query,
		product.Name,
		product.Slug,
		product.Photo,
		product.Quantity,
		product.PricePerUnit,
		product.Stock,
		product.Description,
		product.CategoryID,
		product.ID,
	); err != nil {
		r.logger.Error("failed to update product", zap.Error(err), zap.Int("productID", product.ID))
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

// Delete deletes a product by ID
func (r *productRepository) Delete(ctx context.Context, productID int) error {
	query := `DELETE FROM products WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, productID)
	if err != nil {
		r.logger.Error("failed to delete product", zap.Error(err), zap.Int("productID", productID))
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrProductNotFound
	}

	return nil
}
