package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopapp/backend/internal/auth/middleware"
	"github.com/shopapp/backend/internal/models"
	"go.uber.org/zap"
)

// ProductService is the interface that wraps methods for catalog product management
type ProductService interface {
	// Method CreateProduct validates and creates a product for the calling admin.
	CreateProduct(ctx context.Context, addedByID int, req *models.CreateProductRequest) (*models.Product, error)
	// Method GetProducts retrieves all products, optionally filtered by category.
	GetProducts(ctx context.Context, categoryID *int) ([]models.Product, error)
	// Method GetProduct retrieves a product by ID.
	GetProduct(ctx context.Context, productID int) (*models.Product, error)
	// Method GetProductBySlug retrieves a product by slug.
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	// Method UpdateProduct applies a partial update.
	UpdateProduct(ctx context.Context, productID int, req *models.UpdateProductRequest) (*models.Product, error)
	// Method DeleteProduct deletes a product by ID.
	DeleteProduct(ctx context.Context, productID int) error
}

// ProductHandler handles catalog product HTTP requests
type ProductHandler struct {
	BaseHandler
	productService ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		BaseHandler:    BaseHandler{Logger: logger},
		productService: productService,
	}
}

// RegisterRoutes registers product routes; reads are public, writes are
// gated by the provided admin middleware
// Note: This assumes the router is already scoped to /api/v1
func (h *ProductHandler) RegisterRoutes(r chi.Router, adminMiddleware func(http.Handler) http.Handler) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.GetProducts)
		r.Get("/{id}", h.GetProduct)
		r.Get("/slug/{slug}", h.GetProductBySlug)

		r.Group(func(r chi.Router) {
			r.Use(adminMiddleware)
			r.Post("/", h.CreateProduct)
			r.Put("/{id}", h.UpdateProduct)
			r.Delete("/{id}", h.DeleteProduct)
		})
	})
}

// parseProductID extracts the {id} route parameter
func parseProductID(r *http.Request) (int, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product id: %s", idStr)
	}
	return id, nil
}

// GetProducts handles GET /products
// @Summary List products
// @Description Returns all products, optionally filtered by category.
// @Tags products
// @Produce json
// @Param category query int false "Filter by category ID"
// @Success 200 {object} map[string]any "List of products"
// @Router /products [get]
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	var categoryID *int
	if categoryStr := r.URL.Query().Get("category"); categoryStr != "" {
		id, err := strconv.Atoi(categoryStr)
		if err != nil || id <= 0 {
			h.RespondError(w, http.StatusBadRequest, "invalid category id")
			return
		}
		categoryID = &id
	}

	products, err := h.productService.GetProducts(r.Context(), categoryID)
	if err != nil {
		h.Logger.Error("failed to get products", zap.Error(err))
		h.RespondDomainError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"numberOfProducts": len(products),
		"data":             products,
	})
}

// GetProduct handles GET /products/{id}
// @Summary Get product
// @Description Returns a single product by ID.
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]any "Product"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := parseProductID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.productService.GetProduct(r.Context(), productID)
	if err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, product)
}

// GetProductBySlug handles GET /products/slug/{slug}
// @Summary Get product by slug
// @Description Returns a single product by its slug.
// @Tags products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} map[string]any "Product"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/slug/{slug} [get]
func (h *ProductHandler) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, err := h.productService.GetProductBySlug(r.Context(), slug)
	if err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, product)
}

// CreateProduct handles POST /products
// @Summary Create product
// @Description Creates a product; the slug is derived from the name. Admin only.
// @Tags products
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateProductRequest true "Product"
// @Success 201 {object} map[string]any "Created product"
// @Failure 400 {object} map[string]string "Invalid fields"
// @Router /products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), callerID, &req)
	if err != nil {
		h.Logger.Error("failed to create product", zap.Error(err))
		h.RespondDomainError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /products/{id}
// @Summary Update product
// @Description Applies a partial update; renaming re-derives the slug. Admin only.
// @Tags products
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Product ID"
// @Param request body models.UpdateProductRequest true "Product update"
// @Success 200 {object} map[string]any "Updated product"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := parseProductID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(r.Context(), productID, &req)
	if err != nil {
		h.Logger.Error("failed to update product", zap.Int("productID", productID), zap.Error(err))
		h.RespondDomainError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/{id}
// @Summary Delete product
// @Description Deletes a product by ID. Admin only.
// @Tags products
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]any "Deletion confirmation"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := parseProductID(r)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), productID); err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, fmt.Sprintf("Deleted product with id of: %d", productID))
}
