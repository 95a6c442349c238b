package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopapp/backend/internal/models"
	"go.uber.org/zap"
)

// CategoryService is the interface that wraps methods for category listing and lookup
type CategoryService interface {
	// Method GetCategories retrieves all categories.
	GetCategories(ctx context.Context) ([]models.Category, error)
	// Method GetCategory retrieves a category by ID.
	GetCategory(ctx context.Context, categoryID int) (*models.Category, error)
}

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	BaseHandler
	categoryService CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler:     BaseHandler{Logger: logger},
		categoryService: categoryService,
	}
}

// RegisterRoutes registers category routes
// Note: This assumes the router is already scoped to /api/v1
func (h *CategoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/list", h.GetCategories)
		r.Get("/category/find/{id}", h.GetCategory)
	})
}

// GetCategories handles GET /categories/list
// @Summary List categories
// @Description Returns all categories.
// @Tags categories
// @Produce json
// @Success 200 {object} map[string]any "List of categories"
// @Router /categories/list [get]
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.GetCategories(r.Context())
	if err != nil {
		h.Logger.Error("failed to get categories", zap.Error(err))
		h.RespondDomainError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, categories)
}

// GetCategory handles GET /categories/category/find/{id}
// @Summary Get category
// @Description Returns a single category by ID.
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]any "Category"
// @Failure 404 {object} map[string]string "Category not found"
// @Router /categories/category/find/{id} [get]
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	categoryID, err := strconv.Atoi(idStr)
	if err != nil || categoryID <= 0 {
		h.RespondError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	category, err := h.categoryService.GetCategory(r.Context(), categoryID)
	if err != nil {
		h.RespondDomainError(w, err)
		return
	}

	h.RespondSuccess(w, http.StatusOK, category)
}
