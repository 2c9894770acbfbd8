package adaptor

import (
	"net/http"

	"moviehub/internal/dto/request"
	"moviehub/internal/usecase"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

type CategoryHandler struct {
	base
	service usecase.CategoryService
}

func NewCategoryHandler(service usecase.CategoryService, log *zap.Logger, debug bool) *CategoryHandler {
	return &CategoryHandler{
		base:    newBase(log, "category", debug),
		service: service,
	}
}

// CreateCategory handles POST /admin/create-category
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CategoryRequest

	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ResponseDecodeError(w, err)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Category name required", validationErrors)
		return
	}

	if err := h.service.CreateCategory(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "create category", "Error creating category")
		return
	}

	utils.ResponseSuccess(w, "Category created")
}

// GetCategories handles GET /admin/categories and GET /user/categories
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get categories", "Failed to fetch categories")
		return
	}

	utils.ResponseData(w, categories)
}
