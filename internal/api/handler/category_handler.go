package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type CategoryHandler struct {
	categoryService service.ICategoryService
}

func NewCategoryHandler(categoryService service.ICategoryService) *CategoryHandler {
	if categoryService == nil {
		panic("categoryService cannot be nil")
	}
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// ListCategories 查詢所有分類，依名稱排序
// GET /categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.ListAll(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// CreateCategory 創建分類
// POST /categories
// 400: 名稱缺或重複
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if createDTO.Name == "" {
		errorJSON(w, http.StatusBadRequest, "category name is required")
		return
	}

	category, err := h.categoryService.Create(r.Context(), service.CreateCategoryParams{
		Name:        createDTO.Name,
		Description: createDTO.Description,
		ImageURL:    createDTO.ImageURL,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}
