package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{
		productService: productService,
	}
}

// ListProducts 查詢上架商品
// GET /products?q=<search>  子字串搜尋
// GET /products?category=<id>  分類過濾
// category優先於q，都沒帶回傳全部
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	categoryID := r.URL.Query().Get("category")

	var (
		products []model.Product
		err      error
	)
	switch {
	case categoryID != "":
		products, err = h.productService.ListByCategory(r.Context(), categoryID)
	case query != "":
		products, err = h.productService.Search(r.Context(), query)
	default:
		products, err = h.productService.ListAll(r.Context())
	}
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// CreateProduct 創建商品
// POST /products
// 400: 必填欄位缺或驗證失敗
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if createDTO.Name == "" || createDTO.Description == "" || createDTO.Price == nil || createDTO.CategoryID == "" {
		errorJSON(w, http.StatusBadRequest, "name, description, price and categoryId are required")
		return
	}

	stock := 0
	if createDTO.Stock != nil {
		stock = *createDTO.Stock
	}

	product, err := h.productService.Create(r.Context(), service.CreateProductParams{
		Name:        createDTO.Name,
		Description: createDTO.Description,
		Price:       *createDTO.Price,
		Stock:       stock,
		CategoryID:  createDTO.CategoryID,
		ImageURL:    createDTO.ImageURL,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

// GetProduct 查詢單一商品，不分上下架
// GET /products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	product, err := h.productService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// UpdateProduct 部分更新商品
// PUT /products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateDTO dto.UpdateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.productService.Update(r.Context(), id, service.UpdateProductParams{
		Name:        updateDTO.Name,
		Description: updateDTO.Description,
		Price:       updateDTO.Price,
		Stock:       updateDTO.Stock,
		CategoryID:  updateDTO.CategoryID,
		ImageURL:    updateDTO.ImageURL,
		IsActive:    updateDTO.IsActive,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// DeleteProduct 軟刪除商品，回傳isActive=false的商品
// DELETE /products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	product, err := h.productService.SoftDelete(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}
