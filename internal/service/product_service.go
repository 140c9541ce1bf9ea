package service

import (
	"context"
	"errors"
	"strings"

	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
)

type IProductService interface {
	ListAll(ctx context.Context) ([]model.Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]model.Product, error)
	Search(ctx context.Context, query string) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, arg CreateProductParams) (*model.Product, error)
	Update(ctx context.Context, id string, arg UpdateProductParams) (*model.Product, error)
	SoftDelete(ctx context.Context, id string) (*model.Product, error)
	CheckStock(ctx context.Context, id string, quantity int) (bool, error)
	DecrementStock(ctx context.Context, id string, quantity int) (*model.Product, error)
}

type CreateProductParams struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  string
	ImageURL    string
}

// UpdateProductParams 部分更新，nil欄位不異動
type UpdateProductParams struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	CategoryID  *string
	ImageURL    *string
	IsActive    *bool
}

type ProductService struct {
	productRepo  *db.ProductRepo
	categoryRepo *db.CategoryRepo
}

func NewProductService(productRepo *db.ProductRepo, categoryRepo *db.CategoryRepo) IProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *ProductService) ListAll(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.GetActiveProducts(ctx)
}

func (s *ProductService) ListByCategory(ctx context.Context, categoryID string) ([]model.Product, error) {
	return s.productRepo.GetActiveProductsByCategory(ctx, categoryID)
}

// Search 名稱或描述的子字串搜尋，不分大小寫
// 空白query等同ListAll
func (s *ProductService) Search(ctx context.Context, query string) ([]model.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.ListAll(ctx)
	}
	return s.productRepo.SearchActiveProducts(ctx, query)
}

// GetByID 查詢單一商品，不分上下架
// 錯誤:
//   - NotFoundCode: 商品不存在
func (s *ProductService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrProductNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "product not found")
		}
		return nil, err
	}
	return product, nil
}

// Create 創建商品
// 錯誤:
//   - InvalidPriceCode: 價格必須大於0
//   - InvalidStockCode: 庫存不可為負
//   - InvalidNameCode: 名稱去除空白後不可為空
//   - InvalidDescriptionCode: 描述去除空白後不可為空
//   - CategoryNotFoundCode: 分類不存在
func (s *ProductService) Create(ctx context.Context, arg CreateProductParams) (*model.Product, error) {
	if !arg.Price.GreaterThan(decimal.Zero) {
		return nil, apperr.New(apperr.InvalidPriceCode, "price must be greater than zero")
	}
	if arg.Stock < 0 {
		return nil, apperr.New(apperr.InvalidStockCode, "stock cannot be negative")
	}
	if strings.TrimSpace(arg.Name) == "" {
		return nil, apperr.New(apperr.InvalidNameCode, "product name cannot be empty")
	}
	if strings.TrimSpace(arg.Description) == "" {
		return nil, apperr.New(apperr.InvalidDescriptionCode, "product description cannot be empty")
	}

	// 分類必須存在，不允許dangling reference
	if _, err := s.categoryRepo.GetCategoryByID(ctx, arg.CategoryID); err != nil {
		if errors.Is(err, db.ErrCategoryNotFound) {
			return nil, apperr.New(apperr.CategoryNotFoundCode, "category not found")
		}
		return nil, err
	}

	product := &model.Product{
		Name:        arg.Name,
		Description: arg.Description,
		Price:       arg.Price,
		Stock:       arg.Stock,
		CategoryID:  arg.CategoryID,
		ImageURL:    arg.ImageURL,
		IsActive:    true,
	}
	return s.productRepo.CreateProduct(ctx, product)
}

// Update 部分更新商品，只驗證有帶的欄位
// 錯誤: 同Create，另有
//   - NotFoundCode: 商品不存在
func (s *ProductService) Update(ctx context.Context, id string, arg UpdateProductParams) (*model.Product, error) {
	if arg.Price != nil && !arg.Price.GreaterThan(decimal.Zero) {
		return nil, apperr.New(apperr.InvalidPriceCode, "price must be greater than zero")
	}
	if arg.Stock != nil && *arg.Stock < 0 {
		return nil, apperr.New(apperr.InvalidStockCode, "stock cannot be negative")
	}
	if arg.Name != nil && strings.TrimSpace(*arg.Name) == "" {
		return nil, apperr.New(apperr.InvalidNameCode, "product name cannot be empty")
	}
	if arg.Description != nil && strings.TrimSpace(*arg.Description) == "" {
		return nil, apperr.New(apperr.InvalidDescriptionCode, "product description cannot be empty")
	}
	if arg.CategoryID != nil {
		if _, err := s.categoryRepo.GetCategoryByID(ctx, *arg.CategoryID); err != nil {
			if errors.Is(err, db.ErrCategoryNotFound) {
				return nil, apperr.New(apperr.CategoryNotFoundCode, "category not found")
			}
			return nil, err
		}
	}

	updates := map[string]interface{}{}
	if arg.Name != nil {
		updates["name"] = *arg.Name
	}
	if arg.Description != nil {
		updates["description"] = *arg.Description
	}
	if arg.Price != nil {
		updates["price"] = *arg.Price
	}
	if arg.Stock != nil {
		updates["stock"] = *arg.Stock
	}
	if arg.CategoryID != nil {
		updates["category_id"] = *arg.CategoryID
	}
	if arg.ImageURL != nil {
		updates["image_url"] = *arg.ImageURL
	}
	if arg.IsActive != nil {
		updates["is_active"] = *arg.IsActive
	}
	if len(updates) == 0 {
		return s.GetByID(ctx, id)
	}

	product, err := s.productRepo.PatchProductFields(ctx, id, updates)
	if err != nil {
		if errors.Is(err, db.ErrProductNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "product not found")
		}
		return nil, err
	}
	return product, nil
}

// SoftDelete 軟刪除，設置isActive=false，重複呼叫冪等
// 錯誤:
//   - NotFoundCode: 商品不存在
func (s *ProductService) SoftDelete(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.productRepo.SoftDeleteProduct(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrProductNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "product not found")
		}
		return nil, err
	}
	return product, nil
}

// CheckStock 檢查庫存是否足夠，唯讀不異動
// 商品不存在或庫存不足都回傳false
func (s *ProductService) CheckStock(ctx context.Context, id string, quantity int) (bool, error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrProductNotFound) {
			return false, nil
		}
		return false, err
	}
	return product.Stock >= quantity, nil
}

// DecrementStock 扣除庫存，storage層原子扣減
// 呼叫端直接用本方法，不要自行組合CheckStock+DecrementStock，兩步之間有race
// 錯誤:
//   - NotFoundCode: 商品不存在
//   - InsufficientStockCode: 庫存不足，庫存不異動
func (s *ProductService) DecrementStock(ctx context.Context, id string, quantity int) (*model.Product, error) {
	product, err := s.productRepo.DeductProductStock(ctx, id, quantity)
	if err != nil {
		if errors.Is(err, db.ErrProductNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "product not found")
		}
		if errors.Is(err, db.ErrProductStockNotEnough) {
			return nil, apperr.New(apperr.InsufficientStockCode, "product stock not enough")
		}
		return nil, err
	}
	return product, nil
}
