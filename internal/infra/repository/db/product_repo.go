package db

import (
	"context"
	"errors"
	"strings"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"gorm.io/gorm"
)

var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = errors.New("product not found")
	// ErrProductStockNotEnough 商品庫存不足
	ErrProductStockNotEnough = errors.New("product stock not enough")
)

type ProductRepo struct {
	dbDao *DbDao
}

func NewProductRepo(dbDao *DbDao) *ProductRepo {
	return &ProductRepo{dbDao: dbDao}
}

// Create - 創建商品
func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := s.dbDao.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return s.GetProductByID(ctx, product.ID)
}

// Read - 根據ID查詢商品，含分類，不分active
func (s *ProductRepo) GetProductByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	err := s.dbDao.WithContext(ctx).Preload("Category").First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Read - 查詢所有上架商品，新商品在前
func (s *ProductRepo) GetActiveProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.dbDao.WithContext(ctx).
		Preload("Category").
		Where("is_active = ?", true).
		Order("created_at desc").
		Find(&products).Error
	return products, err
}

// Read - 根據分類查詢上架商品
func (s *ProductRepo) GetActiveProductsByCategory(ctx context.Context, categoryID string) ([]model.Product, error) {
	var products []model.Product
	err := s.dbDao.WithContext(ctx).
		Preload("Category").
		Where("is_active = ? AND category_id = ?", true, categoryID).
		Order("created_at desc").
		Find(&products).Error
	return products, err
}

// Read - 名稱或描述的子字串搜尋，不分大小寫，僅限上架商品
func (s *ProductRepo) SearchActiveProducts(ctx context.Context, query string) ([]model.Product, error) {
	var products []model.Product
	pattern := "%" + strings.ToLower(query) + "%"
	err := s.dbDao.WithContext(ctx).
		Preload("Category").
		Where("is_active = ?", true).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("created_at desc").
		Find(&products).Error
	return products, err
}

// Update - 部分更新商品欄位，回傳更新後的完整商品
func (s *ProductRepo) PatchProductFields(ctx context.Context, id string, updates map[string]interface{}) (*model.Product, error) {
	result := s.dbDao.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrProductNotFound
	}
	return s.GetProductByID(ctx, id)
}

// Delete - 軟刪除商品，設置 is_active = false，資料列保留
// 冪等性：重複呼叫不報錯
func (s *ProductRepo) SoftDeleteProduct(ctx context.Context, id string) (*model.Product, error) {
	// 先確認商品存在，軟刪除對已下架商品是no-op
	if _, err := s.GetProductByID(ctx, id); err != nil {
		return nil, err
	}

	err := s.dbDao.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		Update("is_active", false).Error
	if err != nil {
		return nil, err
	}
	return s.GetProductByID(ctx, id)
}

// Update - 扣除庫存
// storage層原子扣減 (stock = stock - ?)，同交易內檢查庫存，避免並發下超賣
func (s *ProductRepo) DeductProductStock(ctx context.Context, id string, quantity int) (*model.Product, error) {
	err := s.dbDao.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先查詢當前庫存
		var product model.Product
		if err := tx.Where("id = ?", id).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		// 檢查庫存是否足夠
		if product.Stock < quantity {
			return ErrProductStockNotEnough
		}

		// 更新庫存
		return tx.Model(&model.Product{}).
			Where("id = ?", id).
			Update("stock", gorm.Expr("stock - ?", quantity)).Error
	})

	if err != nil {
		return nil, err
	}
	return s.GetProductByID(ctx, id)
}
