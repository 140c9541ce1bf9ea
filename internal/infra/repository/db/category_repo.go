package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"gorm.io/gorm"
)

// ErrCategoryNotFound 分類不存在
var ErrCategoryNotFound = errors.New("category not found")

type CategoryRepo struct {
	dbDao *DbDao
}

func NewCategoryRepo(dbDao *DbDao) *CategoryRepo {
	return &CategoryRepo{dbDao: dbDao}
}

// Create - 創建分類
func (s *CategoryRepo) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	if err := s.dbDao.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// Read - 根據ID查詢分類
func (s *CategoryRepo) GetCategoryByID(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	err := s.dbDao.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Read - 查詢所有分類，依名稱排序
func (s *CategoryRepo) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := s.dbDao.WithContext(ctx).Order("name asc").Find(&categories).Error
	return categories, err
}
