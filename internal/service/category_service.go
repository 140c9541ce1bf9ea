package service

import (
	"context"
	"errors"
	"strings"

	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"gorm.io/gorm"
)

type ICategoryService interface {
	ListAll(ctx context.Context) ([]model.Category, error)
	Create(ctx context.Context, arg CreateCategoryParams) (*model.Category, error)
}

type CreateCategoryParams struct {
	Name        string
	Description string
	ImageURL    string
}

type CategoryService struct {
	categoryRepo *db.CategoryRepo
}

func NewCategoryService(categoryRepo *db.CategoryRepo) ICategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// ListAll 查詢所有分類，依名稱排序
func (s *CategoryService) ListAll(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.GetAllCategories(ctx)
}

// Create 創建分類
// 名稱唯一性由DB unique constraint把關，衝突轉成typed error
// 錯誤:
//   - InvalidNameCode: 名稱去除空白後不可為空
//   - DuplicateNameCode: 分類名稱已存在
func (s *CategoryService) Create(ctx context.Context, arg CreateCategoryParams) (*model.Category, error) {
	if strings.TrimSpace(arg.Name) == "" {
		return nil, apperr.New(apperr.InvalidNameCode, "category name cannot be empty")
	}

	category, err := s.categoryRepo.CreateCategory(ctx, &model.Category{
		Name:        arg.Name,
		Description: arg.Description,
		ImageURL:    arg.ImageURL,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.New(apperr.DuplicateNameCode, "category name already exists")
		}
		return nil, err
	}
	return category, nil
}
