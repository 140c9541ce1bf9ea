package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
)

type UserRepo struct {
	dbDao *DbDao
}

func NewUserRepo(dbDao *DbDao) *UserRepo {
	return &UserRepo{dbDao: dbDao}
}

// Create - 創建用戶
func (s *UserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := s.dbDao.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Read - 根據ID查詢用戶
func (s *UserRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := s.dbDao.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Read - 查詢所有用戶，新建立的在前
func (s *UserRepo) GetAllUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := s.dbDao.WithContext(ctx).Order("created_at desc").Find(&users).Error
	return users, err
}

// Read - 根據Email查詢用戶，大小寫完全比對
func (s *UserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.dbDao.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update - 部分更新用戶
func (s *UserRepo) PatchUserFields(ctx context.Context, id string, updates map[string]interface{}) error {
	return s.dbDao.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(updates).Error
}

// Delete - 硬刪除用戶
func (s *UserRepo) HardDeleteUser(ctx context.Context, id string) error {
	return s.dbDao.WithContext(ctx).Unscoped().Delete(&model.User{}, "id = ?", id).Error
}
