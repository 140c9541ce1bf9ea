package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
)

type OrderRepo struct {
	dbDao *DbDao
}

func NewOrderRepo(dbDao *DbDao) *OrderRepo {
	return &OrderRepo{dbDao: dbDao}
}

// Create - 創建訂單，含明細
func (s *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	if err := s.dbDao.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// Read - 根據用戶ID查詢訂單，含明細與商品，新訂單在前
func (s *OrderRepo) ListOrdersByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	var orders []model.Order
	err := s.dbDao.WithContext(ctx).
		Preload("OrderItems.Product").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}
