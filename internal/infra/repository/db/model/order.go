package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	ID         string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID     string          `gorm:"not null;type:varchar(36);index" json:"userId"`
	Amount     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"amount"`
	OrderItems []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems"` // 一對多，級聯刪除
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

type OrderItem struct {
	OrderID   string   `gorm:"primaryKey;type:varchar(36)" json:"orderId"`   // 外鍵，關聯到 Order
	ProductID string   `gorm:"primaryKey;type:varchar(36)" json:"productId"` // 外鍵，關聯到 Product
	Quantity  int      `gorm:"not null" json:"quantity"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
