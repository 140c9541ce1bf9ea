package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleCustomer UserRole = "CUSTOMER"
)

func IsValidUserRole(role string) bool {
	switch UserRole(role) {
	case RoleAdmin, RoleCustomer:
		return true
	default:
		return false
	}
}

type User struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null;type:varchar(100)" json:"email"`
	Name      string    `gorm:"not null;type:varchar(100)" json:"name"`
	Password  string    `gorm:"not null;type:varchar(100)" json:"-"` // bcrypt hash，不輸出
	Role      UserRole  `gorm:"not null;type:varchar(20);default:CUSTOMER" json:"role"`
	Orders    []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"` // 一對多，級聯刪除
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = RoleCustomer
	}
	return nil
}
