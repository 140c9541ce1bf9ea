package dto

import "github.com/shopspring/decimal"

type CreateProductDTO struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"` // 缺省為0
	CategoryID  string           `json:"categoryId"`
	ImageURL    string           `json:"imageUrl"`
}

// UpdateProductDTO 部分更新，缺的欄位不異動
type UpdateProductDTO struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	CategoryID  *string          `json:"categoryId"`
	ImageURL    *string          `json:"imageUrl"`
	IsActive    *bool            `json:"isActive"`
}

type CreateCategoryDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}
