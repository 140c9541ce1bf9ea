package dto

import "github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"` //密碼明文
}

type LoginResponse struct {
	User    *model.User `json:"user"`
	Message string      `json:"message"`
}

type CreateUserDTO struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"` // ADMIN | CUSTOMER，預設CUSTOMER
}

// UpdateUserDTO 部分更新，缺的欄位不異動
type UpdateUserDTO struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}
