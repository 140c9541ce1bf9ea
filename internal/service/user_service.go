package service

import (
	"context"
	"errors"
	"strings"

	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcrypt cost，抗暴力破解用
const bcryptCost = 12

type IUserService interface {
	Register(ctx context.Context, arg RegisterUserParams) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	ListAll(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id string, arg UpdateUserParams) (*model.User, error)
	Delete(ctx context.Context, id string) (*model.User, error)
	GetUserOrders(ctx context.Context, id string) ([]model.Order, error)
}

type RegisterUserParams struct {
	Email    string
	Name     string
	Password string // 明文，只在記憶體中存在
	Role     model.UserRole
}

// UpdateUserParams 部分更新，nil欄位不異動
type UpdateUserParams struct {
	Name     *string
	Email    *string
	Password *string
	Role     *model.UserRole
}

type UserService struct {
	userRepo  *db.UserRepo
	orderRepo *db.OrderRepo
}

func NewUserService(userRepo *db.UserRepo, orderRepo *db.OrderRepo) IUserService {
	return &UserService{
		userRepo:  userRepo,
		orderRepo: orderRepo,
	}
}

// stripPassword 清掉hash欄位，回傳給呼叫端的用戶一律不帶密碼
func stripPassword(user *model.User) *model.User {
	user.Password = ""
	return user
}

// Register 用戶註冊
// 錯誤:
//   - EmailExistsCode: email已被使用，大小寫完全比對
func (u *UserService) Register(ctx context.Context, arg RegisterUserParams) (*model.User, error) {
	// 檢查email是否已存在
	existing, err := u.userRepo.GetUserByEmail(ctx, arg.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.EmailExistsCode, "email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(arg.Password), bcryptCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalCode, "hash password failed", err)
	}

	role := arg.Role
	if role == "" {
		role = model.RoleCustomer
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Email:    arg.Email,
		Name:     arg.Name,
		Password: string(hashed),
		Role:     role,
	})
	if err != nil {
		// unique constraint的backstop，並發註冊時靠DB擋
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.New(apperr.EmailExistsCode, "email already exists")
		}
		return nil, err
	}
	return stripPassword(user), nil
}

// Login 帳密驗證，不發token
// 錯誤:
//   - UserNotFoundCode: email查無用戶
//   - InvalidPasswordCode: 密碼比對失敗
func (u *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.UserNotFoundCode, "user not found")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.New(apperr.InvalidPasswordCode, "invalid password")
	}
	return stripPassword(user), nil
}

// GetByID 查詢用戶
// 錯誤:
//   - UserNotFoundCode: 用戶不存在
func (u *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.UserNotFoundCode, "user not found")
		}
		return nil, err
	}
	return stripPassword(user), nil
}

func (u *UserService) ListAll(ctx context.Context) ([]model.User, error) {
	users, err := u.userRepo.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// Update 部分更新用戶
// email變更時檢查是否被其他用戶持有，自己持有不算衝突
// password變更時重新hash
// 錯誤:
//   - UserNotFoundCode: 用戶不存在
//   - EmailExistsCode: email已被其他用戶使用
//   - BadRequestCode: role不在枚舉內
func (u *UserService) Update(ctx context.Context, id string, arg UpdateUserParams) (*model.User, error) {
	if _, err := u.userRepo.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.UserNotFoundCode, "user not found")
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if arg.Email != nil {
		email := strings.TrimSpace(*arg.Email)
		existing, err := u.userRepo.GetUserByEmail(ctx, email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperr.New(apperr.EmailExistsCode, "email already exists")
		}
		updates["email"] = email
	}
	if arg.Name != nil {
		updates["name"] = *arg.Name
	}
	if arg.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*arg.Password), bcryptCost)
		if err != nil {
			return nil, apperr.Wrap(apperr.InternalCode, "hash password failed", err)
		}
		updates["password"] = string(hashed)
	}
	if arg.Role != nil {
		if !model.IsValidUserRole(string(*arg.Role)) {
			return nil, apperr.New(apperr.BadRequestCode, "invalid user role")
		}
		updates["role"] = *arg.Role
	}

	if len(updates) > 0 {
		if err := u.userRepo.PatchUserFields(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperr.New(apperr.EmailExistsCode, "email already exists")
			}
			return nil, err
		}
	}
	return u.GetByID(ctx, id)
}

// Delete 硬刪除用戶，回傳被刪除的紀錄
// 錯誤:
//   - UserNotFoundCode: 用戶不存在
func (u *UserService) Delete(ctx context.Context, id string) (*model.User, error) {
	user, err := u.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.UserNotFoundCode, "user not found")
		}
		return nil, err
	}
	if err := u.userRepo.HardDeleteUser(ctx, id); err != nil {
		return nil, err
	}
	return stripPassword(user), nil
}

// GetUserOrders 查詢用戶訂單，含明細與商品
// 錯誤:
//   - UserNotFoundCode: 用戶不存在
func (u *UserService) GetUserOrders(ctx context.Context, id string) ([]model.Order, error) {
	if _, err := u.userRepo.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.UserNotFoundCode, "user not found")
		}
		return nil, err
	}
	return u.orderRepo.ListOrdersByUserID(ctx, id)
}
