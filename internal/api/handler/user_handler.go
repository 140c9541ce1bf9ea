package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers 查詢所有用戶，不帶password
// GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListAll(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// CreateUser 用戶註冊
// POST /users
// 400: 必填欄位缺、密碼太短、role不合法，都在進service前擋掉
// 409: email重複
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if createDTO.Email == "" || createDTO.Name == "" || createDTO.Password == "" {
		errorJSON(w, http.StatusBadRequest, "email, name and password are required")
		return
	}
	if len(createDTO.Password) < constants.MinPasswordLength {
		errorJSON(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}
	if createDTO.Role != "" && !model.IsValidUserRole(createDTO.Role) {
		errorJSON(w, http.StatusBadRequest, "invalid user role")
		return
	}

	user, err := h.userService.Register(r.Context(), service.RegisterUserParams{
		Email:    createDTO.Email,
		Name:     createDTO.Name,
		Password: createDTO.Password,
		Role:     model.UserRole(createDTO.Role),
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// GetUser 查詢單一用戶
// GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateUser 部分更新用戶
// PUT /users/{id}
// 400: 密碼太短
// 409: email被其他用戶使用
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateDTO dto.UpdateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if updateDTO.Password != nil && len(*updateDTO.Password) < constants.MinPasswordLength {
		errorJSON(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	var role *model.UserRole
	if updateDTO.Role != nil {
		ur := model.UserRole(*updateDTO.Role)
		role = &ur
	}

	user, err := h.userService.Update(r.Context(), id, service.UpdateUserParams{
		Name:     updateDTO.Name,
		Email:    updateDTO.Email,
		Password: updateDTO.Password,
		Role:     role,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// DeleteUser 硬刪除用戶，回傳被刪除的紀錄
// DELETE /users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, err := h.userService.Delete(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// GetUserOrders 查詢用戶訂單，含明細與商品
// GET /users/{id}/orders
func (h *UserHandler) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	orders, err := h.userService.GetUserOrders(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}
