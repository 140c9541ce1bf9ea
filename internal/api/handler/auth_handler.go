package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type AuthHandler struct {
	userService service.IUserService
}

func NewAuthHandler(userService service.IUserService) *AuthHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &AuthHandler{
		userService: userService,
	}
}

// Login 帳密登入，驗證通過回傳用戶，不發token
// POST /auth/login
// 400: email或password缺
// 401: 帳密錯誤，查無用戶與密碼錯誤對外不區分
func (a *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&loginDTO); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if loginDTO.Email == "" || loginDTO.Password == "" {
		errorJSON(w, http.StatusBadRequest, "email and password are required")
		return
	}

	ctx := r.Context()

	user, err := a.userService.Login(ctx, loginDTO.Email, loginDTO.Password)
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) &&
			(appErr.Code == apperr.UserNotFoundCode || appErr.Code == apperr.InvalidPasswordCode) {
			errorJSON(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		User:    user,
		Message: "login success",
	})
}
