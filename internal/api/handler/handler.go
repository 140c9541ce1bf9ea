package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/rs/zerolog"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// errorJSON 錯誤body固定 {"error": "<message>"}
func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusFromCode Code對應HTTP status，handler層不解析錯誤訊息文字
func statusFromCode(code apperr.Code) int {
	switch code {
	case apperr.InvalidPriceCode,
		apperr.InvalidStockCode,
		apperr.InvalidNameCode,
		apperr.InvalidDescriptionCode,
		apperr.InsufficientStockCode,
		apperr.CategoryNotFoundCode,
		apperr.DuplicateNameCode,
		apperr.BadRequestCode:
		return http.StatusBadRequest
	case apperr.NotFoundCode, apperr.UserNotFoundCode:
		return http.StatusNotFound
	case apperr.EmailExistsCode:
		return http.StatusConflict
	case apperr.InvalidPasswordCode:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// handleServiceError service層錯誤統一出口
// 非預期錯誤只記log，對外一律generic message
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromCode(apperr.CodeOf(err))
	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("url", r.URL.String()).
			Msg("unexpected service error")
		errorJSON(w, status, "internal server error")
		return
	}
	errorJSON(w, status, err.Error())
}
