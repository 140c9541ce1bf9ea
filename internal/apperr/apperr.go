package apperr

import (
	"errors"
	"fmt"
)

// Code 錯誤種類
// handler層依照Code決定HTTP status，不解析錯誤訊息文字
type Code int

const (
	InternalCode Code = iota
	NotFoundCode
	InvalidPriceCode
	InvalidStockCode
	InvalidNameCode
	InvalidDescriptionCode
	InsufficientStockCode
	CategoryNotFoundCode
	DuplicateNameCode
	EmailExistsCode
	UserNotFoundCode
	InvalidPasswordCode
	BadRequestCode
)

type Error struct {
	Code Code
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is 讓 errors.Is 以 Code 比對
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func New(code Code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

func Wrap(code Code, msg string, err error) *Error {
	return &Error{Code: code, Msg: msg, Err: err}
}

// CodeOf 取出錯誤的Code，非 *Error 一律視為 InternalCode
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return InternalCode
}
